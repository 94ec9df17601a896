package utils

import (
	"context"
	"os"
	"time"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"real-estate-management-server/models"
	"real-estate-management-server/storage"
)

var bgContext = context.Background()

type AccessToken struct {
	ID   string `json:"ID"`
	Role string `json:"role"`
}

type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

func CreateTokenPair(user *models.User) (*jwt.TokenPair, error) {
	accessTokenSigner := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 24*time.Hour)
	refreshTokenSigner := jwt.NewSigner(jwt.HS256, os.Getenv("REFRESH_TOKEN_SECRET"), 365*24*time.Hour)

	accessTokenClaims := AccessToken{
		ID:   user.ID,
		Role: user.Role,
	}

	accessToken, err := accessTokenSigner.Sign(accessTokenClaims)
	if err != nil {
		return nil, err
	}

	refreshClaims := jwt.Claims{Subject: user.ID}
	refreshToken, err := refreshTokenSigner.Sign(refreshClaims)
	if err != nil {
		return nil, err
	}

	var tokenPair jwt.TokenPair
	tokenPair.AccessToken = accessToken
	tokenPair.RefreshToken = refreshToken

	storage.Redis.Set(bgContext, string(refreshToken), "true", 365*24*time.Hour+5*time.Minute)

	return &tokenPair, nil
}

// RefreshTokenHandler rotates a refresh token: the presented token
// must still be on the Redis allow-list, gets revoked, and a fresh
// pair is issued for the user loaded through lookup.
func RefreshTokenHandler(lookup func(id string) (*models.User, error)) iris.Handler {
	return func(ctx iris.Context) {
		token := jwt.GetVerifiedToken(ctx)
		tokenStr := string(token.Token)

		validToken, tokenErr := storage.Redis.Get(bgContext, tokenStr).Result()
		if tokenErr != nil {
			CreateNotFound(ctx)
			return
		}
		if validToken != "true" {
			ctx.StatusCode(iris.StatusForbidden)
			return
		}

		storage.Redis.Del(bgContext, tokenStr)

		user, err := lookup(token.StandardClaims.Subject)
		if err != nil {
			HandleServiceError(err, ctx)
			return
		}

		tokenPair, tokenPairErr := CreateTokenPair(user)
		if tokenPairErr != nil {
			CreateInternalServerError(ctx)
			return
		}

		ctx.JSON(iris.Map{
			"accessToken":  string(tokenPair.AccessToken),
			"refreshToken": string(tokenPair.RefreshToken),
		})
	}
}

package utils

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"real-estate-management-server/models"
)

// Claims returns the verified access-token claims for the request.
func Claims(ctx iris.Context) *AccessToken {
	return jwt.Get(ctx).(*AccessToken)
}

// UserFromTokenMiddleware stores the caller's id and role so that
// downstream handlers do not need to touch the token again.
func UserFromTokenMiddleware(ctx iris.Context) {
	claims := Claims(ctx)
	ctx.Values().Set("userID", claims.ID)
	ctx.Values().Set("userRole", claims.Role)
	ctx.Next()
}

// AdminOnlyMiddleware ensures the requester has the admin role.
func AdminOnlyMiddleware(ctx iris.Context) {
	claims := Claims(ctx)
	if claims.Role != models.RoleAdmin {
		ctx.StatusCode(iris.StatusForbidden)
		ctx.JSON(iris.Map{"error": "forbidden", "message": "admin access required"})
		return
	}
	ctx.Values().Set("userID", claims.ID)
	ctx.Values().Set("userRole", claims.Role)
	ctx.Next()
}

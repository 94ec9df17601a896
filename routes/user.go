package routes

import (
	"github.com/kataras/iris/v12"

	"real-estate-management-server/services"
	"real-estate-management-server/utils"
)

type RegisterUserInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

type LoginUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdatePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

func (api *API) Register(ctx iris.Context) {
	var input RegisterUserInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	user, err := api.Users.Register(services.RegisterInput{
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Role:      input.Role,
	})
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}

	tokenPair, tokenErr := utils.CreateTokenPair(user)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"user":         user,
		"accessToken":  string(tokenPair.AccessToken),
		"refreshToken": string(tokenPair.RefreshToken),
	})
}

func (api *API) Login(ctx iris.Context) {
	var input LoginUserInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	user, err := api.Users.Authenticate(input.Email, input.Password)
	if err != nil {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", "invalid email or password", ctx)
		return
	}

	tokenPair, tokenErr := utils.CreateTokenPair(user)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"user":         user,
		"accessToken":  string(tokenPair.AccessToken),
		"refreshToken": string(tokenPair.RefreshToken),
	})
}

func (api *API) GetUser(ctx iris.Context) {
	id := ctx.Params().Get("id")

	user, err := api.Users.Get(id)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(user)
}

func (api *API) ListUsers(ctx iris.Context) {
	if role := ctx.URLParamDefault("role", ""); role != "" {
		users, err := api.Users.ByRole(role)
		if err != nil {
			utils.HandleServiceError(err, ctx)
			return
		}
		ctx.JSON(users)
		return
	}

	users, err := api.Users.List()
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(users)
}

func (api *API) UpdateUserProfile(ctx iris.Context) {
	claims := utils.Claims(ctx)

	var upd services.UserUpdate
	if err := ctx.ReadJSON(&upd); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	user, err := api.Users.Update(claims.ID, upd)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(user)
}

func (api *API) UpdatePassword(ctx iris.Context) {
	claims := utils.Claims(ctx)

	var input UpdatePasswordInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if err := api.Users.UpdatePassword(claims.ID, input.CurrentPassword, input.NewPassword); err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(iris.Map{"message": "password updated successfully"})
}

package routes

import (
	"github.com/kataras/iris/v12"

	"real-estate-management-server/utils"
)

type UpdateRoleInput struct {
	Role string `json:"role" validate:"required"`
}

func (api *API) AdminDashboard(ctx iris.Context) {
	dashboard, err := api.Admin.Dashboard()
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(dashboard)
}

func (api *API) AdminUserReport(ctx iris.Context) {
	report, err := api.Admin.UserReport()
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(report)
}

func (api *API) AdminPropertyReport(ctx iris.Context) {
	report, err := api.Admin.PropertyReport()
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(report)
}

func (api *API) AdminAgreementReport(ctx iris.Context) {
	report, err := api.Admin.AgreementReport()
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(report)
}

func (api *API) AdminTenantReport(ctx iris.Context) {
	report, err := api.Admin.TenantReport()
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(report)
}

func (api *API) AdminActivitySummary(ctx iris.Context) {
	summary, err := api.Admin.ActivitySummary()
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(summary)
}

func (api *API) AdminFullReport(ctx iris.Context) {
	report, err := api.Admin.FullReport()
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(report)
}

func (api *API) AdminUpdateUserRole(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var input UpdateRoleInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	user, err := api.Users.UpdateRole(id, input.Role)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(user)
}

func (api *API) AdminDeleteUser(ctx iris.Context) {
	id := ctx.Params().Get("id")

	if err := api.Users.Delete(id); err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(iris.Map{"message": "user deleted successfully"})
}

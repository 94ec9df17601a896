package routes

import (
	"github.com/kataras/iris/v12"

	"real-estate-management-server/models"
	"real-estate-management-server/services"
	"real-estate-management-server/utils"
)

type CreateAgreementInput struct {
	PropertyID      string  `json:"propertyId" validate:"required"`
	TenantID        string  `json:"tenantId" validate:"required"`
	LandlordID      string  `json:"landlordId"`
	StartDate       string  `json:"startDate" validate:"required"`
	EndDate         string  `json:"endDate" validate:"required"`
	MonthlyRent     float64 `json:"monthlyRent" validate:"required,gt=0"`
	SecurityDeposit float64 `json:"securityDeposit" validate:"gte=0"`
	Terms           string  `json:"terms"`
}

type TerminateAgreementInput struct {
	Reason string `json:"reason" validate:"required"`
}

func (api *API) CreateAgreement(ctx iris.Context) {
	claims := utils.Claims(ctx)

	var input CreateAgreementInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	// The landlord is the caller; only admins may file on behalf of one.
	landlordID := input.LandlordID
	if landlordID == "" || claims.Role != models.RoleAdmin {
		landlordID = claims.ID
	}

	agreement, err := api.Agreements.Create(services.CreateAgreementInput{
		PropertyID:      input.PropertyID,
		TenantID:        input.TenantID,
		LandlordID:      landlordID,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		MonthlyRent:     input.MonthlyRent,
		SecurityDeposit: input.SecurityDeposit,
		Terms:           input.Terms,
	})
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(agreement)
}

func (api *API) GetAgreement(ctx iris.Context) {
	id := ctx.Params().Get("id")

	agreement, err := api.Agreements.Get(id)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(agreement)
}

func (api *API) ListAgreements(ctx iris.Context) {
	agreements, err := api.Agreements.List()
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(agreements)
}

func (api *API) ListActiveAgreements(ctx iris.Context) {
	agreements, err := api.Agreements.Active()
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(agreements)
}

func (api *API) GetAgreementsByTenant(ctx iris.Context) {
	agreements, err := api.Agreements.ByTenant(ctx.Params().Get("id"))
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(agreements)
}

func (api *API) GetAgreementsByLandlord(ctx iris.Context) {
	agreements, err := api.Agreements.ByLandlord(ctx.Params().Get("id"))
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(agreements)
}

func (api *API) GetAgreementsByProperty(ctx iris.Context) {
	agreements, err := api.Agreements.ByProperty(ctx.Params().Get("id"))
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(agreements)
}

func (api *API) SendAgreementForSigning(ctx iris.Context) {
	claims := utils.Claims(ctx)
	id := ctx.Params().Get("id")

	agreement, err := api.Agreements.SendForSigning(id, claims.ID)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(agreement)
}

func (api *API) SignAgreementByTenant(ctx iris.Context) {
	claims := utils.Claims(ctx)
	id := ctx.Params().Get("id")

	agreement, err := api.Agreements.SignByTenant(id, claims.ID)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(agreement)
}

func (api *API) SignAgreementByLandlord(ctx iris.Context) {
	claims := utils.Claims(ctx)
	id := ctx.Params().Get("id")

	agreement, err := api.Agreements.SignByLandlord(id, claims.ID)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(agreement)
}

func (api *API) TerminateAgreement(ctx iris.Context) {
	claims := utils.Claims(ctx)
	id := ctx.Params().Get("id")

	var input TerminateAgreementInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	agreement, err := api.Agreements.Terminate(id, input.Reason, claims.ID, claims.Role)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(agreement)
}

func (api *API) UpdateAgreement(ctx iris.Context) {
	claims := utils.Claims(ctx)
	id := ctx.Params().Get("id")

	var upd services.AgreementUpdate
	if err := ctx.ReadJSON(&upd); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	agreement, err := api.Agreements.Update(id, upd, claims.ID, claims.Role)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(agreement)
}

func (api *API) DeleteAgreement(ctx iris.Context) {
	claims := utils.Claims(ctx)
	id := ctx.Params().Get("id")

	if err := api.Agreements.Delete(id, claims.Role); err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(iris.Map{"message": "rental agreement deleted successfully"})
}

func (api *API) AgreementStatistics(ctx iris.Context) {
	stats, err := api.Agreements.Statistics()
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(stats)
}

package routes

import (
	"github.com/kataras/iris/v12"

	"real-estate-management-server/models"
	"real-estate-management-server/services"
	"real-estate-management-server/utils"
)

type CreateTenantInput struct {
	UserID            string   `json:"userId"`
	EmploymentStatus  string   `json:"employmentStatus"`
	Employer          string   `json:"employer"`
	AnnualIncome      float64  `json:"annualIncome" validate:"gte=0"`
	CreditScore       *int     `json:"creditScore"`
	PreviousAddresses []string `json:"previousAddresses"`
}

type AddReferenceInput struct {
	Name         string `json:"name" validate:"required"`
	Relationship string `json:"relationship" validate:"required"`
	Phone        string `json:"phone"`
	Email        string `json:"email" validate:"omitempty,email"`
}

func (api *API) CreateTenant(ctx iris.Context) {
	claims := utils.Claims(ctx)

	var input CreateTenantInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	// Non-admins can only open a profile for themselves.
	userID := input.UserID
	if userID == "" || claims.Role != models.RoleAdmin {
		userID = claims.ID
	}

	tenant, err := api.Tenants.Create(services.CreateTenantInput{
		UserID:            userID,
		EmploymentStatus:  input.EmploymentStatus,
		Employer:          input.Employer,
		AnnualIncome:      input.AnnualIncome,
		CreditScore:       input.CreditScore,
		PreviousAddresses: input.PreviousAddresses,
	})
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(tenant)
}

func (api *API) GetTenant(ctx iris.Context) {
	id := ctx.Params().Get("id")

	tenant, err := api.Tenants.Get(id)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(tenant)
}

func (api *API) GetMyTenantProfile(ctx iris.Context) {
	claims := utils.Claims(ctx)

	tenant, err := api.Tenants.GetByUserID(claims.ID)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(tenant)
}

func (api *API) ListTenants(ctx iris.Context) {
	tenants, err := api.Tenants.List()
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(tenants)
}

func (api *API) SearchTenants(ctx iris.Context) {
	filters := services.TenantFilters{
		EmploymentStatus: ctx.URLParamDefault("employmentStatus", ""),
		MinIncome:        ctx.URLParamFloat64Default("minIncome", 0),
		MaxIncome:        ctx.URLParamFloat64Default("maxIncome", 0),
	}
	if ctx.URLParamExists("hasActiveRental") {
		hasRental, _ := ctx.URLParamBool("hasActiveRental")
		filters.HasActiveRental = &hasRental
	}

	tenants, err := api.Tenants.Search(filters)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(tenants)
}

func (api *API) UpdateTenant(ctx iris.Context) {
	claims := utils.Claims(ctx)
	id := ctx.Params().Get("id")

	var upd services.TenantUpdate
	if err := ctx.ReadJSON(&upd); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	tenant, err := api.Tenants.Update(id, upd, claims.ID, claims.Role)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(tenant)
}

func (api *API) AddTenantReference(ctx iris.Context) {
	claims := utils.Claims(ctx)
	id := ctx.Params().Get("id")

	var input AddReferenceInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	tenant, err := api.Tenants.AddReference(id, models.Reference{
		Name:         input.Name,
		Relationship: input.Relationship,
		Phone:        input.Phone,
		Email:        input.Email,
	}, claims.ID, claims.Role)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(tenant)
}

func (api *API) GetTenantRentalHistory(ctx iris.Context) {
	claims := utils.Claims(ctx)
	id := ctx.Params().Get("id")

	history, err := api.Tenants.RentalHistory(id, claims.ID, claims.Role)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(history)
}

func (api *API) GetTenantCurrentRental(ctx iris.Context) {
	id := ctx.Params().Get("id")

	current, err := api.Tenants.CurrentRental(id)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	if current == nil {
		ctx.JSON(iris.Map{"property": nil, "agreement": nil})
		return
	}
	ctx.JSON(current)
}

func (api *API) DeleteTenant(ctx iris.Context) {
	claims := utils.Claims(ctx)
	id := ctx.Params().Get("id")

	if err := api.Tenants.Delete(id, claims.Role); err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(iris.Map{"message": "tenant profile deleted successfully"})
}

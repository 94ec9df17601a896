package routes

import (
	"github.com/kataras/iris/v12"

	"real-estate-management-server/services"
	"real-estate-management-server/utils"
)

type CreatePropertyInput struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Address      string   `json:"address" validate:"required"`
	City         string   `json:"city" validate:"required"`
	State        string   `json:"state" validate:"required"`
	ZipCode      string   `json:"zipCode" validate:"required"`
	PropertyType string   `json:"propertyType"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    float64  `json:"bathrooms"`
	SquareFeet   int      `json:"squareFeet"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	RentOrSale   string   `json:"rentOrSale"`
	Amenities    []string `json:"amenities"`
	Images       []string `json:"images"`
}

type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

type AddAmenityInput struct {
	Amenity string `json:"amenity" validate:"required"`
}

type AddImageInput struct {
	ImageURL string `json:"imageUrl" validate:"required,url"`
}

func (api *API) CreateProperty(ctx iris.Context) {
	claims := utils.Claims(ctx)

	var input CreatePropertyInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	property, err := api.Properties.Create(services.CreatePropertyInput{
		Title:        input.Title,
		Description:  input.Description,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		ZipCode:      input.ZipCode,
		PropertyType: input.PropertyType,
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
		SquareFeet:   input.SquareFeet,
		Price:        input.Price,
		RentOrSale:   input.RentOrSale,
		OwnerID:      claims.ID,
		Amenities:    input.Amenities,
		Images:       input.Images,
	})
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(property)
}

func (api *API) GetProperty(ctx iris.Context) {
	id := ctx.Params().Get("id")

	property, err := api.Properties.Get(id)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(property)
}

func (api *API) ListProperties(ctx iris.Context) {
	properties, err := api.Properties.List()
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(properties)
}

func (api *API) ListAvailableProperties(ctx iris.Context) {
	properties, err := api.Properties.Available()
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(properties)
}

func (api *API) GetPropertiesByOwner(ctx iris.Context) {
	ownerID := ctx.Params().Get("id")

	properties, err := api.Properties.ByOwner(ownerID)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(properties)
}

func (api *API) SearchProperties(ctx iris.Context) {
	filters := services.PropertyFilters{
		City:         ctx.URLParamDefault("city", ""),
		State:        ctx.URLParamDefault("state", ""),
		PropertyType: ctx.URLParamDefault("propertyType", ""),
		MinPrice:     ctx.URLParamFloat64Default("minPrice", 0),
		MaxPrice:     ctx.URLParamFloat64Default("maxPrice", 0),
		Bedrooms:     ctx.URLParamIntDefault("bedrooms", 0),
		RentOrSale:   ctx.URLParamDefault("rentOrSale", ""),
		Status:       ctx.URLParamDefault("status", ""),
	}

	properties, err := api.Properties.Search(filters)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(properties)
}

func (api *API) UpdateProperty(ctx iris.Context) {
	claims := utils.Claims(ctx)
	id := ctx.Params().Get("id")

	var upd services.PropertyUpdate
	if err := ctx.ReadJSON(&upd); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	property, err := api.Properties.Update(id, upd, claims.ID, claims.Role)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(property)
}

func (api *API) UpdatePropertyStatus(ctx iris.Context) {
	claims := utils.Claims(ctx)
	id := ctx.Params().Get("id")

	var input UpdateStatusInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	property, err := api.Properties.UpdateStatus(id, input.Status, claims.ID, claims.Role)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(property)
}

func (api *API) AddAmenity(ctx iris.Context) {
	claims := utils.Claims(ctx)
	id := ctx.Params().Get("id")

	var input AddAmenityInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	property, err := api.Properties.AddAmenity(id, input.Amenity, claims.ID, claims.Role)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(property)
}

func (api *API) AddImage(ctx iris.Context) {
	claims := utils.Claims(ctx)
	id := ctx.Params().Get("id")

	var input AddImageInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	property, err := api.Properties.AddImage(id, input.ImageURL, claims.ID, claims.Role)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(property)
}

func (api *API) DeleteProperty(ctx iris.Context) {
	claims := utils.Claims(ctx)
	id := ctx.Params().Get("id")

	if err := api.Properties.Delete(id, claims.ID, claims.Role); err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(iris.Map{"message": "property deleted successfully"})
}

func (api *API) PropertyStatistics(ctx iris.Context) {
	stats, err := api.Properties.Statistics(ctx.URLParamDefault("ownerId", ""))
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(stats)
}

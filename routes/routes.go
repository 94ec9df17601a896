package routes

import (
	"real-estate-management-server/services"
	"real-estate-management-server/storage"
)

// API bundles the services behind the HTTP handlers. Constructed once
// in main with an explicitly built store; the handlers hold no
// package-level state.
type API struct {
	Users      *services.UserService
	Properties *services.PropertyService
	Tenants    *services.TenantService
	Agreements *services.RentalAgreementService
	Admin      *services.AdminService
}

func NewAPI(store *storage.Store) *API {
	return &API{
		Users:      services.NewUserService(store),
		Properties: services.NewPropertyService(store),
		Tenants:    services.NewTenantService(store),
		Agreements: services.NewRentalAgreementService(store),
		Admin:      services.NewAdminService(store),
	}
}

package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"real-estate-management-server/models"
	"real-estate-management-server/storage"
)

// testEnv seeds a memory store with a landlord, a tenant user (plus
// profile), an admin and one available property.
type testEnv struct {
	store      *storage.Store
	Users      *UserService
	Properties *PropertyService
	Tenants    *TenantService
	Agreements *RentalAgreementService
	Admin      *AdminService

	Landlord      *models.User
	TenantUser    *models.User
	AdminUser     *models.User
	Property      *models.Property
	TenantProfile *models.Tenant
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := storage.NewMemoryStore()

	env := &testEnv{
		store:      store,
		Users:      NewUserService(store),
		Properties: NewPropertyService(store),
		Tenants:    NewTenantService(store),
		Agreements: NewRentalAgreementService(store),
		Admin:      NewAdminService(store),
	}

	env.Landlord = models.NewUser("landlord@example.com", "hash", "Lena", "Landlord", "", models.RoleLandlord)
	env.TenantUser = models.NewUser("tenant@example.com", "hash", "Tom", "Tenant", "", models.RoleTenant)
	env.AdminUser = models.NewUser("admin@example.com", "hash", "Ada", "Admin", "", models.RoleAdmin)
	require.NoError(t, store.Users.Create(env.Landlord))
	require.NoError(t, store.Users.Create(env.TenantUser))
	require.NoError(t, store.Users.Create(env.AdminUser))

	property, err := env.Properties.Create(CreatePropertyInput{
		Title:        "Sunny two-bedroom",
		Address:      "12 Main St",
		City:         "Springfield",
		State:        "IL",
		ZipCode:      "62701",
		PropertyType: "apartment",
		Bedrooms:     2,
		Bathrooms:    1,
		SquareFeet:   900,
		Price:        2000,
		RentOrSale:   models.ListingRent,
		OwnerID:      env.Landlord.ID,
	})
	require.NoError(t, err)
	env.Property = property

	profile, err := env.Tenants.Create(CreateTenantInput{
		UserID:           env.TenantUser.ID,
		EmploymentStatus: models.EmploymentEmployed,
		AnnualIncome:     60000,
	})
	require.NoError(t, err)
	env.TenantProfile = profile

	return env
}

// pendingAgreement creates a draft agreement on the env's property and
// moves it to pending.
func (env *testEnv) pendingAgreement(t *testing.T) *models.RentalAgreement {
	t.Helper()
	agreement := env.draftAgreement(t)
	agreement, err := env.Agreements.SendForSigning(agreement.ID, env.Landlord.ID)
	require.NoError(t, err)
	return agreement
}

func (env *testEnv) draftAgreement(t *testing.T) *models.RentalAgreement {
	t.Helper()
	agreement, err := env.Agreements.Create(CreateAgreementInput{
		PropertyID:      env.Property.ID,
		TenantID:        env.TenantUser.ID,
		LandlordID:      env.Landlord.ID,
		StartDate:       "2026-01-01",
		EndDate:         "2026-12-31",
		MonthlyRent:     2000,
		SecurityDeposit: 2000,
		Terms:           "no smoking",
	})
	require.NoError(t, err)
	return agreement
}

// activeAgreement signs a pending agreement on both sides.
func (env *testEnv) activeAgreement(t *testing.T) *models.RentalAgreement {
	t.Helper()
	agreement := env.pendingAgreement(t)
	_, err := env.Agreements.SignByLandlord(agreement.ID, env.Landlord.ID)
	require.NoError(t, err)
	agreement, err = env.Agreements.SignByTenant(agreement.ID, env.TenantUser.ID)
	require.NoError(t, err)
	return agreement
}

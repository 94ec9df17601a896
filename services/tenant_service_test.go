package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"real-estate-management-server/models"
)

func TestCreateTenantRequiresExistingUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Tenants.Create(CreateTenantInput{UserID: "missing"})
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestCreateTenantUniquePerUser(t *testing.T) {
	env := newTestEnv(t)

	// The env already holds a profile for the tenant user.
	_, err := env.Tenants.Create(CreateTenantInput{UserID: env.TenantUser.ID})
	require.Error(t, err)
	assert.Equal(t, KindAlreadyExists, KindOf(err))
}

func TestCreateTenantValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Tenants.Create(CreateTenantInput{UserID: env.Landlord.ID, EmploymentStatus: "freelancer"})
	assert.Equal(t, KindInvalidInput, KindOf(err))

	_, err = env.Tenants.Create(CreateTenantInput{UserID: env.Landlord.ID, AnnualIncome: -1})
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestTenantUpdateAllowListedFields(t *testing.T) {
	env := newTestEnv(t)

	employer := "Acme Corp"
	income := 72000.0
	profile, err := env.Tenants.Update(env.TenantProfile.ID, TenantUpdate{Employer: &employer, AnnualIncome: &income}, env.TenantUser.ID, models.RoleTenant)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", profile.Employer)
	assert.Equal(t, 72000.0, profile.AnnualIncome)

	// Another tenant cannot touch the profile.
	_, err = env.Tenants.Update(env.TenantProfile.ID, TenantUpdate{Employer: &employer}, env.Landlord.ID, models.RoleLandlord)
	assert.Equal(t, KindNotAuthorized, KindOf(err))
}

func TestAddReference(t *testing.T) {
	env := newTestEnv(t)

	profile, err := env.Tenants.AddReference(env.TenantProfile.ID, models.Reference{
		Name: "Jane Doe", Relationship: "former landlord", Phone: "555-0101",
	}, env.TenantUser.ID, models.RoleTenant)
	require.NoError(t, err)
	require.Len(t, profile.References, 1)
	assert.Equal(t, "Jane Doe", profile.References[0].Name)
	assert.False(t, profile.References[0].AddedAt.IsZero())

	_, err = env.Tenants.AddReference(env.TenantProfile.ID, models.Reference{}, env.TenantUser.ID, models.RoleTenant)
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestRentalHistoryVisibility(t *testing.T) {
	env := newTestEnv(t)
	agreement := env.activeAgreement(t)
	_, err := env.Agreements.Terminate(agreement.ID, "end of term", env.Landlord.ID, models.RoleLandlord)
	require.NoError(t, err)

	history, err := env.Tenants.RentalHistory(env.TenantProfile.ID, env.TenantUser.ID, models.RoleTenant)
	require.NoError(t, err)
	require.Len(t, history, 1)

	// Landlords and admins may look; agents may not.
	_, err = env.Tenants.RentalHistory(env.TenantProfile.ID, env.Landlord.ID, models.RoleLandlord)
	require.NoError(t, err)
	_, err = env.Tenants.RentalHistory(env.TenantProfile.ID, "someone", models.RoleAgent)
	assert.Equal(t, KindNotAuthorized, KindOf(err))
}

func TestCurrentRentalJoin(t *testing.T) {
	env := newTestEnv(t)

	current, err := env.Tenants.CurrentRental(env.TenantProfile.ID)
	require.NoError(t, err)
	assert.Nil(t, current)

	agreement := env.activeAgreement(t)

	current, err = env.Tenants.CurrentRental(env.TenantProfile.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	require.NotNil(t, current.Property)
	require.NotNil(t, current.Agreement)
	assert.Equal(t, env.Property.ID, current.Property.ID)
	assert.Equal(t, agreement.ID, current.Agreement.ID)
}

func TestDeleteTenant(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, KindNotAuthorized, KindOf(env.Tenants.Delete(env.TenantProfile.ID, models.RoleLandlord)))

	env.activeAgreement(t)
	err := env.Tenants.Delete(env.TenantProfile.ID, models.RoleAdmin)
	assert.Equal(t, KindConflict, KindOf(err))

	// After the rental ends the profile can go.
	agreements, err2 := env.Agreements.Active()
	require.NoError(t, err2)
	require.Len(t, agreements, 1)
	_, err2 = env.Agreements.Terminate(agreements[0].ID, "done", env.Landlord.ID, models.RoleLandlord)
	require.NoError(t, err2)

	require.NoError(t, env.Tenants.Delete(env.TenantProfile.ID, models.RoleAdmin))
}

func TestSearchTenants(t *testing.T) {
	env := newTestEnv(t)
	env.activeAgreement(t)

	yes := true
	no := false
	withRental, err := env.Tenants.Search(TenantFilters{HasActiveRental: &yes})
	require.NoError(t, err)
	assert.Len(t, withRental, 1)

	withoutRental, err := env.Tenants.Search(TenantFilters{HasActiveRental: &no})
	require.NoError(t, err)
	assert.Empty(t, withoutRental)

	employed, err := env.Tenants.Search(TenantFilters{EmploymentStatus: models.EmploymentEmployed, MinIncome: 50000})
	require.NoError(t, err)
	assert.Len(t, employed, 1)

	highEarners, err := env.Tenants.Search(TenantFilters{MinIncome: 100000})
	require.NoError(t, err)
	assert.Empty(t, highEarners)
}

func TestTenantStatistics(t *testing.T) {
	env := newTestEnv(t)

	stats, err := env.Tenants.Statistics()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.WithoutRentals)
	assert.Equal(t, 60000.0, stats.AverageIncome)
	assert.Equal(t, 1, stats.ByEmployment[models.EmploymentEmployed])
}

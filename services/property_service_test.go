package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"real-estate-management-server/models"
)

func TestUpdateStatusRejectsUnknownValues(t *testing.T) {
	env := newTestEnv(t)

	for _, status := range []string{"", "AVAILABLE", "demolished", "active"} {
		_, err := env.Properties.UpdateStatus(env.Property.ID, status, env.Landlord.ID, models.RoleLandlord)
		require.Error(t, err, "status %q", status)
		assert.Equal(t, KindInvalidInput, KindOf(err))
	}

	// The property is untouched after rejections.
	property, err := env.Properties.Get(env.Property.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PropertyAvailable, property.Status)
	assert.Equal(t, env.Property.UpdatedAt, property.UpdatedAt)
}

func TestUpdateStatusOwnershipGate(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Properties.UpdateStatus(env.Property.ID, models.PropertyMaintenance, env.TenantUser.ID, models.RoleTenant)
	assert.Equal(t, KindNotAuthorized, KindOf(err))

	// The admin may, without owning it.
	property, err := env.Properties.UpdateStatus(env.Property.ID, models.PropertyMaintenance, env.AdminUser.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.PropertyMaintenance, property.Status)
}

func TestAddAmenityIdempotent(t *testing.T) {
	env := newTestEnv(t)

	property, err := env.Properties.AddAmenity(env.Property.ID, "parking", env.Landlord.ID, models.RoleLandlord)
	require.NoError(t, err)
	require.Equal(t, []string{"parking"}, []string(property.Amenities))
	stampAfterFirstAdd := property.UpdatedAt

	// The duplicate add is a silent no-op, without a timestamp bump.
	property, err = env.Properties.AddAmenity(env.Property.ID, "parking", env.Landlord.ID, models.RoleLandlord)
	require.NoError(t, err)
	assert.Equal(t, []string{"parking"}, []string(property.Amenities))
	assert.Equal(t, stampAfterFirstAdd, property.UpdatedAt)
}

func TestAddImageAppends(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Properties.AddImage(env.Property.ID, "https://img.example.com/1.jpg", env.Landlord.ID, models.RoleLandlord)
	require.NoError(t, err)
	property, err := env.Properties.AddImage(env.Property.ID, "https://img.example.com/1.jpg", env.Landlord.ID, models.RoleLandlord)
	require.NoError(t, err)

	// Unlike amenities, images are an ordered sequence; duplicates stay.
	assert.Len(t, []string(property.Images), 2)
}

func TestUpdatePropertyAllowListedFields(t *testing.T) {
	env := newTestEnv(t)

	title := "Renovated two-bedroom"
	price := 2200.0
	property, err := env.Properties.Update(env.Property.ID, PropertyUpdate{Title: &title, Price: &price}, env.Landlord.ID, models.RoleLandlord)
	require.NoError(t, err)
	assert.Equal(t, "Renovated two-bedroom", property.Title)
	assert.Equal(t, 2200.0, property.Price)
	assert.Equal(t, env.Landlord.ID, property.OwnerID)

	badType := "castle"
	_, err = env.Properties.Update(env.Property.ID, PropertyUpdate{PropertyType: &badType}, env.Landlord.ID, models.RoleLandlord)
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestDeletePropertyWithActiveAgreement(t *testing.T) {
	env := newTestEnv(t)
	env.activeAgreement(t)

	err := env.Properties.Delete(env.Property.ID, env.Landlord.ID, models.RoleLandlord)
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))

	_, err = env.Properties.Get(env.Property.ID)
	require.NoError(t, err)
}

func TestDeletePropertyWithInactiveAgreements(t *testing.T) {
	env := newTestEnv(t)
	agreement := env.activeAgreement(t)
	_, err := env.Agreements.Terminate(agreement.ID, "moving out", env.Landlord.ID, models.RoleLandlord)
	require.NoError(t, err)
	env.draftAgreement(t)

	// Only draft and terminated agreements remain; delete succeeds.
	require.NoError(t, env.Properties.Delete(env.Property.ID, env.Landlord.ID, models.RoleLandlord))

	_, err = env.Properties.Get(env.Property.ID)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestSearchProperties(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.Properties.Create(CreatePropertyInput{
		Title: "Downtown loft", Address: "9 Side St", City: "Chicago", State: "IL", ZipCode: "60601",
		PropertyType: "condo", Bedrooms: 1, Price: 3200, RentOrSale: models.ListingSale, OwnerID: env.Landlord.ID,
	})
	require.NoError(t, err)

	cases := []struct {
		name    string
		filters PropertyFilters
		want    int
	}{
		{"by city substring", PropertyFilters{City: "spring"}, 1},
		{"by type", PropertyFilters{PropertyType: "condo"}, 1},
		{"by price band", PropertyFilters{MinPrice: 1000, MaxPrice: 2500}, 1},
		{"by bedrooms", PropertyFilters{Bedrooms: 2}, 1},
		{"by listing type", PropertyFilters{RentOrSale: models.ListingRent}, 1},
		{"no match", PropertyFilters{City: "Boston"}, 0},
		{"all", PropertyFilters{}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := env.Properties.Search(tc.filters)
			require.NoError(t, err)
			assert.Len(t, got, tc.want)
		})
	}
}

func TestPropertyStatistics(t *testing.T) {
	env := newTestEnv(t)

	stats, err := env.Properties.Statistics("")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Available)
	assert.Equal(t, 2000.0, stats.AveragePrice)

	// Averages over an empty owner set are 0, not NaN.
	stats, err = env.Properties.Statistics("nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.AveragePrice)
}

func TestCreatePropertyValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Properties.Create(CreatePropertyInput{Price: 0, OwnerID: env.Landlord.ID})
	assert.Equal(t, KindInvalidInput, KindOf(err))

	_, err = env.Properties.Create(CreatePropertyInput{Price: 100, Bedrooms: -1, OwnerID: env.Landlord.ID})
	assert.Equal(t, KindInvalidInput, KindOf(err))

	_, err = env.Properties.Create(CreatePropertyInput{Price: 100, PropertyType: "tent", OwnerID: env.Landlord.ID})
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

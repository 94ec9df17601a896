package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"real-estate-management-server/models"
)

func TestMemoryCollectionCRUD(t *testing.T) {
	store := NewMemoryStore()
	user := models.NewUser("crud@example.com", "hash", "Cora", "Rudd", "", models.RoleTenant)

	require.NoError(t, store.Users.Create(user))

	got, err := store.Users.Get(user.ID)
	require.NoError(t, err)
	assert.Same(t, user, got)

	got.FirstName = "Corinne"
	require.NoError(t, store.Users.Save(got))

	again, err := store.Users.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Corinne", again.FirstName)

	require.NoError(t, store.Users.Delete(user.ID))
	_, err = store.Users.Get(user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCollectionGetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Users.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCollectionSaveMissing(t *testing.T) {
	store := NewMemoryStore()
	user := models.NewUser("ghost@example.com", "hash", "Gus", "Host", "", models.RoleTenant)

	err := store.Users.Save(user)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCollectionDeleteMissing(t *testing.T) {
	store := NewMemoryStore()

	err := store.Users.Delete("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCollectionFind(t *testing.T) {
	store := NewMemoryStore()
	landlord := models.NewUser("owner@example.com", "hash", "Olive", "Owner", "", models.RoleLandlord)
	tenant := models.NewUser("renter@example.com", "hash", "Rita", "Renter", "", models.RoleTenant)
	require.NoError(t, store.Users.Create(landlord))
	require.NoError(t, store.Users.Create(tenant))

	landlords, err := store.Users.Find(func(u *models.User) bool { return u.Role == models.RoleLandlord })
	require.NoError(t, err)
	require.Len(t, landlords, 1)
	assert.Equal(t, landlord.ID, landlords[0].ID)

	none, err := store.Users.Find(func(u *models.User) bool { return u.Role == models.RoleAgent })
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUserByEmailCaseInsensitive(t *testing.T) {
	store := NewMemoryStore()
	user := models.NewUser("mixed@example.com", "hash", "Max", "Case", "", models.RoleTenant)
	require.NoError(t, store.Users.Create(user))

	got, err := store.UserByEmail("Mixed@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = store.UserByEmail("absent@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTenantByUserID(t *testing.T) {
	store := NewMemoryStore()
	user := models.NewUser("profiled@example.com", "hash", "Pia", "Profile", "", models.RoleTenant)
	require.NoError(t, store.Users.Create(user))
	tenant := models.NewTenant(user.ID)
	require.NoError(t, store.Tenants.Create(tenant))

	got, err := store.TenantByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, got.ID)

	_, err = store.TenantByUserID("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

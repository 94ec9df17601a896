package services

import (
	"real-estate-management-server/models"
	"real-estate-management-server/storage"
)

// Effect is one pending cross-entity write produced by an agreement
// transition. Transitions first compute their full effect list, then
// apply it; nothing is written until every guard has passed, and the
// whole list is applied under the store's write lock.
type Effect interface {
	Apply(store *storage.Store) error
}

// SetPropertyStatus flips a property's status as part of an agreement
// transition (rented on activation, available on termination).
type SetPropertyStatus struct {
	PropertyID string
	Status     string
}

func (e SetPropertyStatus) Apply(store *storage.Store) error {
	property, err := store.Properties.Get(e.PropertyID)
	if err != nil {
		// The property was deleted from under the agreement; the
		// transition itself still stands.
		return nil
	}
	property.Status = e.Status
	property.Touch()
	return store.Properties.Save(property)
}

// SetCurrentRental points a tenant profile at its new active tenancy.
type SetCurrentRental struct {
	TenantUserID string
	PropertyID   string
	AgreementID  string
}

func (e SetCurrentRental) Apply(store *storage.Store) error {
	tenant, err := store.TenantByUserID(e.TenantUserID)
	if err != nil {
		return nil
	}
	tenant.SetCurrentRental(e.PropertyID, e.AgreementID)
	return store.Tenants.Save(tenant)
}

// CloseCurrentRental appends the completed tenancy to the tenant's
// rental history and clears the current-rental pointer.
type CloseCurrentRental struct {
	TenantUserID string
	Record       models.RentalRecord
}

func (e CloseCurrentRental) Apply(store *storage.Store) error {
	tenant, err := store.TenantByUserID(e.TenantUserID)
	if err != nil {
		return nil
	}
	tenant.AppendRentalHistory(e.Record)
	tenant.ClearCurrentRental()
	return store.Tenants.Save(tenant)
}

func applyEffects(store *storage.Store, effects []Effect) error {
	for _, effect := range effects {
		if err := effect.Apply(store); err != nil {
			return err
		}
	}
	return nil
}

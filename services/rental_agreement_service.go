package services

import (
	"time"

	"real-estate-management-server/models"
	"real-estate-management-server/storage"
)

// RentalAgreementService owns the agreement state machine:
// draft -> pending -> active -> terminated, with "expired" a terminal
// status only ever set externally. Activation and termination carry
// cross-entity effects on the property and the tenant profile; those
// are computed as an explicit effect list and applied under the
// store-wide write lock.
type RentalAgreementService struct {
	store *storage.Store
}

func NewRentalAgreementService(store *storage.Store) *RentalAgreementService {
	return &RentalAgreementService{store: store}
}

type CreateAgreementInput struct {
	PropertyID      string
	TenantID        string
	LandlordID      string
	StartDate       string
	EndDate         string
	MonthlyRent     float64
	SecurityDeposit float64
	Terms           string
}

// AgreementUpdate is the allow-listed field set for general updates.
// Status, signing flags and the foreign references are deliberately
// absent; they only move through the lifecycle operations.
type AgreementUpdate struct {
	StartDate       *string  `json:"startDate"`
	EndDate         *string  `json:"endDate"`
	MonthlyRent     *float64 `json:"monthlyRent"`
	SecurityDeposit *float64 `json:"securityDeposit"`
	Terms           *string  `json:"terms"`
}

func (s *RentalAgreementService) Create(input CreateAgreementInput) (*models.RentalAgreement, error) {
	if input.MonthlyRent <= 0 {
		return nil, invalidInput("monthlyRent must be positive")
	}
	if input.SecurityDeposit < 0 {
		return nil, invalidInput("securityDeposit cannot be negative")
	}

	var agreement *models.RentalAgreement
	err := s.store.Write(func() error {
		property, err := s.store.Properties.Get(input.PropertyID)
		if err != nil {
			return notFound("property not found")
		}
		if !property.IsAvailable() {
			return invalidTransition("property is not available for rent")
		}
		if _, err := s.store.Users.Get(input.TenantID); err != nil {
			return notFound("tenant not found")
		}
		if _, err := s.store.Users.Get(input.LandlordID); err != nil {
			return notFound("landlord not found")
		}

		agreement = models.NewRentalAgreement(input.PropertyID, input.TenantID, input.LandlordID)
		agreement.StartDate = input.StartDate
		agreement.EndDate = input.EndDate
		agreement.MonthlyRent = input.MonthlyRent
		agreement.SecurityDeposit = input.SecurityDeposit
		agreement.Terms = input.Terms
		return s.store.Agreements.Create(agreement)
	})
	if err != nil {
		return nil, err
	}
	return agreement, nil
}

func (s *RentalAgreementService) Get(id string) (*models.RentalAgreement, error) {
	var agreement *models.RentalAgreement
	err := s.store.Read(func() error {
		var err error
		agreement, err = s.store.Agreements.Get(id)
		if err != nil {
			return notFound("rental agreement not found")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return agreement, nil
}

func (s *RentalAgreementService) List() ([]*models.RentalAgreement, error) {
	return s.find(func(*models.RentalAgreement) bool { return true })
}

func (s *RentalAgreementService) ByTenant(tenantID string) ([]*models.RentalAgreement, error) {
	return s.find(func(a *models.RentalAgreement) bool { return a.TenantID == tenantID })
}

func (s *RentalAgreementService) ByLandlord(landlordID string) ([]*models.RentalAgreement, error) {
	return s.find(func(a *models.RentalAgreement) bool { return a.LandlordID == landlordID })
}

func (s *RentalAgreementService) ByProperty(propertyID string) ([]*models.RentalAgreement, error) {
	return s.find(func(a *models.RentalAgreement) bool { return a.PropertyID == propertyID })
}

func (s *RentalAgreementService) Active() ([]*models.RentalAgreement, error) {
	return s.find(func(a *models.RentalAgreement) bool { return a.IsActive() })
}

func (s *RentalAgreementService) find(pred func(*models.RentalAgreement) bool) ([]*models.RentalAgreement, error) {
	var agreements []*models.RentalAgreement
	err := s.store.Read(func() error {
		var err error
		agreements, err = s.store.Agreements.Find(pred)
		return err
	})
	if err != nil {
		return nil, err
	}
	return agreements, nil
}

// SendForSigning moves a draft agreement to pending. Landlord only.
func (s *RentalAgreementService) SendForSigning(id, callerID string) (*models.RentalAgreement, error) {
	var agreement *models.RentalAgreement
	err := s.store.Write(func() error {
		var err error
		agreement, err = s.store.Agreements.Get(id)
		if err != nil {
			return notFound("rental agreement not found")
		}
		if agreement.LandlordID != callerID {
			return notAuthorized("only the landlord can send the agreement for signing")
		}
		if agreement.Status != models.AgreementDraft {
			return invalidTransition("agreement must be in draft status to send for signing")
		}
		agreement.Status = models.AgreementPending
		agreement.Touch()
		return s.store.Agreements.Save(agreement)
	})
	if err != nil {
		return nil, err
	}
	return agreement, nil
}

// SignByTenant records the tenant's signature on a pending agreement
// and runs the activation check.
func (s *RentalAgreementService) SignByTenant(id, callerID string) (*models.RentalAgreement, error) {
	return s.sign(id, callerID, true)
}

// SignByLandlord records the landlord's signature on a pending
// agreement and runs the activation check.
func (s *RentalAgreementService) SignByLandlord(id, callerID string) (*models.RentalAgreement, error) {
	return s.sign(id, callerID, false)
}

func (s *RentalAgreementService) sign(id, callerID string, byTenant bool) (*models.RentalAgreement, error) {
	var agreement *models.RentalAgreement
	err := s.store.Write(func() error {
		var err error
		agreement, err = s.store.Agreements.Get(id)
		if err != nil {
			return notFound("rental agreement not found")
		}
		if byTenant && agreement.TenantID != callerID {
			return notAuthorized("not authorized to sign this agreement")
		}
		if !byTenant && agreement.LandlordID != callerID {
			return notAuthorized("not authorized to sign this agreement")
		}
		if agreement.Status != models.AgreementPending {
			return invalidTransition("agreement must be in pending status to sign")
		}

		if byTenant {
			agreement.SignedByTenant = true
		} else {
			agreement.SignedByLandlord = true
		}
		agreement.Touch()

		// Activation is decoupled from the individual sign calls: it
		// is a derived check run after every signature, so tenant-first
		// and landlord-first converge on the same activated state.
		if effects := s.checkAndActivate(agreement); effects != nil {
			if err := applyEffects(s.store, effects); err != nil {
				return err
			}
		}
		return s.store.Agreements.Save(agreement)
	})
	if err != nil {
		return nil, err
	}
	return agreement, nil
}

// checkAndActivate flips a fully signed pending agreement to active
// and returns the pending cross-entity effects, or nil when the
// agreement is not ready.
func (s *RentalAgreementService) checkAndActivate(agreement *models.RentalAgreement) []Effect {
	if !agreement.IsFullySigned() || agreement.Status != models.AgreementPending {
		return nil
	}
	now := time.Now().UTC()
	agreement.Status = models.AgreementActive
	agreement.SignedAt = &now
	return []Effect{
		SetPropertyStatus{PropertyID: agreement.PropertyID, Status: models.PropertyRented},
		SetCurrentRental{
			TenantUserID: agreement.TenantID,
			PropertyID:   agreement.PropertyID,
			AgreementID:  agreement.ID,
		},
	}
}

// Terminate ends an active agreement. Landlord or admin only. The
// property reverts to available and the tenant profile accrues one
// rental-history record ending now.
func (s *RentalAgreementService) Terminate(id, reason, callerID, callerRole string) (*models.RentalAgreement, error) {
	var agreement *models.RentalAgreement
	err := s.store.Write(func() error {
		var err error
		agreement, err = s.store.Agreements.Get(id)
		if err != nil {
			return notFound("rental agreement not found")
		}
		if agreement.LandlordID != callerID && callerRole != models.RoleAdmin {
			return notAuthorized("not authorized to terminate this agreement")
		}
		if agreement.Status != models.AgreementActive {
			return invalidTransition("only active agreements can be terminated")
		}

		now := time.Now().UTC()
		agreement.Status = models.AgreementTerminated
		agreement.TerminationReason = reason
		agreement.TerminatedAt = &now
		agreement.Touch()

		effects := []Effect{
			SetPropertyStatus{PropertyID: agreement.PropertyID, Status: models.PropertyAvailable},
			CloseCurrentRental{
				TenantUserID: agreement.TenantID,
				Record: models.RentalRecord{
					PropertyID:  agreement.PropertyID,
					AgreementID: agreement.ID,
					StartDate:   agreement.StartDate,
					EndDate:     now.Format(time.RFC3339),
					LandlordID:  agreement.LandlordID,
				},
			},
		}
		if err := applyEffects(s.store, effects); err != nil {
			return err
		}
		return s.store.Agreements.Save(agreement)
	})
	if err != nil {
		return nil, err
	}
	return agreement, nil
}

// Update merges the allow-listed fields. Landlord, tenant or admin;
// active and terminated agreements are frozen for non-admins.
func (s *RentalAgreementService) Update(id string, upd AgreementUpdate, callerID, callerRole string) (*models.RentalAgreement, error) {
	if upd.MonthlyRent != nil && *upd.MonthlyRent <= 0 {
		return nil, invalidInput("monthlyRent must be positive")
	}
	if upd.SecurityDeposit != nil && *upd.SecurityDeposit < 0 {
		return nil, invalidInput("securityDeposit cannot be negative")
	}

	var agreement *models.RentalAgreement
	err := s.store.Write(func() error {
		var err error
		agreement, err = s.store.Agreements.Get(id)
		if err != nil {
			return notFound("rental agreement not found")
		}
		authorized := agreement.LandlordID == callerID ||
			agreement.TenantID == callerID ||
			callerRole == models.RoleAdmin
		if !authorized {
			return notAuthorized("not authorized to update this agreement")
		}
		frozen := agreement.Status == models.AgreementActive || agreement.Status == models.AgreementTerminated
		if frozen && callerRole != models.RoleAdmin {
			return invalidTransition("cannot modify active or terminated agreements")
		}

		if upd.StartDate != nil {
			agreement.StartDate = *upd.StartDate
		}
		if upd.EndDate != nil {
			agreement.EndDate = *upd.EndDate
		}
		if upd.MonthlyRent != nil {
			agreement.MonthlyRent = *upd.MonthlyRent
		}
		if upd.SecurityDeposit != nil {
			agreement.SecurityDeposit = *upd.SecurityDeposit
		}
		if upd.Terms != nil {
			agreement.Terms = *upd.Terms
		}
		agreement.Touch()
		return s.store.Agreements.Save(agreement)
	})
	if err != nil {
		return nil, err
	}
	return agreement, nil
}

// Delete removes a draft agreement. Admin only.
func (s *RentalAgreementService) Delete(id, callerRole string) error {
	if callerRole != models.RoleAdmin {
		return notAuthorized("only admins can delete agreements")
	}
	return s.store.Write(func() error {
		agreement, err := s.store.Agreements.Get(id)
		if err != nil {
			return notFound("rental agreement not found")
		}
		if agreement.Status != models.AgreementDraft {
			return invalidTransition("only draft agreements can be deleted")
		}
		return s.store.Agreements.Delete(id)
	})
}

type AgreementStatistics struct {
	Total               int     `json:"total"`
	Draft               int     `json:"draft"`
	Pending             int     `json:"pending"`
	Active              int     `json:"active"`
	Expired             int     `json:"expired"`
	Terminated          int     `json:"terminated"`
	TotalMonthlyRevenue float64 `json:"totalMonthlyRevenue"`
	AverageRent         float64 `json:"averageRent"`
}

func (s *RentalAgreementService) Statistics() (*AgreementStatistics, error) {
	agreements, err := s.List()
	if err != nil {
		return nil, err
	}
	stats := &AgreementStatistics{Total: len(agreements)}
	for _, a := range agreements {
		switch a.Status {
		case models.AgreementDraft:
			stats.Draft++
		case models.AgreementPending:
			stats.Pending++
		case models.AgreementActive:
			stats.Active++
			stats.TotalMonthlyRevenue += a.MonthlyRent
		case models.AgreementExpired:
			stats.Expired++
		case models.AgreementTerminated:
			stats.Terminated++
		}
	}
	// Averages over an empty set are defined as 0.
	if stats.Active > 0 {
		stats.AverageRent = stats.TotalMonthlyRevenue / float64(stats.Active)
	}
	return stats, nil
}

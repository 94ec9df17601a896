package services

import (
	"real-estate-management-server/models"
	"real-estate-management-server/storage"
)

type TenantService struct {
	store *storage.Store
}

func NewTenantService(store *storage.Store) *TenantService {
	return &TenantService{store: store}
}

type CreateTenantInput struct {
	UserID            string
	EmploymentStatus  string
	Employer          string
	AnnualIncome      float64
	CreditScore       *int
	PreviousAddresses []string
}

// TenantUpdate is the allow-listed field set for profile updates. The
// current-rental pointer and rental history only move through the
// agreement lifecycle.
type TenantUpdate struct {
	EmploymentStatus *string  `json:"employmentStatus"`
	Employer         *string  `json:"employer"`
	AnnualIncome     *float64 `json:"annualIncome"`
	CreditScore      *int     `json:"creditScore"`
}

type TenantFilters struct {
	EmploymentStatus string
	MinIncome        float64
	MaxIncome        float64
	HasActiveRental  *bool
}

func (s *TenantService) Create(input CreateTenantInput) (*models.Tenant, error) {
	if input.EmploymentStatus != "" && !models.ValidEmploymentStatus(input.EmploymentStatus) {
		return nil, invalidInput("invalid employment status: " + input.EmploymentStatus)
	}
	if input.AnnualIncome < 0 {
		return nil, invalidInput("annualIncome cannot be negative")
	}

	var tenant *models.Tenant
	err := s.store.Write(func() error {
		if _, err := s.store.Users.Get(input.UserID); err != nil {
			return notFound("user not found")
		}
		if _, err := s.store.TenantByUserID(input.UserID); err == nil {
			return alreadyExists("tenant profile already exists for this user")
		}

		tenant = models.NewTenant(input.UserID)
		if input.EmploymentStatus != "" {
			tenant.EmploymentStatus = input.EmploymentStatus
		}
		tenant.Employer = input.Employer
		tenant.AnnualIncome = input.AnnualIncome
		tenant.CreditScore = input.CreditScore
		tenant.PreviousAddresses = append(tenant.PreviousAddresses, input.PreviousAddresses...)
		return s.store.Tenants.Create(tenant)
	})
	if err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *TenantService) Get(id string) (*models.Tenant, error) {
	var tenant *models.Tenant
	err := s.store.Read(func() error {
		var err error
		tenant, err = s.store.Tenants.Get(id)
		if err != nil {
			return notFound("tenant not found")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *TenantService) GetByUserID(userID string) (*models.Tenant, error) {
	var tenant *models.Tenant
	err := s.store.Read(func() error {
		var err error
		tenant, err = s.store.TenantByUserID(userID)
		if err != nil {
			return notFound("tenant profile not found for this user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *TenantService) List() ([]*models.Tenant, error) {
	return s.find(func(*models.Tenant) bool { return true })
}

func (s *TenantService) Search(filters TenantFilters) ([]*models.Tenant, error) {
	return s.find(func(t *models.Tenant) bool {
		if filters.EmploymentStatus != "" && t.EmploymentStatus != filters.EmploymentStatus {
			return false
		}
		if filters.MinIncome > 0 && t.AnnualIncome < filters.MinIncome {
			return false
		}
		if filters.MaxIncome > 0 && t.AnnualIncome > filters.MaxIncome {
			return false
		}
		if filters.HasActiveRental != nil && t.HasActiveRental() != *filters.HasActiveRental {
			return false
		}
		return true
	})
}

func (s *TenantService) find(pred func(*models.Tenant) bool) ([]*models.Tenant, error) {
	var tenants []*models.Tenant
	err := s.store.Read(func() error {
		var err error
		tenants, err = s.store.Tenants.Find(pred)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tenants, nil
}

// Update merges the allow-listed fields. The tenant's own user or an
// admin only.
func (s *TenantService) Update(id string, upd TenantUpdate, callerID, callerRole string) (*models.Tenant, error) {
	if upd.EmploymentStatus != nil && !models.ValidEmploymentStatus(*upd.EmploymentStatus) {
		return nil, invalidInput("invalid employment status: " + *upd.EmploymentStatus)
	}
	if upd.AnnualIncome != nil && *upd.AnnualIncome < 0 {
		return nil, invalidInput("annualIncome cannot be negative")
	}

	var tenant *models.Tenant
	err := s.store.Write(func() error {
		var err error
		tenant, err = s.authorizedTenant(id, callerID, callerRole)
		if err != nil {
			return err
		}
		if upd.EmploymentStatus != nil {
			tenant.EmploymentStatus = *upd.EmploymentStatus
		}
		if upd.Employer != nil {
			tenant.Employer = *upd.Employer
		}
		if upd.AnnualIncome != nil {
			tenant.AnnualIncome = *upd.AnnualIncome
		}
		if upd.CreditScore != nil {
			tenant.CreditScore = upd.CreditScore
		}
		tenant.Touch()
		return s.store.Tenants.Save(tenant)
	})
	if err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *TenantService) AddReference(id string, ref models.Reference, callerID, callerRole string) (*models.Tenant, error) {
	if ref.Name == "" {
		return nil, invalidInput("reference name is required")
	}
	var tenant *models.Tenant
	err := s.store.Write(func() error {
		var err error
		tenant, err = s.authorizedTenant(id, callerID, callerRole)
		if err != nil {
			return err
		}
		tenant.AddReference(ref)
		return s.store.Tenants.Save(tenant)
	})
	if err != nil {
		return nil, err
	}
	return tenant, nil
}

// RentalHistory returns the append-only tenancy records. The tenant's
// own user, landlords and admins may view it.
func (s *TenantService) RentalHistory(id, callerID, callerRole string) ([]models.RentalRecord, error) {
	var history []models.RentalRecord
	err := s.store.Read(func() error {
		tenant, err := s.store.Tenants.Get(id)
		if err != nil {
			return notFound("tenant not found")
		}
		if tenant.UserID != callerID && callerRole != models.RoleAdmin && callerRole != models.RoleLandlord {
			return notAuthorized("not authorized to view this tenant's history")
		}
		history = tenant.RentalHistory
		return nil
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}

// CurrentRental joins the tenant's active property and agreement, or
// returns nil when there is none.
type CurrentRental struct {
	Property  *models.Property        `json:"property"`
	Agreement *models.RentalAgreement `json:"agreement"`
}

func (s *TenantService) CurrentRental(id string) (*CurrentRental, error) {
	var current *CurrentRental
	err := s.store.Read(func() error {
		tenant, err := s.store.Tenants.Get(id)
		if err != nil {
			return notFound("tenant not found")
		}
		if !tenant.HasActiveRental() {
			return nil
		}
		current = &CurrentRental{}
		if property, err := s.store.Properties.Get(*tenant.CurrentPropertyID); err == nil {
			current.Property = property
		}
		if agreement, err := s.store.Agreements.Get(*tenant.CurrentAgreementID); err == nil {
			current.Agreement = agreement
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes a tenant profile. Admin only; refused while the
// profile is tied to an active rental.
func (s *TenantService) Delete(id, callerRole string) error {
	if callerRole != models.RoleAdmin {
		return notAuthorized("only admins can delete tenant profiles")
	}
	return s.store.Write(func() error {
		tenant, err := s.store.Tenants.Get(id)
		if err != nil {
			return notFound("tenant not found")
		}
		if tenant.HasActiveRental() {
			return conflict("cannot delete tenant with active rental")
		}
		return s.store.Tenants.Delete(id)
	})
}

func (s *TenantService) authorizedTenant(id, callerID, callerRole string) (*models.Tenant, error) {
	tenant, err := s.store.Tenants.Get(id)
	if err != nil {
		return nil, notFound("tenant not found")
	}
	if tenant.UserID != callerID && callerRole != models.RoleAdmin {
		return nil, notAuthorized("not authorized to update this tenant profile")
	}
	return tenant, nil
}

type TenantStatistics struct {
	Total             int            `json:"total"`
	WithActiveRentals int            `json:"withActiveRentals"`
	WithoutRentals    int            `json:"withoutRentals"`
	ByEmployment      map[string]int `json:"byEmploymentStatus"`
	AverageIncome     float64        `json:"averageIncome"`
}

func (s *TenantService) Statistics() (*TenantStatistics, error) {
	tenants, err := s.List()
	if err != nil {
		return nil, err
	}
	stats := &TenantStatistics{
		Total:        len(tenants),
		ByEmployment: map[string]int{},
	}
	var incomeSum float64
	var earners int
	for _, t := range tenants {
		if t.HasActiveRental() {
			stats.WithActiveRentals++
		} else {
			stats.WithoutRentals++
		}
		stats.ByEmployment[t.EmploymentStatus]++
		if t.AnnualIncome > 0 {
			incomeSum += t.AnnualIncome
			earners++
		}
	}
	// Average over tenants with a reported income; 0 when none have one.
	if earners > 0 {
		stats.AverageIncome = incomeSum / float64(earners)
	}
	return stats, nil
}

package services

import (
	"sort"
	"time"

	"real-estate-management-server/models"
	"real-estate-management-server/storage"
)

// AdminService is the read-only reporting layer. It aggregates over
// the store and never mutates anything; averages over empty sets are
// defined as 0.
type AdminService struct {
	store *storage.Store
}

func NewAdminService(store *storage.Store) *AdminService {
	return &AdminService{store: store}
}

type Dashboard struct {
	TotalUsers         int            `json:"totalUsers"`
	UsersByRole        map[string]int `json:"usersByRole"`
	TotalProperties    int            `json:"totalProperties"`
	PropertiesByStatus map[string]int `json:"propertiesByStatus"`
	PropertiesByType   map[string]int `json:"propertiesByType"`
	TotalAgreements    int            `json:"totalAgreements"`
	AgreementsByStatus map[string]int `json:"agreementsByStatus"`
	TotalRevenue       float64        `json:"totalRevenue"`
}

func (s *AdminService) Dashboard() (*Dashboard, error) {
	var dash *Dashboard
	err := s.store.Read(func() error {
		users, err := s.store.Users.All()
		if err != nil {
			return err
		}
		properties, err := s.store.Properties.All()
		if err != nil {
			return err
		}
		agreements, err := s.store.Agreements.All()
		if err != nil {
			return err
		}

		dash = &Dashboard{
			TotalUsers:         len(users),
			UsersByRole:        map[string]int{},
			TotalProperties:    len(properties),
			PropertiesByStatus: map[string]int{},
			PropertiesByType:   map[string]int{},
			TotalAgreements:    len(agreements),
			AgreementsByStatus: map[string]int{},
		}
		for _, u := range users {
			dash.UsersByRole[u.Role]++
		}
		for _, p := range properties {
			dash.PropertiesByStatus[p.Status]++
			dash.PropertiesByType[p.PropertyType]++
		}
		for _, a := range agreements {
			dash.AgreementsByStatus[a.Status]++
			if a.IsActive() {
				dash.TotalRevenue += a.MonthlyRent
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dash, nil
}

type UserReport struct {
	TotalUsers  int                       `json:"totalUsers"`
	UsersByRole map[string][]*models.User `json:"usersByRole"`
	RecentUsers []*models.User            `json:"recentUsers"`
}

func (s *AdminService) UserReport() (*UserReport, error) {
	var report *UserReport
	err := s.store.Read(func() error {
		users, err := s.store.Users.All()
		if err != nil {
			return err
		}
		report = &UserReport{
			TotalUsers:  len(users),
			UsersByRole: map[string][]*models.User{},
		}
		for _, role := range []string{models.RoleAdmin, models.RoleLandlord, models.RoleTenant, models.RoleAgent} {
			report.UsersByRole[role] = []*models.User{}
		}
		for _, u := range users {
			report.UsersByRole[u.Role] = append(report.UsersByRole[u.Role], u)
		}
		report.RecentUsers = recentN(users, 10, func(u *models.User) time.Time { return u.CreatedAt })
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

type PropertyReport struct {
	TotalProperties  int            `json:"totalProperties"`
	ByStatus         map[string]int `json:"byStatus"`
	ByType           map[string]int `json:"byType"`
	ByListingType    map[string]int `json:"byListingType"`
	AveragePrice     float64        `json:"averagePrice"`
	AverageRentPrice float64        `json:"averageRentPrice"`
	AverageSalePrice float64        `json:"averageSalePrice"`
}

func (s *AdminService) PropertyReport() (*PropertyReport, error) {
	var report *PropertyReport
	err := s.store.Read(func() error {
		properties, err := s.store.Properties.All()
		if err != nil {
			return err
		}
		report = &PropertyReport{
			TotalProperties: len(properties),
			ByStatus:        map[string]int{},
			ByType:          map[string]int{},
			ByListingType:   map[string]int{},
		}
		var sum, rentSum, saleSum float64
		var rentCount, saleCount int
		for _, p := range properties {
			report.ByStatus[p.Status]++
			report.ByType[p.PropertyType]++
			report.ByListingType[p.RentOrSale]++
			sum += p.Price
			switch p.RentOrSale {
			case models.ListingRent:
				rentSum += p.Price
				rentCount++
			case models.ListingSale:
				saleSum += p.Price
				saleCount++
			}
		}
		if len(properties) > 0 {
			report.AveragePrice = sum / float64(len(properties))
		}
		if rentCount > 0 {
			report.AverageRentPrice = rentSum / float64(rentCount)
		}
		if saleCount > 0 {
			report.AverageSalePrice = saleSum / float64(saleCount)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

type AgreementFinancials struct {
	TotalMonthlyRevenue   float64 `json:"totalMonthlyRevenue"`
	AverageMonthlyRent    float64 `json:"averageMonthlyRent"`
	TotalSecurityDeposits float64 `json:"totalSecurityDeposits"`
}

type AgreementReport struct {
	TotalAgreements  int                       `json:"totalAgreements"`
	ByStatus         map[string]int            `json:"byStatus"`
	Financials       AgreementFinancials       `json:"financials"`
	RecentAgreements []*models.RentalAgreement `json:"recentAgreements"`
}

func (s *AdminService) AgreementReport() (*AgreementReport, error) {
	var report *AgreementReport
	err := s.store.Read(func() error {
		agreements, err := s.store.Agreements.All()
		if err != nil {
			return err
		}
		report = &AgreementReport{
			TotalAgreements: len(agreements),
			ByStatus:        map[string]int{},
		}
		var active int
		for _, a := range agreements {
			report.ByStatus[a.Status]++
			if a.IsActive() {
				active++
				report.Financials.TotalMonthlyRevenue += a.MonthlyRent
				report.Financials.TotalSecurityDeposits += a.SecurityDeposit
			}
		}
		if active > 0 {
			report.Financials.AverageMonthlyRent = report.Financials.TotalMonthlyRevenue / float64(active)
		}
		report.RecentAgreements = recentN(agreements, 10, func(a *models.RentalAgreement) time.Time { return a.CreatedAt })
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

type TenantReport struct {
	TotalTenants       int            `json:"totalTenants"`
	WithActiveRentals  int            `json:"withActiveRentals"`
	WithoutRentals     int            `json:"withoutRentals"`
	ByEmploymentStatus map[string]int `json:"byEmploymentStatus"`
	AverageIncome      float64        `json:"averageIncome"`
}

func (s *AdminService) TenantReport() (*TenantReport, error) {
	var report *TenantReport
	err := s.store.Read(func() error {
		tenants, err := s.store.Tenants.All()
		if err != nil {
			return err
		}
		report = &TenantReport{
			TotalTenants:       len(tenants),
			ByEmploymentStatus: map[string]int{},
		}
		var incomeSum float64
		var earners int
		for _, t := range tenants {
			if t.HasActiveRental() {
				report.WithActiveRentals++
			} else {
				report.WithoutRentals++
			}
			report.ByEmploymentStatus[t.EmploymentStatus]++
			if t.AnnualIncome > 0 {
				incomeSum += t.AnnualIncome
				earners++
			}
		}
		if earners > 0 {
			report.AverageIncome = incomeSum / float64(earners)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

type ActivitySummary struct {
	LastWeek struct {
		NewUsers      int `json:"newUsers"`
		NewProperties int `json:"newProperties"`
		NewAgreements int `json:"newAgreements"`
	} `json:"lastWeek"`
	Totals struct {
		Users      int `json:"users"`
		Properties int `json:"properties"`
		Agreements int `json:"agreements"`
	} `json:"totals"`
}

func (s *AdminService) ActivitySummary() (*ActivitySummary, error) {
	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	var summary *ActivitySummary
	err := s.store.Read(func() error {
		users, err := s.store.Users.All()
		if err != nil {
			return err
		}
		properties, err := s.store.Properties.All()
		if err != nil {
			return err
		}
		agreements, err := s.store.Agreements.All()
		if err != nil {
			return err
		}
		summary = &ActivitySummary{}
		summary.Totals.Users = len(users)
		summary.Totals.Properties = len(properties)
		summary.Totals.Agreements = len(agreements)
		for _, u := range users {
			if u.CreatedAt.After(weekAgo) {
				summary.LastWeek.NewUsers++
			}
		}
		for _, p := range properties {
			if p.CreatedAt.After(weekAgo) {
				summary.LastWeek.NewProperties++
			}
		}
		for _, a := range agreements {
			if a.CreatedAt.After(weekAgo) {
				summary.LastWeek.NewAgreements++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

type FullReport struct {
	Dashboard   *Dashboard       `json:"dashboard"`
	Users       *UserReport      `json:"users"`
	Properties  *PropertyReport  `json:"properties"`
	Agreements  *AgreementReport `json:"agreements"`
	Tenants     *TenantReport    `json:"tenants"`
	Activity    *ActivitySummary `json:"activity"`
	GeneratedAt time.Time        `json:"generatedAt"`
}

func (s *AdminService) FullReport() (*FullReport, error) {
	dashboard, err := s.Dashboard()
	if err != nil {
		return nil, err
	}
	users, err := s.UserReport()
	if err != nil {
		return nil, err
	}
	properties, err := s.PropertyReport()
	if err != nil {
		return nil, err
	}
	agreements, err := s.AgreementReport()
	if err != nil {
		return nil, err
	}
	tenants, err := s.TenantReport()
	if err != nil {
		return nil, err
	}
	activity, err := s.ActivitySummary()
	if err != nil {
		return nil, err
	}
	return &FullReport{
		Dashboard:   dashboard,
		Users:       users,
		Properties:  properties,
		Agreements:  agreements,
		Tenants:     tenants,
		Activity:    activity,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// recentN returns up to n entities ordered by createdAt descending.
func recentN[T any](items []*T, n int, createdAt func(*T) time.Time) []*T {
	sorted := make([]*T, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		return createdAt(sorted[i]).After(createdAt(sorted[j]))
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

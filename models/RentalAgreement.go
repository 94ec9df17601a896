package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

const (
	AgreementDraft      = "draft"
	AgreementPending    = "pending"
	AgreementActive     = "active"
	AgreementExpired    = "expired"
	AgreementTerminated = "terminated"
)

var agreementStatuses = []string{
	AgreementDraft, AgreementPending, AgreementActive, AgreementExpired, AgreementTerminated,
}

type RentalAgreement struct {
	ID                string     `json:"id" gorm:"primaryKey;size:36"`
	PropertyID        string     `json:"propertyId" gorm:"size:36;index"`
	TenantID          string     `json:"tenantId" gorm:"size:36;index"`
	LandlordID        string     `json:"landlordId" gorm:"size:36;index"`
	StartDate         string     `json:"startDate"`
	EndDate           string     `json:"endDate"`
	MonthlyRent       float64    `json:"monthlyRent"`
	SecurityDeposit   float64    `json:"securityDeposit"`
	Status            string     `json:"status" gorm:"type:varchar(20);default:draft;index"` // draft, pending, active, expired, terminated
	Terms             string     `json:"terms" gorm:"type:text"`
	SignedByTenant    bool       `json:"signedByTenant"`
	SignedByLandlord  bool       `json:"signedByLandlord"`
	SignedAt          *time.Time `json:"signedAt"`
	TerminationReason string     `json:"terminationReason,omitempty"`
	TerminatedAt      *time.Time `json:"terminatedAt"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func NewRentalAgreement(propertyID, tenantID, landlordID string) *RentalAgreement {
	now := time.Now().UTC()
	return &RentalAgreement{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		TenantID:   tenantID,
		LandlordID: landlordID,
		Status:     AgreementDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func ValidAgreementStatus(status string) bool {
	return slices.Contains(agreementStatuses, status)
}

func (a *RentalAgreement) IsActive() bool {
	return a.Status == AgreementActive
}

func (a *RentalAgreement) IsFullySigned() bool {
	return a.SignedByTenant && a.SignedByLandlord
}

// TotalRent is the rent over the whole agreement period, in whole
// months between StartDate and EndDate (RFC 3339 or YYYY-MM-DD).
func (a *RentalAgreement) TotalRent() float64 {
	start, err := parseDate(a.StartDate)
	if err != nil {
		return 0
	}
	end, err := parseDate(a.EndDate)
	if err != nil {
		return 0
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return float64(months) * a.MonthlyRent
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func (a *RentalAgreement) Touch() {
	a.UpdatedAt = time.Now().UTC()
}

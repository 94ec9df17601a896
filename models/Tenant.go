package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/datatypes"
)

const (
	EmploymentEmployed     = "employed"
	EmploymentSelfEmployed = "self-employed"
	EmploymentUnemployed   = "unemployed"
	EmploymentRetired      = "retired"
	EmploymentStudent      = "student"
)

var employmentStatuses = []string{
	EmploymentEmployed, EmploymentSelfEmployed, EmploymentUnemployed, EmploymentRetired, EmploymentStudent,
}

type Reference struct {
	Name         string    `json:"name"`
	Relationship string    `json:"relationship"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	AddedAt      time.Time `json:"addedAt"`
}

// RentalRecord is one completed tenancy. Records are append-only.
type RentalRecord struct {
	PropertyID  string    `json:"propertyId"`
	AgreementID string    `json:"agreementId"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	LandlordID  string    `json:"landlordId"`
	Rating      *int      `json:"rating"`
	AddedAt     time.Time `json:"addedAt"`
}

type Tenant struct {
	ID                 string                            `json:"id" gorm:"primaryKey;size:36"`
	UserID             string                            `json:"userId" gorm:"size:36;uniqueIndex"`
	CurrentPropertyID  *string                           `json:"currentPropertyId" gorm:"size:36"`
	CurrentAgreementID *string                           `json:"currentAgreementId" gorm:"size:36"`
	EmploymentStatus   string                            `json:"employmentStatus" gorm:"type:varchar(20);default:employed"` // employed, self-employed, unemployed, retired, student
	Employer           string                            `json:"employer"`
	AnnualIncome       float64                           `json:"annualIncome"`
	CreditScore        *int                              `json:"creditScore"`
	PreviousAddresses  datatypes.JSONSlice[string]       `json:"previousAddresses"`
	References         datatypes.JSONSlice[Reference]    `json:"references"`
	RentalHistory      datatypes.JSONSlice[RentalRecord] `json:"rentalHistory"`
	CreatedAt          time.Time                         `json:"createdAt"`
	UpdatedAt          time.Time                         `json:"updatedAt"`
}

func NewTenant(userID string) *Tenant {
	now := time.Now().UTC()
	return &Tenant{
		ID:                uuid.NewString(),
		UserID:            userID,
		EmploymentStatus:  EmploymentEmployed,
		PreviousAddresses: datatypes.JSONSlice[string]{},
		References:        datatypes.JSONSlice[Reference]{},
		RentalHistory:     datatypes.JSONSlice[RentalRecord]{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func ValidEmploymentStatus(status string) bool {
	return slices.Contains(employmentStatuses, status)
}

// HasActiveRental holds exactly when the current-rental pointer pair
// is set; both ids are set and cleared together.
func (t *Tenant) HasActiveRental() bool {
	return t.CurrentPropertyID != nil && t.CurrentAgreementID != nil
}

func (t *Tenant) SetCurrentRental(propertyID, agreementID string) {
	t.CurrentPropertyID = &propertyID
	t.CurrentAgreementID = &agreementID
	t.Touch()
}

func (t *Tenant) ClearCurrentRental() {
	t.CurrentPropertyID = nil
	t.CurrentAgreementID = nil
	t.Touch()
}

func (t *Tenant) AppendRentalHistory(rec RentalRecord) {
	rec.AddedAt = time.Now().UTC()
	t.RentalHistory = append(t.RentalHistory, rec)
	t.Touch()
}

func (t *Tenant) AddReference(ref Reference) {
	ref.AddedAt = time.Now().UTC()
	t.References = append(t.References, ref)
	t.Touch()
}

func (t *Tenant) Touch() {
	t.UpdatedAt = time.Now().UTC()
}

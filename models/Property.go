package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/datatypes"
)

const (
	PropertyAvailable   = "available"
	PropertyRented      = "rented"
	PropertySold        = "sold"
	PropertyMaintenance = "maintenance"
)

const (
	ListingRent = "rent"
	ListingSale = "sale"
)

var (
	propertyStatuses = []string{PropertyAvailable, PropertyRented, PropertySold, PropertyMaintenance}
	propertyTypes    = []string{"apartment", "house", "condo", "townhouse", "commercial"}
	listingTypes     = []string{ListingRent, ListingSale}
)

type Property struct {
	ID           string                      `json:"id" gorm:"primaryKey;size:36"`
	Title        string                      `json:"title"`
	Description  string                      `json:"description" gorm:"type:text"`
	Address      string                      `json:"address"`
	City         string                      `json:"city" gorm:"index"`
	State        string                      `json:"state" gorm:"index"`
	ZipCode      string                      `json:"zipCode"`
	PropertyType string                      `json:"propertyType" gorm:"type:varchar(20)"` // apartment, house, condo, townhouse, commercial
	Bedrooms     int                         `json:"bedrooms"`
	Bathrooms    float64                     `json:"bathrooms"`
	SquareFeet   int                         `json:"squareFeet"`
	Price        float64                     `json:"price"`
	RentOrSale   string                      `json:"rentOrSale" gorm:"type:varchar(10);default:rent"` // rent, sale
	Status       string                      `json:"status" gorm:"type:varchar(20);default:available;index"`
	OwnerID      string                      `json:"ownerId" gorm:"size:36;index"`
	Amenities    datatypes.JSONSlice[string] `json:"amenities"`
	Images       datatypes.JSONSlice[string] `json:"images"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

func NewProperty(ownerID string) *Property {
	now := time.Now().UTC()
	return &Property{
		ID:           uuid.NewString(),
		PropertyType: "apartment",
		RentOrSale:   ListingRent,
		Status:       PropertyAvailable,
		OwnerID:      ownerID,
		Amenities:    datatypes.JSONSlice[string]{},
		Images:       datatypes.JSONSlice[string]{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func ValidPropertyStatus(status string) bool {
	return slices.Contains(propertyStatuses, status)
}

func ValidPropertyType(propertyType string) bool {
	return slices.Contains(propertyTypes, propertyType)
}

func ValidListingType(rentOrSale string) bool {
	return slices.Contains(listingTypes, rentOrSale)
}

func (p *Property) IsAvailable() bool {
	return p.Status == PropertyAvailable
}

// HasAmenity reports whether the amenity is already present, so that
// AddAmenity can stay an "add only if absent" no-op on duplicates.
func (p *Property) HasAmenity(amenity string) bool {
	return slices.Contains([]string(p.Amenities), amenity)
}

func (p *Property) Touch() {
	p.UpdatedAt = time.Now().UTC()
}

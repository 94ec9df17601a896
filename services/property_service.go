package services

import (
	"strings"

	"real-estate-management-server/models"
	"real-estate-management-server/storage"
)

type PropertyService struct {
	store *storage.Store
}

func NewPropertyService(store *storage.Store) *PropertyService {
	return &PropertyService{store: store}
}

type CreatePropertyInput struct {
	Title        string
	Description  string
	Address      string
	City         string
	State        string
	ZipCode      string
	PropertyType string
	Bedrooms     int
	Bathrooms    float64
	SquareFeet   int
	Price        float64
	RentOrSale   string
	OwnerID      string
	Amenities    []string
	Images       []string
}

// PropertyUpdate is the allow-listed field set for updates. Status and
// OwnerID are deliberately absent: status only moves through
// UpdateStatus or as an agreement side effect, and ownership never
// changes through an update.
type PropertyUpdate struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Address      *string  `json:"address"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	ZipCode      *string  `json:"zipCode"`
	PropertyType *string  `json:"propertyType"`
	Bedrooms     *int     `json:"bedrooms"`
	Bathrooms    *float64 `json:"bathrooms"`
	SquareFeet   *int     `json:"squareFeet"`
	Price        *float64 `json:"price"`
	RentOrSale   *string  `json:"rentOrSale"`
}

type PropertyFilters struct {
	City         string
	State        string
	PropertyType string
	MinPrice     float64
	MaxPrice     float64
	Bedrooms     int
	RentOrSale   string
	Status       string
}

func (s *PropertyService) Create(input CreatePropertyInput) (*models.Property, error) {
	if input.Price <= 0 {
		return nil, invalidInput("price must be positive")
	}
	if input.Bedrooms < 0 || input.Bathrooms < 0 || input.SquareFeet < 0 {
		return nil, invalidInput("bedrooms, bathrooms and squareFeet cannot be negative")
	}
	if input.PropertyType != "" && !models.ValidPropertyType(input.PropertyType) {
		return nil, invalidInput("invalid property type: " + input.PropertyType)
	}
	if input.RentOrSale != "" && !models.ValidListingType(input.RentOrSale) {
		return nil, invalidInput("invalid listing type: " + input.RentOrSale)
	}

	var property *models.Property
	err := s.store.Write(func() error {
		property = models.NewProperty(input.OwnerID)
		property.Title = input.Title
		property.Description = input.Description
		property.Address = input.Address
		property.City = input.City
		property.State = input.State
		property.ZipCode = input.ZipCode
		if input.PropertyType != "" {
			property.PropertyType = input.PropertyType
		}
		property.Bedrooms = input.Bedrooms
		property.Bathrooms = input.Bathrooms
		property.SquareFeet = input.SquareFeet
		property.Price = input.Price
		if input.RentOrSale != "" {
			property.RentOrSale = input.RentOrSale
		}
		for _, amenity := range input.Amenities {
			if !property.HasAmenity(amenity) {
				property.Amenities = append(property.Amenities, amenity)
			}
		}
		property.Images = append(property.Images, input.Images...)
		return s.store.Properties.Create(property)
	})
	if err != nil {
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) Get(id string) (*models.Property, error) {
	var property *models.Property
	err := s.store.Read(func() error {
		var err error
		property, err = s.store.Properties.Get(id)
		if err != nil {
			return notFound("property not found")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) List() ([]*models.Property, error) {
	return s.find(func(*models.Property) bool { return true })
}

func (s *PropertyService) ByOwner(ownerID string) ([]*models.Property, error) {
	return s.find(func(p *models.Property) bool { return p.OwnerID == ownerID })
}

func (s *PropertyService) Available() ([]*models.Property, error) {
	return s.find(func(p *models.Property) bool { return p.IsAvailable() })
}

func (s *PropertyService) Search(filters PropertyFilters) ([]*models.Property, error) {
	return s.find(func(p *models.Property) bool {
		if filters.City != "" && !strings.Contains(strings.ToLower(p.City), strings.ToLower(filters.City)) {
			return false
		}
		if filters.State != "" && !strings.Contains(strings.ToLower(p.State), strings.ToLower(filters.State)) {
			return false
		}
		if filters.PropertyType != "" && p.PropertyType != filters.PropertyType {
			return false
		}
		if filters.MinPrice > 0 && p.Price < filters.MinPrice {
			return false
		}
		if filters.MaxPrice > 0 && p.Price > filters.MaxPrice {
			return false
		}
		if filters.Bedrooms > 0 && p.Bedrooms < filters.Bedrooms {
			return false
		}
		if filters.RentOrSale != "" && p.RentOrSale != filters.RentOrSale {
			return false
		}
		if filters.Status != "" && p.Status != filters.Status {
			return false
		}
		return true
	})
}

func (s *PropertyService) find(pred func(*models.Property) bool) ([]*models.Property, error) {
	var properties []*models.Property
	err := s.store.Read(func() error {
		var err error
		properties, err = s.store.Properties.Find(pred)
		return err
	})
	if err != nil {
		return nil, err
	}
	return properties, nil
}

// Update merges the allow-listed fields. Owner or admin only.
func (s *PropertyService) Update(id string, upd PropertyUpdate, callerID, callerRole string) (*models.Property, error) {
	if upd.PropertyType != nil && !models.ValidPropertyType(*upd.PropertyType) {
		return nil, invalidInput("invalid property type: " + *upd.PropertyType)
	}
	if upd.RentOrSale != nil && !models.ValidListingType(*upd.RentOrSale) {
		return nil, invalidInput("invalid listing type: " + *upd.RentOrSale)
	}
	if upd.Price != nil && *upd.Price <= 0 {
		return nil, invalidInput("price must be positive")
	}

	var property *models.Property
	err := s.store.Write(func() error {
		var err error
		property, err = s.authorizedProperty(id, callerID, callerRole)
		if err != nil {
			return err
		}
		if upd.Title != nil {
			property.Title = *upd.Title
		}
		if upd.Description != nil {
			property.Description = *upd.Description
		}
		if upd.Address != nil {
			property.Address = *upd.Address
		}
		if upd.City != nil {
			property.City = *upd.City
		}
		if upd.State != nil {
			property.State = *upd.State
		}
		if upd.ZipCode != nil {
			property.ZipCode = *upd.ZipCode
		}
		if upd.PropertyType != nil {
			property.PropertyType = *upd.PropertyType
		}
		if upd.Bedrooms != nil {
			property.Bedrooms = *upd.Bedrooms
		}
		if upd.Bathrooms != nil {
			property.Bathrooms = *upd.Bathrooms
		}
		if upd.SquareFeet != nil {
			property.SquareFeet = *upd.SquareFeet
		}
		if upd.Price != nil {
			property.Price = *upd.Price
		}
		if upd.RentOrSale != nil {
			property.RentOrSale = *upd.RentOrSale
		}
		property.Touch()
		return s.store.Properties.Save(property)
	})
	if err != nil {
		return nil, err
	}
	return property, nil
}

// UpdateStatus sets the status, rejecting anything outside the
// four-value enum and leaving the property untouched on rejection.
func (s *PropertyService) UpdateStatus(id, status, callerID, callerRole string) (*models.Property, error) {
	if !models.ValidPropertyStatus(status) {
		return nil, invalidInput("invalid status: " + status)
	}
	var property *models.Property
	err := s.store.Write(func() error {
		var err error
		property, err = s.authorizedProperty(id, callerID, callerRole)
		if err != nil {
			return err
		}
		property.Status = status
		property.Touch()
		return s.store.Properties.Save(property)
	})
	if err != nil {
		return nil, err
	}
	return property, nil
}

// AddAmenity appends an amenity. Adding one that is already present is
// a silent no-op and does not bump UpdatedAt; the policy is "add only
// if absent", not an error.
func (s *PropertyService) AddAmenity(id, amenity, callerID, callerRole string) (*models.Property, error) {
	if amenity == "" {
		return nil, invalidInput("amenity is required")
	}
	var property *models.Property
	err := s.store.Write(func() error {
		var err error
		property, err = s.authorizedProperty(id, callerID, callerRole)
		if err != nil {
			return err
		}
		if property.HasAmenity(amenity) {
			return nil
		}
		property.Amenities = append(property.Amenities, amenity)
		property.Touch()
		return s.store.Properties.Save(property)
	})
	if err != nil {
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) AddImage(id, imageURL, callerID, callerRole string) (*models.Property, error) {
	if imageURL == "" {
		return nil, invalidInput("imageUrl is required")
	}
	var property *models.Property
	err := s.store.Write(func() error {
		var err error
		property, err = s.authorizedProperty(id, callerID, callerRole)
		if err != nil {
			return err
		}
		property.Images = append(property.Images, imageURL)
		property.Touch()
		return s.store.Properties.Save(property)
	})
	if err != nil {
		return nil, err
	}
	return property, nil
}

// Delete removes a property. Owner or admin only; refused while any
// agreement on it is active.
func (s *PropertyService) Delete(id, callerID, callerRole string) error {
	return s.store.Write(func() error {
		if _, err := s.authorizedProperty(id, callerID, callerRole); err != nil {
			return err
		}
		active, err := s.store.Agreements.Find(func(a *models.RentalAgreement) bool {
			return a.PropertyID == id && a.IsActive()
		})
		if err != nil {
			return err
		}
		if len(active) > 0 {
			return conflict("cannot delete property with active rental agreements")
		}
		return s.store.Properties.Delete(id)
	})
}

func (s *PropertyService) authorizedProperty(id, callerID, callerRole string) (*models.Property, error) {
	property, err := s.store.Properties.Get(id)
	if err != nil {
		return nil, notFound("property not found")
	}
	if property.OwnerID != callerID && callerRole != models.RoleAdmin {
		return nil, notAuthorized("not authorized to modify this property")
	}
	return property, nil
}

type PropertyStatistics struct {
	Total        int     `json:"total"`
	Available    int     `json:"available"`
	Rented       int     `json:"rented"`
	Sold         int     `json:"sold"`
	Maintenance  int     `json:"maintenance"`
	ForRent      int     `json:"forRent"`
	ForSale      int     `json:"forSale"`
	AveragePrice float64 `json:"averagePrice"`
}

// Statistics aggregates over all properties, or over one owner's when
// ownerID is non-empty.
func (s *PropertyService) Statistics(ownerID string) (*PropertyStatistics, error) {
	properties, err := s.find(func(p *models.Property) bool {
		return ownerID == "" || p.OwnerID == ownerID
	})
	if err != nil {
		return nil, err
	}
	stats := &PropertyStatistics{Total: len(properties)}
	var priceSum float64
	for _, p := range properties {
		switch p.Status {
		case models.PropertyAvailable:
			stats.Available++
		case models.PropertyRented:
			stats.Rented++
		case models.PropertySold:
			stats.Sold++
		case models.PropertyMaintenance:
			stats.Maintenance++
		}
		if p.RentOrSale == models.ListingRent {
			stats.ForRent++
		} else if p.RentOrSale == models.ListingSale {
			stats.ForSale++
		}
		priceSum += p.Price
	}
	if stats.Total > 0 {
		stats.AveragePrice = priceSum / float64(stats.Total)
	}
	return stats, nil
}

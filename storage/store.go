package storage

import (
	"errors"
	"strings"
	"sync"

	"real-estate-management-server/models"
)

// ErrNotFound is returned by collections when no record has the
// requested id.
var ErrNotFound = errors.New("record not found")

// Collection is one keyed entity collection. Implementations exist
// in-memory and on top of gorm; the contract is a keyed collection
// with predicate scans, not a query engine.
type Collection[T any] interface {
	Create(entity *T) error
	Get(id string) (*T, error)
	All() ([]*T, error)
	Find(pred func(*T) bool) ([]*T, error)
	// Save commits the current state of an entity previously obtained
	// from Get/All/Find. Every mutating operation ends with a Save so
	// both backends observe the write.
	Save(entity *T) error
	Delete(id string) error
}

// Store holds the canonical copy of every entity. It is constructed
// explicitly and passed to the services; there is no package-level
// instance. All mutating service operations run under the store-wide
// write lock so cross-entity transitions serialize.
type Store struct {
	mu sync.RWMutex

	Users      Collection[models.User]
	Properties Collection[models.Property]
	Agreements Collection[models.RentalAgreement]
	Tenants    Collection[models.Tenant]
}

// Write runs fn under the store-wide write lock.
func (s *Store) Write(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// Read runs fn under the store-wide read lock.
func (s *Store) Read(fn func() error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn()
}

// UserByEmail is the uniqueness scan backing email checks. Emails are
// compared case-insensitively.
func (s *Store) UserByEmail(email string) (*models.User, error) {
	email = strings.ToLower(email)
	matches, err := s.Users.Find(func(u *models.User) bool {
		return strings.ToLower(u.Email) == email
	})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	return matches[0], nil
}

// TenantByUserID is the uniqueness scan backing the one-profile-per-user
// rule.
func (s *Store) TenantByUserID(userID string) (*models.Tenant, error) {
	matches, err := s.Tenants.Find(func(t *models.Tenant) bool {
		return t.UserID == userID
	})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	return matches[0], nil
}

package storage

import (
	"real-estate-management-server/models"
)

// memoryCollection keeps entities in a map keyed by id. Callers get
// the canonical pointer back and mutate it in place; Save is the
// commit point and only has to verify the record is still present.
type memoryCollection[T any] struct {
	items map[string]*T
	id    func(*T) string
}

func newMemoryCollection[T any](id func(*T) string) *memoryCollection[T] {
	return &memoryCollection[T]{items: map[string]*T{}, id: id}
}

func (c *memoryCollection[T]) Create(entity *T) error {
	c.items[c.id(entity)] = entity
	return nil
}

func (c *memoryCollection[T]) Get(id string) (*T, error) {
	entity, ok := c.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return entity, nil
}

func (c *memoryCollection[T]) All() ([]*T, error) {
	out := make([]*T, 0, len(c.items))
	for _, entity := range c.items {
		out = append(out, entity)
	}
	return out, nil
}

func (c *memoryCollection[T]) Find(pred func(*T) bool) ([]*T, error) {
	out := []*T{}
	for _, entity := range c.items {
		if pred(entity) {
			out = append(out, entity)
		}
	}
	return out, nil
}

func (c *memoryCollection[T]) Save(entity *T) error {
	id := c.id(entity)
	if _, ok := c.items[id]; !ok {
		return ErrNotFound
	}
	c.items[id] = entity
	return nil
}

func (c *memoryCollection[T]) Delete(id string) error {
	if _, ok := c.items[id]; !ok {
		return ErrNotFound
	}
	delete(c.items, id)
	return nil
}

// NewMemoryStore builds a store with in-memory collections. This is
// the default backend and the one the tests run against.
func NewMemoryStore() *Store {
	return &Store{
		Users:      newMemoryCollection(func(u *models.User) string { return u.ID }),
		Properties: newMemoryCollection(func(p *models.Property) string { return p.ID }),
		Agreements: newMemoryCollection(func(a *models.RentalAgreement) string { return a.ID }),
		Tenants:    newMemoryCollection(func(t *models.Tenant) string { return t.ID }),
	}
}

package storage

import (
	"errors"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"real-estate-management-server/models"
)

// gormCollection adapts one table to the Collection contract.
// Predicate scans load the table and filter in Go; the store is a
// keyed collection, not a query engine.
type gormCollection[T any] struct {
	db *gorm.DB
}

func (c gormCollection[T]) Create(entity *T) error {
	return c.db.Create(entity).Error
}

func (c gormCollection[T]) Get(id string) (*T, error) {
	entity := new(T)
	err := c.db.First(entity, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (c gormCollection[T]) All() ([]*T, error) {
	var rows []T
	if err := c.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*T, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (c gormCollection[T]) Find(pred func(*T) bool) ([]*T, error) {
	all, err := c.All()
	if err != nil {
		return nil, err
	}
	out := []*T{}
	for _, entity := range all {
		if pred(entity) {
			out = append(out, entity)
		}
	}
	return out, nil
}

func (c gormCollection[T]) Save(entity *T) error {
	return c.db.Save(entity).Error
}

func (c gormCollection[T]) Delete(id string) error {
	res := c.db.Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func connectToDB() *gorm.DB {
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Panic("DB_CONNECTION_STRING environment variable is required")
	}

	db, dbError := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if dbError != nil {
		log.Panic("error connecting to db: " + dbError.Error())
	}

	return db
}

func performMigrations(db *gorm.DB) {
	db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.RentalAgreement{},
		&models.Tenant{},
	)
}

// NewDatabaseStore connects to postgres, runs migrations and returns a
// store backed by it. Used when DB_CONNECTION_STRING is set; tests and
// local development use NewMemoryStore instead.
func NewDatabaseStore() *Store {
	db := connectToDB()
	performMigrations(db)
	return &Store{
		Users:      gormCollection[models.User]{db: db},
		Properties: gormCollection[models.Property]{db: db},
		Agreements: gormCollection[models.RentalAgreement]{db: db},
		Tenants:    gormCollection[models.Tenant]{db: db},
	}
}

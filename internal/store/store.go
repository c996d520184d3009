package store

import (
	"context"

	"gorm.io/gorm"

	"fleet_logistics/internal/models"
)

// Repositories is one repository per table.
type Repositories struct {
	Brands         Repository[models.Brand]
	Customers      Repository[models.Customer]
	Employees      Repository[models.Employee]
	MechanicBrands Repository[models.MechanicBrand]
	Repairs        Repository[models.Repair]
	Routes         Repository[models.Route]
	Shipments      Repository[models.Shipment]
	Trips          Repository[models.Trip]
	Trucks         Repository[models.Truck]
}

// Store is the gorm-backed Repositories sharing one connection pool.
type Store struct {
	Repositories
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{
		db: db,
		Repositories: Repositories{
			Brands:         NewGormRepository[models.Brand](db),
			Customers:      NewGormRepository[models.Customer](db),
			Employees:      NewGormRepository[models.Employee](db),
			MechanicBrands: NewGormRepository[models.MechanicBrand](db),
			Repairs:        NewGormRepository[models.Repair](db),
			Routes:         NewGormRepository[models.Route](db),
			Shipments:      NewGormRepository[models.Shipment](db),
			Trips:          NewGormRepository[models.Trip](db),
			Trucks:         NewGormRepository[models.Truck](db),
		},
	}
}

// Ping checks the underlying connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

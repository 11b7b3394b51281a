package drivers

import (
	"context"

	"github.com/openride/marketplace/internal/pkg/models"
)

// DriverRepo defines the interface for driver data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/openride/marketplace/services/drivers DriverRepo,AvailabilityRepo
type DriverRepo interface {
	CreateDriver(ctx context.Context, driver *models.Driver) error
	GetDriver(ctx context.Context, driverID string) (*models.Driver, error)
	GetDriverByPhone(ctx context.Context, phone string) (*models.Driver, error)
	GetDriverByEmail(ctx context.Context, email string) (*models.Driver, error)
	UpdateActive(ctx context.Context, driverID string, isActive bool) error
	UpdateAvailability(ctx context.Context, driverID string, available bool) error
	UpdateAdmin(ctx context.Context, driverID string, isAdmin bool) error
	ListAvailable(ctx context.Context, locationID string) ([]*models.Driver, error)
}

// AvailabilityRepo mirrors the availability flag into Redis so other
// components can do cheap membership checks without hitting Postgres.
type AvailabilityRepo interface {
	MarkAvailable(ctx context.Context, locationID, driverID string) error
	MarkUnavailable(ctx context.Context, locationID, driverID string) error
	IsAvailable(ctx context.Context, locationID, driverID string) (bool, error)
	RecordPosition(ctx context.Context, position models.DriverPosition) error
	NearbyDrivers(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.DriverPosition, error)
}

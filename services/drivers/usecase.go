package drivers

import (
	"context"

	"github.com/openride/marketplace/internal/pkg/models"
)

// DriverUC defines the interface for driver directory business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/openride/marketplace/services/drivers DriverUC
type DriverUC interface {
	RegisterDriver(ctx context.Context, req models.DriverRegistrationRequest) (*models.Driver, error)
	GetDriver(ctx context.Context, driverID string) (*models.Driver, error)
	ApproveDriver(ctx context.Context, driverID string) error
	SetAvailability(ctx context.Context, driverID string, available bool) error
	UpdatePosition(ctx context.Context, position models.DriverPosition) error
	ListAvailableDrivers(ctx context.Context, locationID string) ([]*models.Driver, error)
	NearbyDrivers(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.DriverPosition, error)
}

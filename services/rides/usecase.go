package rides

import (
	"context"

	"github.com/openride/marketplace/internal/pkg/models"
)

// RideUC defines the interface for ride lifecycle business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/openride/marketplace/services/rides RideUC
type RideUC interface {
	CreateRide(ctx context.Context, req models.CreateRideRequest) (*models.Ride, error)
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
	ListDriverRides(ctx context.Context, driverID string) ([]*models.Ride, error)
	AssignDriver(ctx context.Context, rideID, driverID string) (*models.Ride, error)
	UpdateRideStatus(ctx context.Context, rideID string, status models.RideStatus, actorID string) (*models.Ride, error)
	TransferRide(ctx context.Context, rideID, fromDriverID, toDriverID string) (*models.Ride, error)
	CompleteRide(ctx context.Context, rideID, driverID string) (*models.Ride, error)

	CreateTransferRequest(ctx context.Context, fromDriverID string, req models.CreateTransferRequest) (*models.RideTransfer, error)
	AcceptTransferRequest(ctx context.Context, transferID, actingDriverID string) (*models.Ride, error)
	RejectTransferRequest(ctx context.Context, transferID, actingDriverID string) error

	CreateScheduledRide(ctx context.Context, ride *models.ScheduledRide) (*models.ScheduledRide, error)
	ListScheduledRides(ctx context.Context, driverID string) ([]*models.ScheduledRide, error)
	CancelScheduledRide(ctx context.Context, scheduledRideID, actorID string) error
}

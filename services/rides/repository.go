package rides

import (
	"context"

	"github.com/openride/marketplace/internal/pkg/models"
)

// RideRepo defines the interface for ride data access operations. Mutating
// methods take the version read by the caller; the update is applied only if
// the row still carries that version, otherwise ErrRideConflict is returned
// (first-writer-wins on concurrent mutation).
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/openride/marketplace/services/rides RideRepo
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
	ListByDriver(ctx context.Context, driverID string) ([]*models.Ride, error)
	AssignDriver(ctx context.Context, rideID, driverID string, version int) error
	UpdateStatus(ctx context.Context, rideID string, status models.RideStatus, version int) error
	TransferRide(ctx context.Context, rideID, fromDriverID, toDriverID string, version int) error

	// CompleteRide atomically marks the ride completed and increments the
	// owning driver's total/completed ride counters in one transaction.
	CompleteRide(ctx context.Context, rideID, driverID string, version int) error

	CreateTransfer(ctx context.Context, transfer *models.RideTransfer) error
	GetTransfer(ctx context.Context, transferID string) (*models.RideTransfer, error)
	UpdateTransferStatus(ctx context.Context, transferID string, status models.TransferStatus) error

	// AcceptTransfer performs the ride ownership move and marks the transfer
	// accepted in one transaction.
	AcceptTransfer(ctx context.Context, transfer *models.RideTransfer, rideVersion int) error

	CreateScheduled(ctx context.Context, ride *models.ScheduledRide) error
	GetScheduled(ctx context.Context, scheduledRideID string) (*models.ScheduledRide, error)
	ListScheduledByDriver(ctx context.Context, driverID string) ([]*models.ScheduledRide, error)
	DeleteScheduled(ctx context.Context, scheduledRideID string) error
}

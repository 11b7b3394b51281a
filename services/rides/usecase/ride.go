package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/openride/marketplace/internal/pkg/logger"
	"github.com/openride/marketplace/internal/pkg/metrics"
	"github.com/openride/marketplace/internal/pkg/models"
	"github.com/openride/marketplace/services/drivers"
	"github.com/openride/marketplace/services/rides"
)

type rideUC struct {
	cfg        *models.Config
	rideRepo   rides.RideRepo
	driverRepo drivers.DriverRepo
	rideGW     rides.RideGW
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	driverRepo drivers.DriverRepo,
	rideGW rides.RideGW,
) rides.RideUC {
	return &rideUC{
		cfg:        cfg,
		rideRepo:   rideRepo,
		driverRepo: driverRepo,
		rideGW:     rideGW,
	}
}

func (uc *rideUC) publishLifecycleEvent(ctx context.Context, ride *models.Ride, publish func(context.Context, *models.Ride) error) {
	if err := publish(ctx, ride); err != nil {
		logger.Warn("Failed to publish ride event",
			logger.String("ride_id", ride.ID),
			logger.String("status", string(ride.Status)),
			logger.Err(err))
	}
}

// CreateRide books a ride. The eligible drivers for the ride's location are
// captured into the ride as a point-in-time snapshot. When the rider
// pre-selected a driver the ride is created already assigned; otherwise it
// starts pending. Repeated submissions of the same payload create separate
// rides; the caller is expected to debounce.
func (uc *rideUC) CreateRide(ctx context.Context, req models.CreateRideRequest) (*models.Ride, error) {
	if req.Name == "" || req.Phone == "" {
		return nil, fmt.Errorf("name and phone are required")
	}
	if req.Pickup == "" || req.Dropoff == "" {
		return nil, fmt.Errorf("pickup and dropoff are required")
	}

	ride := &models.Ride{
		ID:         uuid.New().String(),
		RiderID:    req.RiderID,
		RiderName:  req.Name,
		RiderPhone: req.Phone,
		Pickup:     req.Pickup,
		Dropoff:    req.Dropoff,
		LocationID: req.LocationID,
		Status:     models.RideStatusPending,
	}

	available, err := uc.driverRepo.ListAvailable(ctx, req.LocationID)
	if err != nil {
		return nil, err
	}
	for _, driver := range available {
		ride.AvailableDrivers = append(ride.AvailableDrivers, models.DriverSnapshot{
			ID:     driver.ID,
			Name:   driver.Name,
			Photo:  driver.PhotoURL,
			Rating: driver.DisplayRating(),
		})
	}

	if req.SelectedDriverID != "" {
		driver, err := uc.driverRepo.GetDriver(ctx, req.SelectedDriverID)
		if err != nil {
			return nil, err
		}
		if !driver.Eligible() {
			return nil, rides.ErrDriverUnavailable
		}
		ride.DriverID = driver.ID
		ride.Status = models.RideStatusAssigned
	}

	if err := uc.rideRepo.CreateRide(ctx, ride); err != nil {
		return nil, err
	}

	metrics.RidesCreatedTotal.Inc()
	if ride.Status == models.RideStatusAssigned {
		metrics.RidesAssignedTotal.Inc()
		uc.publishLifecycleEvent(ctx, ride, uc.rideGW.PublishRideAssigned)
	} else {
		uc.publishLifecycleEvent(ctx, ride, uc.rideGW.PublishRideCreated)
	}

	if err := uc.rideGW.EnqueueRideRequestWebhook(ride); err != nil {
		logger.Warn("Failed to enqueue ride request webhook",
			logger.String("ride_id", ride.ID),
			logger.Err(err))
	}

	logger.Info("Ride created",
		logger.String("ride_id", ride.ID),
		logger.String("status", string(ride.Status)),
		logger.String("location_id", ride.LocationID))

	return ride, nil
}

// GetRide retrieves a ride by id
func (uc *rideUC) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	return uc.rideRepo.GetRide(ctx, rideID)
}

// ListDriverRides returns rides a driver currently or previously owned
func (uc *rideUC) ListDriverRides(ctx context.Context, driverID string) ([]*models.Ride, error) {
	return uc.rideRepo.ListByDriver(ctx, driverID)
}

// AssignDriver assigns an eligible driver to a pending ride
func (uc *rideUC) AssignDriver(ctx context.Context, rideID, driverID string) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if !models.CanTransition(ride.Status, models.RideStatusAssigned) {
		return nil, rides.ErrInvalidTransition
	}

	driver, err := uc.driverRepo.GetDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if !driver.Eligible() {
		return nil, rides.ErrDriverUnavailable
	}

	if err := uc.rideRepo.AssignDriver(ctx, rideID, driverID, ride.Version); err != nil {
		return nil, err
	}

	updated, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	metrics.RidesAssignedTotal.Inc()
	uc.publishLifecycleEvent(ctx, updated, uc.rideGW.PublishRideAssigned)

	logger.Info("Ride assigned",
		logger.String("ride_id", rideID),
		logger.String("driver_id", driverID))

	return updated, nil
}

// UpdateRideStatus moves a ride along the lifecycle. The transition must be
// legal and the actor must be a party to the ride when one is assigned.
// Completion delegates to CompleteRide so the driver counters always move in
// the same transaction as the ride.
func (uc *rideUC) UpdateRideStatus(ctx context.Context, rideID string, status models.RideStatus, actorID string) (*models.Ride, error) {
	if status == models.RideStatusCompleted {
		return uc.CompleteRide(ctx, rideID, actorID)
	}

	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if !models.CanTransition(ride.Status, status) {
		return nil, rides.ErrInvalidTransition
	}

	if ride.DriverID != "" && actorID != ride.DriverID && actorID != ride.RiderID {
		return nil, rides.ErrNotRideOwner
	}

	if err := uc.rideRepo.UpdateStatus(ctx, rideID, status, ride.Version); err != nil {
		return nil, err
	}

	updated, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if status == models.RideStatusCancelled {
		metrics.RidesCancelledTotal.Inc()
		uc.publishLifecycleEvent(ctx, updated, uc.rideGW.PublishRideCancelled)
	}

	logger.Info("Ride status updated",
		logger.String("ride_id", rideID),
		logger.String("status", string(status)))

	return updated, nil
}

// TransferRide moves a ride from its current driver directly to another
// driver without a handshake. The caller must be the assigned driver and the
// target must be eligible.
func (uc *rideUC) TransferRide(ctx context.Context, rideID, fromDriverID, toDriverID string) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if ride.DriverID != fromDriverID {
		return nil, rides.ErrNotRideOwner
	}
	if !models.CanTransition(ride.Status, models.RideStatusTransferred) {
		return nil, rides.ErrInvalidTransition
	}

	target, err := uc.driverRepo.GetDriver(ctx, toDriverID)
	if err != nil {
		return nil, err
	}
	if !target.Eligible() {
		return nil, rides.ErrDriverUnavailable
	}

	if err := uc.rideRepo.TransferRide(ctx, rideID, fromDriverID, toDriverID, ride.Version); err != nil {
		if errors.Is(err, rides.ErrRideConflict) {
			metrics.TransferConflictsTotal.Inc()
		}
		return nil, err
	}

	updated, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	metrics.RidesTransferredTotal.Inc()
	uc.publishLifecycleEvent(ctx, updated, uc.rideGW.PublishRideTransferred)

	logger.Info("Ride transferred",
		logger.String("ride_id", rideID),
		logger.String("from_driver_id", fromDriverID),
		logger.String("to_driver_id", toDriverID))

	return updated, nil
}

// CompleteRide marks a ride completed on behalf of its assigned driver. The
// ride update and the driver counter increments land in one transaction.
func (uc *rideUC) CompleteRide(ctx context.Context, rideID, driverID string) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if ride.DriverID != driverID {
		return nil, rides.ErrNotRideOwner
	}
	if !models.CanTransition(ride.Status, models.RideStatusCompleted) {
		return nil, rides.ErrInvalidTransition
	}

	if err := uc.rideRepo.CompleteRide(ctx, rideID, driverID, ride.Version); err != nil {
		return nil, err
	}

	updated, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	metrics.RidesCompletedTotal.Inc()
	uc.publishLifecycleEvent(ctx, updated, uc.rideGW.PublishRideCompleted)

	logger.Info("Ride completed",
		logger.String("ride_id", rideID),
		logger.String("driver_id", driverID))

	return updated, nil
}

// CreateTransferRequest opens a transfer handshake. The caller must own the
// ride and the target driver must be eligible at request time; eligibility is
// checked again on acceptance.
func (uc *rideUC) CreateTransferRequest(ctx context.Context, fromDriverID string, req models.CreateTransferRequest) (*models.RideTransfer, error) {
	ride, err := uc.rideRepo.GetRide(ctx, req.RideID)
	if err != nil {
		return nil, err
	}

	if ride.DriverID != fromDriverID {
		return nil, rides.ErrNotRideOwner
	}
	if !models.CanTransition(ride.Status, models.RideStatusTransferred) {
		return nil, rides.ErrInvalidTransition
	}

	target, err := uc.driverRepo.GetDriver(ctx, req.NewDriverID)
	if err != nil {
		return nil, err
	}
	if !target.Eligible() {
		return nil, rides.ErrDriverUnavailable
	}

	transfer := &models.RideTransfer{
		ID:                uuid.New().String(),
		RideID:            req.RideID,
		OriginalDriverID:  fromDriverID,
		NewDriverID:       req.NewDriverID,
		TransferFeeAmount: req.TransferFeeAmount,
		Status:            models.TransferStatusPending,
	}

	if err := uc.rideRepo.CreateTransfer(ctx, transfer); err != nil {
		return nil, err
	}

	logger.Info("Transfer request created",
		logger.String("transfer_id", transfer.ID),
		logger.String("ride_id", transfer.RideID),
		logger.String("to_driver_id", transfer.NewDriverID))

	return transfer, nil
}

// AcceptTransferRequest completes the handshake: the target driver takes over
// the ride and the transfer is marked accepted, atomically. Two drivers
// racing over the same ride resolve by version; the loser gets a conflict.
func (uc *rideUC) AcceptTransferRequest(ctx context.Context, transferID, actingDriverID string) (*models.Ride, error) {
	transfer, err := uc.rideRepo.GetTransfer(ctx, transferID)
	if err != nil {
		return nil, err
	}

	if transfer.NewDriverID != actingDriverID {
		return nil, rides.ErrNotTransferTarget
	}
	if transfer.Status != models.TransferStatusPending {
		return nil, rides.ErrTransferClosed
	}

	ride, err := uc.rideRepo.GetRide(ctx, transfer.RideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != transfer.OriginalDriverID {
		return nil, rides.ErrRideConflict
	}
	if !models.CanTransition(ride.Status, models.RideStatusTransferred) {
		return nil, rides.ErrInvalidTransition
	}

	if err := uc.rideRepo.AcceptTransfer(ctx, transfer, ride.Version); err != nil {
		if errors.Is(err, rides.ErrRideConflict) {
			metrics.TransferConflictsTotal.Inc()
		}
		return nil, err
	}

	updated, err := uc.rideRepo.GetRide(ctx, transfer.RideID)
	if err != nil {
		return nil, err
	}

	metrics.RidesTransferredTotal.Inc()
	uc.publishLifecycleEvent(ctx, updated, uc.rideGW.PublishRideTransferred)

	logger.Info("Transfer request accepted",
		logger.String("transfer_id", transferID),
		logger.String("ride_id", transfer.RideID),
		logger.String("driver_id", actingDriverID))

	return updated, nil
}

// RejectTransferRequest declines a pending transfer. Only the target driver
// may reject; the ride stays with its current driver.
func (uc *rideUC) RejectTransferRequest(ctx context.Context, transferID, actingDriverID string) error {
	transfer, err := uc.rideRepo.GetTransfer(ctx, transferID)
	if err != nil {
		return err
	}

	if transfer.NewDriverID != actingDriverID {
		return rides.ErrNotTransferTarget
	}
	if transfer.Status != models.TransferStatusPending {
		return rides.ErrTransferClosed
	}

	if err := uc.rideRepo.UpdateTransferStatus(ctx, transferID, models.TransferStatusRejected); err != nil {
		return err
	}

	logger.Info("Transfer request rejected",
		logger.String("transfer_id", transferID),
		logger.String("driver_id", actingDriverID))

	return nil
}

// CreateScheduledRide books a ride for a future departure with a specific
// driver
func (uc *rideUC) CreateScheduledRide(ctx context.Context, ride *models.ScheduledRide) (*models.ScheduledRide, error) {
	if ride.RiderName == "" || ride.RiderPhone == "" {
		return nil, fmt.Errorf("name and phone are required")
	}
	if ride.DriverID == "" {
		return nil, fmt.Errorf("driver is required")
	}
	if ride.ScheduledAt.IsZero() {
		return nil, fmt.Errorf("scheduled time is required")
	}

	if _, err := uc.driverRepo.GetDriver(ctx, ride.DriverID); err != nil {
		return nil, err
	}

	ride.ID = uuid.New().String()

	if err := uc.rideRepo.CreateScheduled(ctx, ride); err != nil {
		return nil, err
	}

	logger.Info("Scheduled ride created",
		logger.String("scheduled_ride_id", ride.ID),
		logger.String("driver_id", ride.DriverID))

	return ride, nil
}

// ListScheduledRides returns a driver's upcoming rides in departure order
func (uc *rideUC) ListScheduledRides(ctx context.Context, driverID string) ([]*models.ScheduledRide, error) {
	return uc.rideRepo.ListScheduledByDriver(ctx, driverID)
}

// CancelScheduledRide deletes a scheduled ride. Unlike regular rides there is
// no cancelled state to keep; the record is removed.
func (uc *rideUC) CancelScheduledRide(ctx context.Context, scheduledRideID, actorID string) error {
	ride, err := uc.rideRepo.GetScheduled(ctx, scheduledRideID)
	if err != nil {
		return err
	}

	if actorID != ride.DriverID && actorID != ride.RiderID {
		return rides.ErrNotRideOwner
	}

	if err := uc.rideRepo.DeleteScheduled(ctx, scheduledRideID); err != nil {
		return err
	}

	logger.Info("Scheduled ride cancelled",
		logger.String("scheduled_ride_id", scheduledRideID))

	return nil
}

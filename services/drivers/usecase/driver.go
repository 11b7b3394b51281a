package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/openride/marketplace/internal/pkg/logger"
	"github.com/openride/marketplace/internal/pkg/metrics"
	"github.com/openride/marketplace/internal/pkg/models"
	"github.com/openride/marketplace/internal/utils"
	"github.com/openride/marketplace/services/drivers"
)

// geohashPrecision gives ~150m cells, enough to bucket nearby drivers.
const geohashPrecision = 7

type driverUC struct {
	cfg              *models.Config
	driverRepo       drivers.DriverRepo
	availabilityRepo drivers.AvailabilityRepo
	driverGW         drivers.DriverGW
}

// NewDriverUC creates a new driver use case
func NewDriverUC(
	cfg *models.Config,
	driverRepo drivers.DriverRepo,
	availabilityRepo drivers.AvailabilityRepo,
	driverGW drivers.DriverGW,
) drivers.DriverUC {
	return &driverUC{
		cfg:              cfg,
		driverRepo:       driverRepo,
		availabilityRepo: availabilityRepo,
		driverGW:         driverGW,
	}
}

// RegisterDriver creates a driver record pending admin approval. The
// registration webhook is enqueued fire-and-forget; a delivery failure never
// fails the registration.
func (uc *driverUC) RegisterDriver(ctx context.Context, req models.DriverRegistrationRequest) (*models.Driver, error) {
	if req.Name == "" || req.Phone == "" {
		return nil, fmt.Errorf("name and phone are required")
	}

	driver := &models.Driver{
		ID:         uuid.New().String(),
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		PhotoURL:   req.PhotoURL,
		Vehicle:    req.Vehicle,
		Available:  false,
		IsActive:   false,
		LocationID: req.LocationID,
	}

	if err := uc.driverRepo.CreateDriver(ctx, driver); err != nil {
		return nil, err
	}

	if err := uc.driverGW.EnqueueRegistrationWebhook(driver); err != nil {
		logger.Warn("Failed to enqueue driver registration webhook",
			logger.String("driver_id", driver.ID),
			logger.Err(err))
	}

	logger.Info("Driver registered",
		logger.String("driver_id", driver.ID),
		logger.String("location_id", driver.LocationID))

	return driver, nil
}

// GetDriver retrieves a driver by id
func (uc *driverUC) GetDriver(ctx context.Context, driverID string) (*models.Driver, error) {
	return uc.driverRepo.GetDriver(ctx, driverID)
}

// ApproveDriver marks the driver active. Admin only; enforced at the route.
func (uc *driverUC) ApproveDriver(ctx context.Context, driverID string) error {
	if err := uc.driverRepo.UpdateActive(ctx, driverID, true); err != nil {
		return err
	}

	logger.Info("Driver approved", logger.String("driver_id", driverID))
	return nil
}

// SetAvailability toggles the driver's availability flag and mirrors it into
// the Redis location set. Postgres stays the source of truth; a Redis failure
// is logged but does not roll the flag back.
func (uc *driverUC) SetAvailability(ctx context.Context, driverID string, available bool) error {
	driver, err := uc.driverRepo.GetDriver(ctx, driverID)
	if err != nil {
		return err
	}

	if available && !driver.IsActive {
		return drivers.ErrDriverInactive
	}

	if err := uc.driverRepo.UpdateAvailability(ctx, driverID, available); err != nil {
		return err
	}

	if available {
		err = uc.availabilityRepo.MarkAvailable(ctx, driver.LocationID, driverID)
		metrics.DriversAvailable.Inc()
	} else {
		err = uc.availabilityRepo.MarkUnavailable(ctx, driver.LocationID, driverID)
		metrics.DriversAvailable.Dec()
	}
	if err != nil {
		logger.Warn("Failed to update availability index",
			logger.String("driver_id", driverID),
			logger.Bool("available", available),
			logger.Err(err))
	}

	return nil
}

// UpdatePosition records the driver's reported coordinate
func (uc *driverUC) UpdatePosition(ctx context.Context, position models.DriverPosition) error {
	return uc.availabilityRepo.RecordPosition(ctx, position)
}

// ListAvailableDrivers returns eligible drivers sorted by rating descending
func (uc *driverUC) ListAvailableDrivers(ctx context.Context, locationID string) ([]*models.Driver, error) {
	return uc.driverRepo.ListAvailable(ctx, locationID)
}

// NearbyDrivers returns drivers with reported positions within radiusKm,
// nearest first
func (uc *driverUC) NearbyDrivers(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.DriverPosition, error) {
	positions, err := uc.availabilityRepo.NearbyDrivers(ctx, latitude, longitude, radiusKm)
	if err != nil {
		return nil, err
	}

	origin := utils.GeoPoint{Latitude: latitude, Longitude: longitude}
	for i := range positions {
		point := utils.GeoPoint{Latitude: positions[i].Latitude, Longitude: positions[i].Longitude}
		positions[i].Geohash = utils.EncodePoint(point, geohashPrecision)
		positions[i].DistanceKm = utils.CalculateDistance(origin, point)
	}
	sort.Slice(positions, func(i, j int) bool {
		return positions[i].DistanceKm < positions[j].DistanceKm
	})

	return positions, nil
}

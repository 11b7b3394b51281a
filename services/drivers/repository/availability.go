package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/openride/marketplace/internal/pkg/constants"
	"github.com/openride/marketplace/internal/pkg/database"
	"github.com/openride/marketplace/internal/pkg/models"
)

// AvailabilityRepo mirrors driver availability and positions into Redis
type AvailabilityRepo struct {
	redis *database.RedisClient
}

// NewAvailabilityRepository creates a new availability repository
func NewAvailabilityRepository(redisClient *database.RedisClient) *AvailabilityRepo {
	return &AvailabilityRepo{redis: redisClient}
}

func availabilityKey(locationID string) string {
	return fmt.Sprintf(constants.KeyAvailableDrivers, locationID)
}

// MarkAvailable adds the driver to the location's availability set
func (r *AvailabilityRepo) MarkAvailable(ctx context.Context, locationID, driverID string) error {
	return r.redis.SAdd(ctx, availabilityKey(locationID), driverID)
}

// MarkUnavailable removes the driver from the location's availability set
func (r *AvailabilityRepo) MarkUnavailable(ctx context.Context, locationID, driverID string) error {
	return r.redis.SRem(ctx, availabilityKey(locationID), driverID)
}

// IsAvailable reports set membership for the driver in a location
func (r *AvailabilityRepo) IsAvailable(ctx context.Context, locationID, driverID string) (bool, error) {
	return r.redis.SIsMember(ctx, availabilityKey(locationID), driverID)
}

// RecordPosition stores the driver's reported coordinate in the geo index
func (r *AvailabilityRepo) RecordPosition(ctx context.Context, position models.DriverPosition) error {
	return r.redis.GeoAdd(ctx, constants.KeyDriverGeo, position.Longitude, position.Latitude, position.DriverID)
}

// NearbyDrivers returns drivers within radiusKm of the given point
func (r *AvailabilityRepo) NearbyDrivers(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.DriverPosition, error) {
	locations, err := r.redis.GeoRadius(ctx, constants.KeyDriverGeo, longitude, latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby drivers: %w", err)
	}

	now := time.Now()
	positions := make([]models.DriverPosition, 0, len(locations))
	for _, loc := range locations {
		positions = append(positions, models.DriverPosition{
			DriverID:  loc.Name,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
			Timestamp: now,
		})
	}

	return positions, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/openride/marketplace/internal/pkg/models"
	"github.com/openride/marketplace/services/rides"
)

const scheduledColumns = `
	id, rider_id, rider_name, rider_phone, driver_id, pickup, dropoff,
	location_id, scheduled_at, created_at
`

func scanScheduled(row interface{ Scan(...interface{}) error }) (*models.ScheduledRide, error) {
	ride := &models.ScheduledRide{}
	var riderID sql.NullString

	err := row.Scan(
		&ride.ID,
		&riderID,
		&ride.RiderName,
		&ride.RiderPhone,
		&ride.DriverID,
		&ride.Pickup,
		&ride.Dropoff,
		&ride.LocationID,
		&ride.ScheduledAt,
		&ride.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	ride.RiderID = riderID.String

	return ride, nil
}

// CreateScheduled inserts a new scheduled ride record
func (r *RideRepo) CreateScheduled(ctx context.Context, ride *models.ScheduledRide) error {
	query := `
		INSERT INTO scheduled_rides (
			id, rider_id, rider_name, rider_phone, driver_id, pickup, dropoff,
			location_id, scheduled_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	ride.CreatedAt = time.Now()

	_, err := r.db.ExecContext(
		ctx,
		query,
		ride.ID,
		nullString(ride.RiderID),
		ride.RiderName,
		ride.RiderPhone,
		ride.DriverID,
		ride.Pickup,
		ride.Dropoff,
		ride.LocationID,
		ride.ScheduledAt,
		ride.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create scheduled ride: %w", err)
	}

	return nil
}

// GetScheduled retrieves a scheduled ride by id
func (r *RideRepo) GetScheduled(ctx context.Context, scheduledRideID string) (*models.ScheduledRide, error) {
	query := `SELECT ` + scheduledColumns + ` FROM scheduled_rides WHERE id = $1`

	ride, err := scanScheduled(r.db.QueryRowContext(ctx, query, scheduledRideID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrScheduledRideNotFound
		}
		return nil, fmt.Errorf("failed to get scheduled ride: %w", err)
	}

	return ride, nil
}

// ListScheduledByDriver returns a driver's scheduled rides in departure order
func (r *RideRepo) ListScheduledByDriver(ctx context.Context, driverID string) ([]*models.ScheduledRide, error) {
	query := `SELECT ` + scheduledColumns + `
		FROM scheduled_rides
		WHERE driver_id = $1
		ORDER BY scheduled_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled rides: %w", err)
	}
	defer rows.Close()

	var result []*models.ScheduledRide
	for rows.Next() {
		ride, err := scanScheduled(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, ride)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// DeleteScheduled removes a scheduled ride record. Scheduled rides are
// deleted on cancel rather than marked cancelled.
func (r *RideRepo) DeleteScheduled(ctx context.Context, scheduledRideID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM scheduled_rides WHERE id = $1`, scheduledRideID)
	if err != nil {
		return fmt.Errorf("failed to delete scheduled ride: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return rides.ErrScheduledRideNotFound
	}

	return nil
}

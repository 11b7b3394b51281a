package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/openride/marketplace/internal/pkg/models"
	"github.com/openride/marketplace/services/rides"
)

// RideRepo implements rides.RideRepo against Postgres
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

const rideColumns = `
	id, rider_id, rider_name, rider_phone, pickup, dropoff, location_id,
	status, driver_id, previous_driver_id, available_drivers, version,
	created_at, updated_at, transferred_at
`

func scanRide(row interface{ Scan(...interface{}) error }) (*models.Ride, error) {
	ride := &models.Ride{}
	var riderID, driverID, previousDriverID sql.NullString
	var availableDrivers []byte
	var transferredAt sql.NullTime

	err := row.Scan(
		&ride.ID,
		&riderID,
		&ride.RiderName,
		&ride.RiderPhone,
		&ride.Pickup,
		&ride.Dropoff,
		&ride.LocationID,
		&ride.Status,
		&driverID,
		&previousDriverID,
		&availableDrivers,
		&ride.Version,
		&ride.CreatedAt,
		&ride.UpdatedAt,
		&transferredAt,
	)
	if err != nil {
		return nil, err
	}

	ride.RiderID = riderID.String
	ride.DriverID = driverID.String
	ride.PreviousDriverID = previousDriverID.String
	if transferredAt.Valid {
		ride.TransferredAt = &transferredAt.Time
	}
	if len(availableDrivers) > 0 {
		if err := json.Unmarshal(availableDrivers, &ride.AvailableDrivers); err != nil {
			return nil, fmt.Errorf("failed to decode available drivers snapshot: %w", err)
		}
	}

	return ride, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// CreateRide inserts a new ride record
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	query := `
		INSERT INTO rides (
			id, rider_id, rider_name, rider_phone, pickup, dropoff, location_id,
			status, driver_id, previous_driver_id, available_drivers, version,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	now := time.Now()
	ride.CreatedAt = now
	ride.UpdatedAt = now
	ride.Version = 1

	snapshot, err := json.Marshal(ride.AvailableDrivers)
	if err != nil {
		return fmt.Errorf("failed to encode available drivers snapshot: %w", err)
	}

	_, err = r.db.ExecContext(
		ctx,
		query,
		ride.ID,
		nullString(ride.RiderID),
		ride.RiderName,
		ride.RiderPhone,
		ride.Pickup,
		ride.Dropoff,
		ride.LocationID,
		ride.Status,
		nullString(ride.DriverID),
		nullString(ride.PreviousDriverID),
		snapshot,
		ride.Version,
		ride.CreatedAt,
		ride.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create ride: %w", err)
	}

	return nil
}

// GetRide retrieves a ride by id
func (r *RideRepo) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`

	ride, err := scanRide(r.db.QueryRowContext(ctx, query, rideID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}

	return ride, nil
}

// ListByDriver returns rides currently or previously owned by a driver,
// newest first
func (r *RideRepo) ListByDriver(ctx context.Context, driverID string) ([]*models.Ride, error) {
	query := `SELECT ` + rideColumns + `
		FROM rides
		WHERE driver_id = $1 OR previous_driver_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rides by driver: %w", err)
	}
	defer rows.Close()

	var result []*models.Ride
	for rows.Next() {
		ride, err := scanRide(rows)
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

// guardedUpdate runs an UPDATE carrying a version check and maps the
// zero-rows outcome to not-found or conflict depending on whether the ride
// still exists.
func (r *RideRepo) guardedUpdate(ctx context.Context, rideID string, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update ride: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return r.conflictOrNotFound(ctx, rideID)
	}

	return nil
}

func (r *RideRepo) conflictOrNotFound(ctx context.Context, rideID string) error {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM rides WHERE id = $1)`, rideID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check ride existence: %w", err)
	}
	if !exists {
		return rides.ErrRideNotFound
	}
	return rides.ErrRideConflict
}

// AssignDriver sets the assigned driver and moves the ride to assigned,
// guarded by the version the caller read
func (r *RideRepo) AssignDriver(ctx context.Context, rideID, driverID string, version int) error {
	query := `
		UPDATE rides
		SET driver_id = $1, status = $2, version = version + 1, updated_at = $3
		WHERE id = $4 AND version = $5
	`

	return r.guardedUpdate(ctx, rideID, query, driverID, models.RideStatusAssigned, time.Now(), rideID, version)
}

// UpdateStatus sets the ride status, guarded by the version the caller read
func (r *RideRepo) UpdateStatus(ctx context.Context, rideID string, status models.RideStatus, version int) error {
	query := `
		UPDATE rides
		SET status = $1, version = version + 1, updated_at = $2
		WHERE id = $3 AND version = $4
	`

	return r.guardedUpdate(ctx, rideID, query, status, time.Now(), rideID, version)
}

// TransferRide moves ride ownership from one driver to another and stamps
// the transfer time, guarded by the version the caller read. The ride lands
// in transferred; the receiving driver confirms it back to assigned.
func (r *RideRepo) TransferRide(ctx context.Context, rideID, fromDriverID, toDriverID string, version int) error {
	query := `
		UPDATE rides
		SET driver_id = $1, previous_driver_id = $2, status = $3,
			transferred_at = $4, version = version + 1, updated_at = $4
		WHERE id = $5 AND version = $6 AND driver_id = $2
	`

	return r.guardedUpdate(ctx, rideID, query, toDriverID, fromDriverID, models.RideStatusTransferred, time.Now(), rideID, version)
}

// CompleteRide marks the ride completed and increments the driver's ride
// counters in a single transaction
func (r *RideRepo) CompleteRide(ctx context.Context, rideID, driverID string, version int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rideQuery := `
		UPDATE rides
		SET status = $1, version = version + 1, updated_at = $2
		WHERE id = $3 AND version = $4 AND driver_id = $5
	`

	result, err := tx.ExecContext(ctx, rideQuery, models.RideStatusCompleted, time.Now(), rideID, version, driverID)
	if err != nil {
		return fmt.Errorf("failed to complete ride: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return r.conflictOrNotFound(ctx, rideID)
	}

	driverQuery := `
		UPDATE drivers
		SET total_rides = total_rides + 1, completed_rides = completed_rides + 1, updated_at = $1
		WHERE id = $2
	`

	if _, err := tx.ExecContext(ctx, driverQuery, time.Now(), driverID); err != nil {
		return fmt.Errorf("failed to update driver ride counters: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ride completion: %w", err)
	}

	return nil
}

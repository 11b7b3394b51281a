package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/openride/marketplace/internal/pkg/models"
	"github.com/openride/marketplace/services/drivers"
)

// DriverRepo implements drivers.DriverRepo against Postgres
type DriverRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(cfg *models.Config, db *sqlx.DB) *DriverRepo {
	return &DriverRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateDriver inserts a new driver record
func (r *DriverRepo) CreateDriver(ctx context.Context, driver *models.Driver) error {
	query := `
		INSERT INTO drivers (
			id, name, phone, email, photo_url,
			vehicle_make, vehicle_model, vehicle_year, vehicle_color, vehicle_plate,
			rating, available, is_active, is_admin, location_id,
			total_rides, completed_rides, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	now := time.Now()
	driver.CreatedAt = now
	driver.UpdatedAt = now

	_, err := r.db.ExecContext(
		ctx,
		query,
		driver.ID,
		driver.Name,
		driver.Phone,
		driver.Email,
		driver.PhotoURL,
		driver.Vehicle.Make,
		driver.Vehicle.Model,
		driver.Vehicle.Year,
		driver.Vehicle.Color,
		driver.Vehicle.Plate,
		driver.Rating,
		driver.Available,
		driver.IsActive,
		driver.IsAdmin,
		driver.LocationID,
		driver.TotalRides,
		driver.CompletedRides,
		driver.CreatedAt,
		driver.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}

	return nil
}

const driverColumns = `
	id, name, phone, email, photo_url,
	vehicle_make, vehicle_model, vehicle_year, vehicle_color, vehicle_plate,
	rating, available, is_active, is_admin, location_id,
	total_rides, completed_rides, created_at, updated_at
`

func scanDriver(row interface{ Scan(...interface{}) error }) (*models.Driver, error) {
	driver := &models.Driver{}
	var rating sql.NullFloat64

	err := row.Scan(
		&driver.ID,
		&driver.Name,
		&driver.Phone,
		&driver.Email,
		&driver.PhotoURL,
		&driver.Vehicle.Make,
		&driver.Vehicle.Model,
		&driver.Vehicle.Year,
		&driver.Vehicle.Color,
		&driver.Vehicle.Plate,
		&rating,
		&driver.Available,
		&driver.IsActive,
		&driver.IsAdmin,
		&driver.LocationID,
		&driver.TotalRides,
		&driver.CompletedRides,
		&driver.CreatedAt,
		&driver.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if rating.Valid {
		driver.Rating = &rating.Float64
	}

	return driver, nil
}

// GetDriver retrieves a driver by id
func (r *DriverRepo) GetDriver(ctx context.Context, driverID string) (*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`

	driver, err := scanDriver(r.db.QueryRowContext(ctx, query, driverID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, drivers.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return driver, nil
}

// GetDriverByPhone retrieves a driver by phone number
func (r *DriverRepo) GetDriverByPhone(ctx context.Context, phone string) (*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE phone = $1`

	driver, err := scanDriver(r.db.QueryRowContext(ctx, query, phone))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, drivers.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver by phone: %w", err)
	}

	return driver, nil
}

// GetDriverByEmail retrieves a driver by email
func (r *DriverRepo) GetDriverByEmail(ctx context.Context, email string) (*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE email = $1`

	driver, err := scanDriver(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, drivers.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver by email: %w", err)
	}

	return driver, nil
}

// UpdateAdmin sets the admin claim flag
func (r *DriverRepo) UpdateAdmin(ctx context.Context, driverID string, isAdmin bool) error {
	query := `UPDATE drivers SET is_admin = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, isAdmin, time.Now(), driverID)
	if err != nil {
		return fmt.Errorf("failed to update driver admin flag: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return drivers.ErrDriverNotFound
	}

	return nil
}

// UpdateActive sets the admin-approval flag
func (r *DriverRepo) UpdateActive(ctx context.Context, driverID string, isActive bool) error {
	query := `UPDATE drivers SET is_active = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, isActive, time.Now(), driverID)
	if err != nil {
		return fmt.Errorf("failed to update driver active flag: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return drivers.ErrDriverNotFound
	}

	return nil
}

// UpdateAvailability sets the driver's availability flag
func (r *DriverRepo) UpdateAvailability(ctx context.Context, driverID string, available bool) error {
	query := `UPDATE drivers SET available = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, available, time.Now(), driverID)
	if err != nil {
		return fmt.Errorf("failed to update driver availability: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return drivers.ErrDriverNotFound
	}

	return nil
}

// ListAvailable returns available and active drivers, optionally filtered by
// location, sorted by rating descending. Drivers without a rating sort as 0;
// ties fall back to store order, which is unspecified.
func (r *DriverRepo) ListAvailable(ctx context.Context, locationID string) ([]*models.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE available = true AND is_active = true
	`
	args := []interface{}{}

	if locationID != "" {
		query += ` AND location_id = $1`
		args = append(args, locationID)
	}

	query += ` ORDER BY COALESCE(rating, 0) DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list available drivers: %w", err)
	}
	defer rows.Close()

	var result []*models.Driver
	for rows.Next() {
		driver, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, driver)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/openride/marketplace/internal/pkg/models"
	"github.com/openride/marketplace/services/accounts"
)

// RiderRepo implements accounts.RiderRepo against Postgres
type RiderRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRiderRepository creates a new rider repository
func NewRiderRepository(cfg *models.Config, db *sqlx.DB) *RiderRepo {
	return &RiderRepo{
		cfg: cfg,
		db:  db,
	}
}

const riderColumns = `id, name, phone, email, is_admin, created_at, updated_at`

func scanRider(row interface{ Scan(...interface{}) error }) (*models.Rider, error) {
	rider := &models.Rider{}

	err := row.Scan(
		&rider.ID,
		&rider.Name,
		&rider.Phone,
		&rider.Email,
		&rider.IsAdmin,
		&rider.CreatedAt,
		&rider.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return rider, nil
}

// CreateRider inserts a new rider record
func (r *RiderRepo) CreateRider(ctx context.Context, rider *models.Rider) error {
	query := `
		INSERT INTO riders (id, name, phone, email, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	now := time.Now()
	rider.CreatedAt = now
	rider.UpdatedAt = now

	_, err := r.db.ExecContext(
		ctx,
		query,
		rider.ID,
		rider.Name,
		rider.Phone,
		rider.Email,
		rider.IsAdmin,
		rider.CreatedAt,
		rider.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create rider: %w", err)
	}

	return nil
}

func (r *RiderRepo) getRiderBy(ctx context.Context, column, value string) (*models.Rider, error) {
	query := `SELECT ` + riderColumns + ` FROM riders WHERE ` + column + ` = $1`

	rider, err := scanRider(r.db.QueryRowContext(ctx, query, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accounts.ErrRiderNotFound
		}
		return nil, fmt.Errorf("failed to get rider: %w", err)
	}

	return rider, nil
}

// GetRider retrieves a rider by id
func (r *RiderRepo) GetRider(ctx context.Context, riderID string) (*models.Rider, error) {
	return r.getRiderBy(ctx, "id", riderID)
}

// GetRiderByPhone retrieves a rider by phone number
func (r *RiderRepo) GetRiderByPhone(ctx context.Context, phone string) (*models.Rider, error) {
	return r.getRiderBy(ctx, "phone", phone)
}

// GetRiderByEmail retrieves a rider by email
func (r *RiderRepo) GetRiderByEmail(ctx context.Context, email string) (*models.Rider, error) {
	return r.getRiderBy(ctx, "email", email)
}

// UpdateAdmin sets the admin claim flag
func (r *RiderRepo) UpdateAdmin(ctx context.Context, riderID string, isAdmin bool) error {
	query := `UPDATE riders SET is_admin = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, isAdmin, time.Now(), riderID)
	if err != nil {
		return fmt.Errorf("failed to update rider admin flag: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return accounts.ErrRiderNotFound
	}

	return nil
}

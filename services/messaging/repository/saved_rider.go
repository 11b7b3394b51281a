package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/openride/marketplace/internal/pkg/models"
	"github.com/openride/marketplace/services/messaging"
)

// CreateSavedRider bookmarks a rider for a driver
func (r *MessagingRepo) CreateSavedRider(ctx context.Context, savedRider *models.SavedRider) error {
	query := `
		INSERT INTO saved_riders (id, driver_id, rider_id, nickname, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (driver_id, rider_id) DO NOTHING
	`

	savedRider.CreatedAt = time.Now()

	result, err := r.db.ExecContext(
		ctx,
		query,
		savedRider.ID,
		savedRider.DriverID,
		savedRider.RiderID,
		savedRider.Nickname,
		savedRider.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save rider: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return messaging.ErrSavedRiderExists
	}

	return nil
}

// ListSavedRidersByDriver returns a driver's saved riders, newest first
func (r *MessagingRepo) ListSavedRidersByDriver(ctx context.Context, driverID string) ([]*models.SavedRider, error) {
	query := `
		SELECT id, driver_id, rider_id, nickname, created_at
		FROM saved_riders
		WHERE driver_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved riders: %w", err)
	}
	defer rows.Close()

	var result []*models.SavedRider
	for rows.Next() {
		savedRider := &models.SavedRider{}
		err := rows.Scan(
			&savedRider.ID,
			&savedRider.DriverID,
			&savedRider.RiderID,
			&savedRider.Nickname,
			&savedRider.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, savedRider)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// DeleteSavedRider removes a driver's saved rider entry
func (r *MessagingRepo) DeleteSavedRider(ctx context.Context, driverID, savedRiderID string) error {
	query := `DELETE FROM saved_riders WHERE id = $1 AND driver_id = $2`

	result, err := r.db.ExecContext(ctx, query, savedRiderID, driverID)
	if err != nil {
		return fmt.Errorf("failed to delete saved rider: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return messaging.ErrSavedRiderNotFound
	}

	return nil
}

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

const transferColumns = `
	id, ride_id, original_driver_id, new_driver_id, transfer_fee_amount,
	status, created_at, updated_at
`

func scanTransfer(row interface{ Scan(...interface{}) error }) (*models.RideTransfer, error) {
	transfer := &models.RideTransfer{}

	err := row.Scan(
		&transfer.ID,
		&transfer.RideID,
		&transfer.OriginalDriverID,
		&transfer.NewDriverID,
		&transfer.TransferFeeAmount,
		&transfer.Status,
		&transfer.CreatedAt,
		&transfer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return transfer, nil
}

// CreateTransfer inserts a new transfer request record
func (r *RideRepo) CreateTransfer(ctx context.Context, transfer *models.RideTransfer) error {
	query := `
		INSERT INTO ride_transfers (
			id, ride_id, original_driver_id, new_driver_id, transfer_fee_amount,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	now := time.Now()
	transfer.CreatedAt = now
	transfer.UpdatedAt = now

	_, err := r.db.ExecContext(
		ctx,
		query,
		transfer.ID,
		transfer.RideID,
		transfer.OriginalDriverID,
		transfer.NewDriverID,
		transfer.TransferFeeAmount,
		transfer.Status,
		transfer.CreatedAt,
		transfer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create ride transfer: %w", err)
	}

	return nil
}

// GetTransfer retrieves a transfer request by id
func (r *RideRepo) GetTransfer(ctx context.Context, transferID string) (*models.RideTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM ride_transfers WHERE id = $1`

	transfer, err := scanTransfer(r.db.QueryRowContext(ctx, query, transferID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to get ride transfer: %w", err)
	}

	return transfer, nil
}

// UpdateTransferStatus moves a pending transfer to a decided state. The
// pending guard keeps a decided transfer from being flipped again.
func (r *RideRepo) UpdateTransferStatus(ctx context.Context, transferID string, status models.TransferStatus) error {
	query := `
		UPDATE ride_transfers
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), transferID, models.TransferStatusPending)
	if err != nil {
		return fmt.Errorf("failed to update transfer status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return rides.ErrTransferClosed
	}

	return nil
}

// AcceptTransfer moves the ride to the new driver and marks the transfer
// accepted in a single transaction, guarded by the ride version the caller
// read
func (r *RideRepo) AcceptTransfer(ctx context.Context, transfer *models.RideTransfer, rideVersion int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()

	rideQuery := `
		UPDATE rides
		SET driver_id = $1, previous_driver_id = $2, status = $3,
			transferred_at = $4, version = version + 1, updated_at = $4
		WHERE id = $5 AND version = $6 AND driver_id = $2
	`

	result, err := tx.ExecContext(
		ctx,
		rideQuery,
		transfer.NewDriverID,
		transfer.OriginalDriverID,
		models.RideStatusAssigned,
		now,
		transfer.RideID,
		rideVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to transfer ride: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return r.conflictOrNotFound(ctx, transfer.RideID)
	}

	transferQuery := `
		UPDATE ride_transfers
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err = tx.ExecContext(ctx, transferQuery, models.TransferStatusAccepted, now, transfer.ID, models.TransferStatusPending)
	if err != nil {
		return fmt.Errorf("failed to update transfer status: %w", err)
	}

	rows, err = result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return rides.ErrTransferClosed
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transfer acceptance: %w", err)
	}

	return nil
}

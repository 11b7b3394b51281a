package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/openride/marketplace/internal/pkg/models"
	"github.com/openride/marketplace/services/messaging"
)

// MessagingRepo implements messaging.MessagingRepo against Postgres
type MessagingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewMessagingRepository creates a new messaging repository
func NewMessagingRepository(cfg *models.Config, db *sqlx.DB) *MessagingRepo {
	return &MessagingRepo{
		cfg: cfg,
		db:  db,
	}
}

const connectionColumns = `id, driver_id, rider_id, status, created_at, updated_at`

func scanConnection(row interface{ Scan(...interface{}) error }) (*models.Connection, error) {
	connection := &models.Connection{}

	err := row.Scan(
		&connection.ID,
		&connection.DriverID,
		&connection.RiderID,
		&connection.Status,
		&connection.CreatedAt,
		&connection.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return connection, nil
}

// CreateConnection inserts a new connection request
func (r *MessagingRepo) CreateConnection(ctx context.Context, connection *models.Connection) error {
	query := `
		INSERT INTO connections (id, driver_id, rider_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	now := time.Now()
	connection.CreatedAt = now
	connection.UpdatedAt = now

	_, err := r.db.ExecContext(
		ctx,
		query,
		connection.ID,
		connection.DriverID,
		connection.RiderID,
		connection.Status,
		connection.CreatedAt,
		connection.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create connection: %w", err)
	}

	return nil
}

// GetConnection retrieves a connection by id
func (r *MessagingRepo) GetConnection(ctx context.Context, connectionID string) (*models.Connection, error) {
	query := `SELECT ` + connectionColumns + ` FROM connections WHERE id = $1`

	connection, err := scanConnection(r.db.QueryRowContext(ctx, query, connectionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, messaging.ErrConnectionNotFound
		}
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}

	return connection, nil
}

// GetConnectionBetween retrieves the connection for a driver-rider pair
func (r *MessagingRepo) GetConnectionBetween(ctx context.Context, driverID, riderID string) (*models.Connection, error) {
	query := `SELECT ` + connectionColumns + ` FROM connections WHERE driver_id = $1 AND rider_id = $2`

	connection, err := scanConnection(r.db.QueryRowContext(ctx, query, driverID, riderID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, messaging.ErrConnectionNotFound
		}
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}

	return connection, nil
}

// UpdateConnectionStatus decides a pending connection request. The pending
// guard keeps a decided request from being flipped again.
func (r *MessagingRepo) UpdateConnectionStatus(ctx context.Context, connectionID string, status models.ConnectionStatus) error {
	query := `
		UPDATE connections
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), connectionID, models.ConnectionStatusPending)
	if err != nil {
		return fmt.Errorf("failed to update connection status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return messaging.ErrConnectionClosed
	}

	return nil
}

// DeleteConnection removes a connection record outright
func (r *MessagingRepo) DeleteConnection(ctx context.Context, connectionID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM connections WHERE id = $1`, connectionID)
	if err != nil {
		return fmt.Errorf("failed to delete connection: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return messaging.ErrConnectionNotFound
	}

	return nil
}

// ListConnectionsByUser returns connections the user participates in, newest
// first
func (r *MessagingRepo) ListConnectionsByUser(ctx context.Context, userID string) ([]*models.Connection, error) {
	query := `SELECT ` + connectionColumns + `
		FROM connections
		WHERE driver_id = $1 OR rider_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	defer rows.Close()

	var result []*models.Connection
	for rows.Next() {
		connection, err := scanConnection(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, connection)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

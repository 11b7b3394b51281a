package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/openride/marketplace/internal/pkg/models"
	"github.com/openride/marketplace/services/messaging"
)

// CreateNotification inserts a new notification record
func (r *MessagingRepo) CreateNotification(ctx context.Context, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, type, payload, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	notification.CreatedAt = time.Now()

	_, err := r.db.ExecContext(
		ctx,
		query,
		notification.ID,
		notification.UserID,
		notification.Type,
		notification.Payload,
		notification.Read,
		notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// ListNotificationsByUser returns a user's notifications, newest first
func (r *MessagingRepo) ListNotificationsByUser(ctx context.Context, userID string) ([]*models.Notification, error) {
	query := `
		SELECT id, user_id, type, payload, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var result []*models.Notification
	for rows.Next() {
		notification := &models.Notification{}
		err := rows.Scan(
			&notification.ID,
			&notification.UserID,
			&notification.Type,
			&notification.Payload,
			&notification.Read,
			&notification.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, notification)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// MarkNotificationRead marks a notification read; the user guard keeps users
// from touching notifications that are not theirs
func (r *MessagingRepo) MarkNotificationRead(ctx context.Context, notificationID, userID string) error {
	query := `UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return messaging.ErrNotificationNotFound
	}

	return nil
}

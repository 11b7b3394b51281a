package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/openride/marketplace/internal/pkg/models"
)

// CreateMessage appends a chat message to a conversation
func (r *MessagingRepo) CreateMessage(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (id, conversation_id, sender_id, body, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	message.CreatedAt = time.Now()

	_, err := r.db.ExecContext(
		ctx,
		query,
		message.ID,
		message.ConversationID,
		message.SenderID,
		message.Body,
		message.Read,
		message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}

// ListMessagesByConversation returns a conversation's messages in creation
// order
func (r *MessagingRepo) ListMessagesByConversation(ctx context.Context, conversationID string) ([]*models.Message, error) {
	query := `
		SELECT id, conversation_id, sender_id, body, read, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var result []*models.Message
	for rows.Next() {
		message := &models.Message{}
		err := rows.Scan(
			&message.ID,
			&message.ConversationID,
			&message.SenderID,
			&message.Body,
			&message.Read,
			&message.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, message)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// MarkMessagesRead marks the messages addressed to the reader as read,
// i.e. every message in the conversation the reader did not send
func (r *MessagingRepo) MarkMessagesRead(ctx context.Context, conversationID, readerID string) error {
	query := `
		UPDATE messages
		SET read = true
		WHERE conversation_id = $1 AND sender_id <> $2 AND read = false
	`

	if _, err := r.db.ExecContext(ctx, query, conversationID, readerID); err != nil {
		return fmt.Errorf("failed to mark messages read: %w", err)
	}

	return nil
}

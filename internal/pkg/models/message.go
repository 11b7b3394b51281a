package models

import (
	"time"
)

// Message is an append-only chat record keyed by conversation. Listing is
// ordered by the store's sort on created_at; no stronger ordering is
// guaranteed.
type Message struct {
	ID             string    `json:"id" db:"id"`
	ConversationID string    `json:"conversationId" db:"conversation_id"`
	SenderID       string    `json:"senderId" db:"sender_id"`
	Body           string    `json:"body" db:"body"`
	Read           bool      `json:"read" db:"read"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// SendMessageRequest is the payload for posting a message
type SendMessageRequest struct {
	ConversationID string `json:"conversationId"`
	Body           string `json:"body"`
}

// Notification is a fire-and-forget record written on ride state changes
type Notification struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Type      string    `json:"type" db:"type"`
	Payload   string    `json:"payload" db:"payload"`
	Read      bool      `json:"read" db:"read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

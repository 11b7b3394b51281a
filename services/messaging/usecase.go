package messaging

import (
	"context"

	"github.com/openride/marketplace/internal/pkg/models"
)

// MessagingUC defines the interface for connection, chat and notification
// business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/openride/marketplace/services/messaging MessagingUC
type MessagingUC interface {
	RequestConnection(ctx context.Context, driverID, riderID string) (*models.Connection, error)
	AcceptConnection(ctx context.Context, connectionID, actorID string) (*models.Connection, error)
	RejectConnection(ctx context.Context, connectionID, actorID string) error
	RemoveConnection(ctx context.Context, connectionID, actorID string) error
	ListConnections(ctx context.Context, userID string) ([]*models.Connection, error)

	SendMessage(ctx context.Context, senderID string, req models.SendMessageRequest) (*models.Message, error)
	ListMessages(ctx context.Context, conversationID, userID string) ([]*models.Message, error)
	MarkMessagesRead(ctx context.Context, conversationID, userID string) error

	ListNotifications(ctx context.Context, userID string) ([]*models.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID, userID string) error

	// NotifyRideEvent fans a ride lifecycle event out as notifications to the
	// parties involved. Called from the event consumer, not from HTTP.
	NotifyRideEvent(ctx context.Context, eventType string, event models.RideEvent) error

	SaveRider(ctx context.Context, driverID, riderID, nickname string) (*models.SavedRider, error)
	ListSavedRiders(ctx context.Context, driverID string) ([]*models.SavedRider, error)
	RemoveSavedRider(ctx context.Context, driverID, savedRiderID string) error
}

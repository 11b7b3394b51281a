package messaging

import (
	"context"

	"github.com/openride/marketplace/internal/pkg/models"
)

// MessagingRepo defines the interface for messaging data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/openride/marketplace/services/messaging MessagingRepo
type MessagingRepo interface {
	CreateConnection(ctx context.Context, connection *models.Connection) error
	GetConnection(ctx context.Context, connectionID string) (*models.Connection, error)
	GetConnectionBetween(ctx context.Context, driverID, riderID string) (*models.Connection, error)
	UpdateConnectionStatus(ctx context.Context, connectionID string, status models.ConnectionStatus) error
	DeleteConnection(ctx context.Context, connectionID string) error
	ListConnectionsByUser(ctx context.Context, userID string) ([]*models.Connection, error)

	CreateMessage(ctx context.Context, message *models.Message) error
	ListMessagesByConversation(ctx context.Context, conversationID string) ([]*models.Message, error)
	MarkMessagesRead(ctx context.Context, conversationID, readerID string) error

	CreateNotification(ctx context.Context, notification *models.Notification) error
	ListNotificationsByUser(ctx context.Context, userID string) ([]*models.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID, userID string) error

	CreateSavedRider(ctx context.Context, savedRider *models.SavedRider) error
	ListSavedRidersByDriver(ctx context.Context, driverID string) ([]*models.SavedRider, error)
	DeleteSavedRider(ctx context.Context, driverID, savedRiderID string) error
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/openride/marketplace/internal/pkg/constants"
	"github.com/openride/marketplace/internal/pkg/logger"
	"github.com/openride/marketplace/internal/pkg/models"
	"github.com/openride/marketplace/services/messaging"
)

type messagingUC struct {
	cfg           *models.Config
	messagingRepo messaging.MessagingRepo
	messagingGW   messaging.MessagingGW
}

// NewMessagingUC creates a new messaging use case
func NewMessagingUC(
	cfg *models.Config,
	messagingRepo messaging.MessagingRepo,
	messagingGW messaging.MessagingGW,
) messaging.MessagingUC {
	return &messagingUC{
		cfg:           cfg,
		messagingRepo: messagingRepo,
		messagingGW:   messagingGW,
	}
}

func (uc *messagingUC) isParty(connection *models.Connection, userID string) bool {
	return connection.DriverID == userID || connection.RiderID == userID
}

func (uc *messagingUC) otherParty(connection *models.Connection, userID string) string {
	if connection.DriverID == userID {
		return connection.RiderID
	}
	return connection.DriverID
}

// RequestConnection opens a pending connection between a driver and a rider.
// At most one connection exists per pair.
func (uc *messagingUC) RequestConnection(ctx context.Context, driverID, riderID string) (*models.Connection, error) {
	if driverID == "" || riderID == "" {
		return nil, fmt.Errorf("driver and rider are required")
	}

	existing, err := uc.messagingRepo.GetConnectionBetween(ctx, driverID, riderID)
	if err != nil && !errors.Is(err, messaging.ErrConnectionNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, messaging.ErrConnectionExists
	}

	connection := &models.Connection{
		ID:       uuid.New().String(),
		DriverID: driverID,
		RiderID:  riderID,
		Status:   models.ConnectionStatusPending,
	}

	if err := uc.messagingRepo.CreateConnection(ctx, connection); err != nil {
		return nil, err
	}

	uc.messagingGW.PushToUser(driverID, constants.EventNotification, connection)

	logger.Info("Connection requested",
		logger.String("connection_id", connection.ID),
		logger.String("driver_id", driverID),
		logger.String("rider_id", riderID))

	return connection, nil
}

// AcceptConnection accepts a pending connection request
func (uc *messagingUC) AcceptConnection(ctx context.Context, connectionID, actorID string) (*models.Connection, error) {
	connection, err := uc.messagingRepo.GetConnection(ctx, connectionID)
	if err != nil {
		return nil, err
	}

	if !uc.isParty(connection, actorID) {
		return nil, messaging.ErrNotConnectionParty
	}

	if err := uc.messagingRepo.UpdateConnectionStatus(ctx, connectionID, models.ConnectionStatusAccepted); err != nil {
		return nil, err
	}
	connection.Status = models.ConnectionStatusAccepted

	uc.messagingGW.PushToUser(uc.otherParty(connection, actorID), constants.EventNotification, connection)

	logger.Info("Connection accepted", logger.String("connection_id", connectionID))

	return connection, nil
}

// RejectConnection declines a pending connection request
func (uc *messagingUC) RejectConnection(ctx context.Context, connectionID, actorID string) error {
	connection, err := uc.messagingRepo.GetConnection(ctx, connectionID)
	if err != nil {
		return err
	}

	if !uc.isParty(connection, actorID) {
		return messaging.ErrNotConnectionParty
	}

	if err := uc.messagingRepo.UpdateConnectionStatus(ctx, connectionID, models.ConnectionStatusRejected); err != nil {
		return err
	}

	logger.Info("Connection rejected", logger.String("connection_id", connectionID))

	return nil
}

// RemoveConnection deletes a connection outright. Either party may remove;
// the conversation history stays behind keyed by the old connection id.
func (uc *messagingUC) RemoveConnection(ctx context.Context, connectionID, actorID string) error {
	connection, err := uc.messagingRepo.GetConnection(ctx, connectionID)
	if err != nil {
		return err
	}

	if !uc.isParty(connection, actorID) {
		return messaging.ErrNotConnectionParty
	}

	if err := uc.messagingRepo.DeleteConnection(ctx, connectionID); err != nil {
		return err
	}

	logger.Info("Connection removed", logger.String("connection_id", connectionID))

	return nil
}

// ListConnections returns the connections the user participates in
func (uc *messagingUC) ListConnections(ctx context.Context, userID string) ([]*models.Connection, error) {
	return uc.messagingRepo.ListConnectionsByUser(ctx, userID)
}

// SendMessage appends a chat message to an accepted connection's conversation
// and pushes it to the recipient if they are online
func (uc *messagingUC) SendMessage(ctx context.Context, senderID string, req models.SendMessageRequest) (*models.Message, error) {
	if req.Body == "" {
		return nil, fmt.Errorf("message body is required")
	}

	connection, err := uc.messagingRepo.GetConnection(ctx, req.ConversationID)
	if err != nil {
		return nil, err
	}

	if !uc.isParty(connection, senderID) {
		return nil, messaging.ErrNotConnectionParty
	}
	if connection.Status != models.ConnectionStatusAccepted {
		return nil, messaging.ErrNotConnected
	}

	message := &models.Message{
		ID:             uuid.New().String(),
		ConversationID: req.ConversationID,
		SenderID:       senderID,
		Body:           req.Body,
	}

	if err := uc.messagingRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	uc.messagingGW.PushToUser(uc.otherParty(connection, senderID), constants.EventMessageReceived, message)

	return message, nil
}

// ListMessages returns a conversation's messages in creation order. Only a
// party to the connection may read it.
func (uc *messagingUC) ListMessages(ctx context.Context, conversationID, userID string) ([]*models.Message, error) {
	connection, err := uc.messagingRepo.GetConnection(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	if !uc.isParty(connection, userID) {
		return nil, messaging.ErrNotConnectionParty
	}

	return uc.messagingRepo.ListMessagesByConversation(ctx, conversationID)
}

// MarkMessagesRead marks the messages addressed to the caller as read
func (uc *messagingUC) MarkMessagesRead(ctx context.Context, conversationID, userID string) error {
	connection, err := uc.messagingRepo.GetConnection(ctx, conversationID)
	if err != nil {
		return err
	}

	if !uc.isParty(connection, userID) {
		return messaging.ErrNotConnectionParty
	}

	return uc.messagingRepo.MarkMessagesRead(ctx, conversationID, userID)
}

// ListNotifications returns a user's notifications, newest first
func (uc *messagingUC) ListNotifications(ctx context.Context, userID string) ([]*models.Notification, error) {
	return uc.messagingRepo.ListNotificationsByUser(ctx, userID)
}

// MarkNotificationRead marks one of the caller's notifications as read
func (uc *messagingUC) MarkNotificationRead(ctx context.Context, notificationID, userID string) error {
	return uc.messagingRepo.MarkNotificationRead(ctx, notificationID, userID)
}

// NotifyRideEvent writes a notification row per involved party and pushes the
// event to connected clients. Storage failures for one recipient do not stop
// delivery to the others.
func (uc *messagingUC) NotifyRideEvent(ctx context.Context, eventType string, event models.RideEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode ride event: %w", err)
	}

	recipients := make([]string, 0, 3)
	if event.DriverID != "" {
		recipients = append(recipients, event.DriverID)
	}
	if event.PreviousDriverID != "" && event.PreviousDriverID != event.DriverID {
		recipients = append(recipients, event.PreviousDriverID)
	}
	if event.RiderID != "" {
		recipients = append(recipients, event.RiderID)
	}

	var lastErr error
	for _, userID := range recipients {
		notification := &models.Notification{
			ID:      uuid.New().String(),
			UserID:  userID,
			Type:    eventType,
			Payload: string(payload),
		}

		if err := uc.messagingRepo.CreateNotification(ctx, notification); err != nil {
			logger.Warn("Failed to store ride notification",
				logger.String("user_id", userID),
				logger.String("type", eventType),
				logger.Err(err))
			lastErr = err
			continue
		}

		uc.messagingGW.PushToUser(userID, constants.EventNotification, notification)
	}

	return lastErr
}

// SaveRider bookmarks a rider for the driver
func (uc *messagingUC) SaveRider(ctx context.Context, driverID, riderID, nickname string) (*models.SavedRider, error) {
	if riderID == "" {
		return nil, fmt.Errorf("rider is required")
	}

	savedRider := &models.SavedRider{
		ID:       uuid.New().String(),
		DriverID: driverID,
		RiderID:  riderID,
		Nickname: nickname,
	}

	if err := uc.messagingRepo.CreateSavedRider(ctx, savedRider); err != nil {
		return nil, err
	}

	return savedRider, nil
}

// ListSavedRiders returns the driver's saved riders
func (uc *messagingUC) ListSavedRiders(ctx context.Context, driverID string) ([]*models.SavedRider, error) {
	return uc.messagingRepo.ListSavedRidersByDriver(ctx, driverID)
}

// RemoveSavedRider deletes one of the driver's saved rider entries
func (uc *messagingUC) RemoveSavedRider(ctx context.Context, driverID, savedRiderID string) error {
	return uc.messagingRepo.DeleteSavedRider(ctx, driverID, savedRiderID)
}

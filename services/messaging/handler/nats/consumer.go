package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/openride/marketplace/internal/pkg/constants"
	"github.com/openride/marketplace/internal/pkg/logger"
	"github.com/openride/marketplace/internal/pkg/models"
	natspkg "github.com/openride/marketplace/internal/pkg/nats"
	"github.com/openride/marketplace/services/messaging"
)

// RideEventConsumer turns ride lifecycle events into notifications
type RideEventConsumer struct {
	natsClient  *natspkg.Client
	messagingUC messaging.MessagingUC
}

// NewRideEventConsumer creates a new ride event consumer
func NewRideEventConsumer(natsClient *natspkg.Client, messagingUC messaging.MessagingUC) *RideEventConsumer {
	return &RideEventConsumer{
		natsClient:  natsClient,
		messagingUC: messagingUC,
	}
}

// InitConsumers subscribes to every ride lifecycle subject
func (c *RideEventConsumer) InitConsumers() error {
	subjects := []string{
		constants.SubjectRideCreated,
		constants.SubjectRideAssigned,
		constants.SubjectRideTransferred,
		constants.SubjectRideCompleted,
		constants.SubjectRideCancelled,
	}

	for _, subject := range subjects {
		if _, err := c.natsClient.Subscribe(subject, c.handleRideEvent); err != nil {
			return err
		}
	}

	return nil
}

// handleRideEvent fans a ride event out to notifications. Delivery is at
// most once; a failed event is logged and dropped.
func (c *RideEventConsumer) handleRideEvent(msg *nats.Msg) {
	var event models.RideEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to decode ride event",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return
	}

	if err := c.messagingUC.NotifyRideEvent(context.Background(), msg.Subject, event); err != nil {
		logger.Warn("Failed to deliver ride event notifications",
			logger.String("subject", msg.Subject),
			logger.String("ride_id", event.RideID),
			logger.Err(err))
	}
}

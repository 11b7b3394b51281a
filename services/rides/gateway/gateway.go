package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/openride/marketplace/internal/pkg/constants"
	"github.com/openride/marketplace/internal/pkg/models"
	natspkg "github.com/openride/marketplace/internal/pkg/nats"
	nsqpkg "github.com/openride/marketplace/internal/pkg/nsq"
)

// RideGW implements rides.RideGW over NATS for lifecycle events and NSQ for
// the webhook queue
type RideGW struct {
	cfg      *models.Config
	natsC    *natspkg.Client
	producer *nsqpkg.Producer
}

// NewRideGW creates a new ride gateway
func NewRideGW(cfg *models.Config, natsC *natspkg.Client, producer *nsqpkg.Producer) *RideGW {
	return &RideGW{
		cfg:      cfg,
		natsC:    natsC,
		producer: producer,
	}
}

func (g *RideGW) publishEvent(subject string, ride *models.Ride) error {
	event := models.RideEvent{
		RideID:           ride.ID,
		Status:           ride.Status,
		DriverID:         ride.DriverID,
		PreviousDriverID: ride.PreviousDriverID,
		RiderID:          ride.RiderID,
		RiderName:        ride.RiderName,
		LocationID:       ride.LocationID,
		Timestamp:        time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal ride event: %w", err)
	}

	if err := g.natsC.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish ride event: %w", err)
	}

	return nil
}

// PublishRideCreated publishes a ride created event
func (g *RideGW) PublishRideCreated(ctx context.Context, ride *models.Ride) error {
	return g.publishEvent(constants.SubjectRideCreated, ride)
}

// PublishRideAssigned publishes a ride assigned event
func (g *RideGW) PublishRideAssigned(ctx context.Context, ride *models.Ride) error {
	return g.publishEvent(constants.SubjectRideAssigned, ride)
}

// PublishRideTransferred publishes a ride transferred event
func (g *RideGW) PublishRideTransferred(ctx context.Context, ride *models.Ride) error {
	return g.publishEvent(constants.SubjectRideTransferred, ride)
}

// PublishRideCompleted publishes a ride completed event
func (g *RideGW) PublishRideCompleted(ctx context.Context, ride *models.Ride) error {
	return g.publishEvent(constants.SubjectRideCompleted, ride)
}

// PublishRideCancelled publishes a ride cancelled event
func (g *RideGW) PublishRideCancelled(ctx context.Context, ride *models.Ride) error {
	return g.publishEvent(constants.SubjectRideCancelled, ride)
}

// EnqueueRideRequestWebhook queues the new-ride payload for the webhook
// dispatcher. No-op when no endpoint is configured.
func (g *RideGW) EnqueueRideRequestWebhook(ride *models.Ride) error {
	if g.cfg.Webhook.RideRequestURL == "" {
		return nil
	}

	job := models.WebhookJob{
		URL: g.cfg.Webhook.RideRequestURL,
		Payload: models.WebhookPayload{
			Type:      constants.WebhookTypeRideRequest,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"id":         ride.ID,
				"name":       ride.RiderName,
				"phone":      ride.RiderPhone,
				"pickup":     ride.Pickup,
				"dropoff":    ride.Dropoff,
				"locationId": ride.LocationID,
				"status":     ride.Status,
				"driverId":   ride.DriverID,
			},
		},
	}

	return g.producer.Publish(constants.TopicWebhookOutbound, job)
}

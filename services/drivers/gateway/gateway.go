package gateway

import (
	"time"

	"github.com/openride/marketplace/internal/pkg/constants"
	"github.com/openride/marketplace/internal/pkg/models"
	nsqpkg "github.com/openride/marketplace/internal/pkg/nsq"
)

// DriverGW implements drivers.DriverGW over the NSQ webhook queue
type DriverGW struct {
	cfg      *models.Config
	producer *nsqpkg.Producer
}

// NewDriverGW creates a new driver gateway
func NewDriverGW(cfg *models.Config, producer *nsqpkg.Producer) *DriverGW {
	return &DriverGW{
		cfg:      cfg,
		producer: producer,
	}
}

// EnqueueRegistrationWebhook queues the driver-registration payload for the
// webhook dispatcher. No-op when no endpoint is configured.
func (g *DriverGW) EnqueueRegistrationWebhook(driver *models.Driver) error {
	if g.cfg.Webhook.DriverRegistrationURL == "" {
		return nil
	}

	job := models.WebhookJob{
		URL: g.cfg.Webhook.DriverRegistrationURL,
		Payload: models.WebhookPayload{
			Type:      constants.WebhookTypeDriverRegistration,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"id":         driver.ID,
				"name":       driver.Name,
				"phone":      driver.Phone,
				"email":      driver.Email,
				"locationId": driver.LocationID,
				"vehicle":    driver.Vehicle,
			},
		},
	}

	return g.producer.Publish(constants.TopicWebhookOutbound, job)
}

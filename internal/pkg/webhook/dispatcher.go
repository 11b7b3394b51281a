package webhook

import (
	"context"
	"time"

	httppkg "github.com/openride/marketplace/internal/pkg/http"
	"github.com/openride/marketplace/internal/pkg/logger"
	"github.com/openride/marketplace/internal/pkg/metrics"
	"github.com/openride/marketplace/internal/pkg/models"
	nsqpkg "github.com/openride/marketplace/internal/pkg/nsq"
)

// Dispatcher drains the outbound webhook queue and POSTs each payload to its
// target. Delivery is at most once: a failed POST is logged and counted, not
// retried.
type Dispatcher struct {
	cfg    *models.Config
	client *httppkg.Client
}

// NewDispatcher creates a new webhook dispatcher
func NewDispatcher(cfg *models.Config) *Dispatcher {
	return &Dispatcher{
		cfg:    cfg,
		client: httppkg.NewClient(time.Duration(cfg.Webhook.TimeoutSeconds) * time.Second),
	}
}

// HandleJob delivers a single queued webhook job. Used as the NSQ message
// handler.
func (d *Dispatcher) HandleJob(messageBody []byte) error {
	var job models.WebhookJob
	if err := nsqpkg.UnmarshalMessage(messageBody, &job); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(d.cfg.Webhook.TimeoutSeconds)*time.Second)
	defer cancel()

	if err := d.client.PostJSON(ctx, job.URL, job.Payload); err != nil {
		metrics.WebhookDispatchTotal.WithLabelValues(job.Payload.Type, "failure").Inc()
		logger.Warn("Webhook delivery failed",
			logger.String("type", job.Payload.Type),
			logger.String("url", job.URL),
			logger.Err(err))
		return err
	}

	metrics.WebhookDispatchTotal.WithLabelValues(job.Payload.Type, "success").Inc()
	return nil
}

package models

import (
	"time"
)

// RideEvent is published on NATS for every ride lifecycle change and
// consumed by the notification emitter.
type RideEvent struct {
	RideID           string     `json:"ride_id"`
	Status           RideStatus `json:"status"`
	DriverID         string     `json:"driver_id,omitempty"`
	PreviousDriverID string     `json:"previous_driver_id,omitempty"`
	RiderID          string     `json:"rider_id,omitempty"`
	RiderName        string     `json:"rider_name,omitempty"`
	LocationID       string     `json:"location_id,omitempty"`
	Timestamp        time.Time  `json:"timestamp"`
}

// WebhookPayload is the body POSTed to the external automation endpoints.
// Entity fields are flattened into Data; Type and Timestamp ride alongside,
// matching the wire contract of the original submission hooks.
type WebhookPayload struct {
	Type      string                 `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// WebhookJob is the NSQ message carrying a webhook payload to the dispatcher
type WebhookJob struct {
	URL     string         `json:"url"`
	Payload WebhookPayload `json:"payload"`
}

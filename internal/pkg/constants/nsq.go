package constants

// NSQ topics
const (
	// TopicWebhookOutbound carries webhook payloads to the dispatcher.
	TopicWebhookOutbound = "webhook.outbound"
)

// Webhook payload types
const (
	WebhookTypeRideRequest        = "ride_request"
	WebhookTypeDriverRegistration = "driver_registration"
)

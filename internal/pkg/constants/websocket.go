package constants

// WebSocket event names pushed to connected clients
const (
	EventMessageReceived = "message.received"
	EventNotification    = "notification"
	EventError           = "error"
)

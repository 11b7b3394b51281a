package messaging

// MessagingGW defines the interface for pushing events to connected clients
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/openride/marketplace/services/messaging MessagingGW
type MessagingGW interface {
	// PushToUser delivers an event to the user's websocket if connected;
	// offline users are skipped silently.
	PushToUser(userID, event string, data interface{})
}

package gateway

import (
	"github.com/openride/marketplace/internal/pkg/models"
	wspkg "github.com/openride/marketplace/internal/pkg/websocket"
)

// MessagingGW implements messaging.MessagingGW over the websocket manager
type MessagingGW struct {
	cfg     *models.Config
	manager *wspkg.Manager
}

// NewMessagingGW creates a new messaging gateway
func NewMessagingGW(cfg *models.Config, manager *wspkg.Manager) *MessagingGW {
	return &MessagingGW{
		cfg:     cfg,
		manager: manager,
	}
}

// PushToUser delivers an event to the user's websocket if connected
func (g *MessagingGW) PushToUser(userID, event string, data interface{}) {
	g.manager.NotifyClient(userID, event, data)
}

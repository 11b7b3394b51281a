package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/openride/marketplace/internal/pkg/middleware"
	"github.com/openride/marketplace/internal/pkg/models"
	wspkg "github.com/openride/marketplace/internal/pkg/websocket"
	"github.com/openride/marketplace/services/messaging"
	httpHandler "github.com/openride/marketplace/services/messaging/handler/http"
	wsHandler "github.com/openride/marketplace/services/messaging/handler/websocket"
)

// Handler combines all handlers for the messaging service
type Handler struct {
	messagingHTTP *httpHandler.MessagingHandler
	messagingWS   *wsHandler.WebSocketHandler
	cfg           *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(messagingUC messaging.MessagingUC, manager *wspkg.Manager, cfg *models.Config) *Handler {
	return &Handler{
		messagingHTTP: httpHandler.NewMessagingHandler(messagingUC),
		messagingWS:   wsHandler.NewWebSocketHandler(manager, messagingUC),
		cfg:           cfg,
	}
}

// RegisterRoutes registers all HTTP and websocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// The socket authenticates itself from the Authorization header
	e.GET("/ws", h.messagingWS.HandleConnection)

	connections := e.Group("/connections", middleware.JWTAuthMiddleware(h.cfg.JWT))
	connections.POST("", h.messagingHTTP.RequestConnection)
	connections.GET("", h.messagingHTTP.ListConnections)
	connections.POST("/:connectionID/accept", h.messagingHTTP.AcceptConnection)
	connections.POST("/:connectionID/reject", h.messagingHTTP.RejectConnection)
	connections.DELETE("/:connectionID", h.messagingHTTP.RemoveConnection)

	messages := e.Group("/messages", middleware.JWTAuthMiddleware(h.cfg.JWT))
	messages.POST("", h.messagingHTTP.SendMessage)
	messages.GET("/:conversationID", h.messagingHTTP.ListMessages)
	messages.PUT("/:conversationID/read", h.messagingHTTP.MarkMessagesRead)

	notifications := e.Group("/notifications", middleware.JWTAuthMiddleware(h.cfg.JWT))
	notifications.GET("", h.messagingHTTP.ListNotifications)
	notifications.PUT("/:notificationID/read", h.messagingHTTP.MarkNotificationRead)

	savedRiders := e.Group("/saved-riders", middleware.JWTAuthMiddleware(h.cfg.JWT))
	savedRiders.POST("", h.messagingHTTP.SaveRider)
	savedRiders.GET("", h.messagingHTTP.ListSavedRiders)
	savedRiders.DELETE("/:savedRiderID", h.messagingHTTP.RemoveSavedRider)
}

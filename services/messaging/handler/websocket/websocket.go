package websocket

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/openride/marketplace/internal/pkg/constants"
	"github.com/openride/marketplace/internal/pkg/logger"
	"github.com/openride/marketplace/internal/pkg/models"
	wspkg "github.com/openride/marketplace/internal/pkg/websocket"
	"github.com/openride/marketplace/services/messaging"
)

// EventSendMessage is the inbound event for posting a chat message over the
// socket
const EventSendMessage = "message.send"

// WebSocketHandler serves the realtime messaging socket. Outbound pushes go
// through the shared manager; this handler owns the inbound read loop.
type WebSocketHandler struct {
	manager     *wspkg.Manager
	messagingUC messaging.MessagingUC
}

// NewWebSocketHandler creates a new websocket handler
func NewWebSocketHandler(manager *wspkg.Manager, messagingUC messaging.MessagingUC) *WebSocketHandler {
	return &WebSocketHandler{
		manager:     manager,
		messagingUC: messagingUC,
	}
}

// HandleConnection upgrades the request and runs the client read loop
func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

func (h *WebSocketHandler) handleClient(client *wspkg.Client) error {
	logger.Info("WebSocket client connected",
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	for {
		var msg wspkg.Message
		if err := client.Conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read error",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			return nil
		}

		if err := h.handleEvent(client, msg); err != nil {
			if sendErr := h.manager.SendErrorMessage(client.Conn, msg.Event, err.Error()); sendErr != nil {
				return nil
			}
		}
	}
}

func (h *WebSocketHandler) handleEvent(client *wspkg.Client, msg wspkg.Message) error {
	switch msg.Event {
	case EventSendMessage:
		var req models.SendMessageRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			return err
		}

		message, err := h.messagingUC.SendMessage(context.Background(), client.UserID, req)
		if err != nil {
			return err
		}

		// Echo the stored message back so the sender sees the server ids
		return h.manager.SendMessage(client.Conn, constants.EventMessageReceived, message)
	default:
		return h.manager.SendErrorMessage(client.Conn, constants.EventError, "unknown event: "+msg.Event)
	}
}

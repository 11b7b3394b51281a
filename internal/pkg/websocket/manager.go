package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/openride/marketplace/internal/pkg/jwt"
	"github.com/openride/marketplace/internal/pkg/logger"
	"github.com/openride/marketplace/internal/pkg/models"
)

// Client is a connected websocket user
type Client struct {
	UserID string
	Role   string
	Conn   *websocket.Conn
}

// Message is the envelope pushed to clients
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// ErrorMessage is the error envelope pushed to clients
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Manager manages websocket connections and client state
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new websocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*Client),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and upgrades a new websocket connection,
// then delegates to handleClient for the connection lifetime.
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client.Conn = ws
	m.AddClient(client)
	defer m.RemoveClient(client.UserID)

	return handleClient(client)
}

func (m *Manager) authenticateClient(c echo.Context) (*Client, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := jwtpkg.ValidateToken(parts[1], m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	userID, _ := (*claims)["user_id"].(string)
	role, _ := (*claims)["role"].(string)
	if userID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token: missing user_id claim")
	}

	return &Client{UserID: userID, Role: role}, nil
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.UserID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(userID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, userID)
}

// GetClient returns a client by ID
func (m *Manager) GetClient(userID string) (*Client, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[userID]
	return client, exists
}

// SendMessage sends an event to a websocket connection
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	return conn.WriteJSON(Message{
		Event: event,
		Data:  rawData,
	})
}

// SendErrorMessage sends an error envelope to a websocket connection
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	raw, err := json.Marshal(ErrorMessage{Code: code, Message: message})
	if err != nil {
		return err
	}
	return conn.WriteJSON(Message{Event: "error", Data: raw})
}

// NotifyClient pushes an event to a connected user; no-op when offline
func (m *Manager) NotifyClient(userID string, event string, data interface{}) {
	m.RLock()
	client, exists := m.clients[userID]
	m.RUnlock()

	if !exists {
		return
	}

	if err := m.SendMessage(client.Conn, event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("user_id", userID),
			logger.Err(err))
	}
}

package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/openride/marketplace/internal/pkg/middleware"
	"github.com/openride/marketplace/internal/pkg/models"
	nrpkg "github.com/openride/marketplace/internal/pkg/newrelic"
	"github.com/openride/marketplace/internal/utils"
	"github.com/openride/marketplace/services/messaging"
)

// MessagingHandler handles HTTP requests for connections, chat and
// notifications
type MessagingHandler struct {
	messagingUC messaging.MessagingUC
}

// NewMessagingHandler creates a new messaging HTTP handler
func NewMessagingHandler(messagingUC messaging.MessagingUC) *MessagingHandler {
	return &MessagingHandler{
		messagingUC: messagingUC,
	}
}

func messagingErrorResponse(c echo.Context, txn *newrelic.Transaction, err error, fallback string) error {
	switch {
	case errors.Is(err, messaging.ErrConnectionNotFound):
		return utils.NotFoundResponse(c, "Connection not found")
	case errors.Is(err, messaging.ErrNotificationNotFound):
		return utils.NotFoundResponse(c, "Notification not found")
	case errors.Is(err, messaging.ErrSavedRiderNotFound):
		return utils.NotFoundResponse(c, "Saved rider not found")
	case errors.Is(err, messaging.ErrNotConnectionParty):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, messaging.ErrNotConnected):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, messaging.ErrConnectionExists), errors.Is(err, messaging.ErrSavedRiderExists):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, messaging.ErrConnectionClosed):
		return utils.ConflictResponse(c, err.Error())
	}

	nrpkg.NoticeTransactionError(txn, err)
	return utils.InternalServerErrorResponse(c, fallback)
}

// connectionRequest is the body for opening a connection. The caller's side
// of the pair comes from the token; only the counterpart is read from the
// body.
type connectionRequest struct {
	DriverID string `json:"driverId"`
	RiderID  string `json:"riderId"`
}

// RequestConnection opens a connection between the caller and a counterpart
func (h *MessagingHandler) RequestConnection(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Messaging.RequestConnection")

	principal := middleware.PrincipalID(c)
	if principal == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req connectionRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	driverID, riderID := req.DriverID, req.RiderID
	if middleware.PrincipalRole(c) == "driver" {
		driverID = principal
	} else {
		riderID = principal
	}

	connection, err := h.messagingUC.RequestConnection(c.Request().Context(), driverID, riderID)
	if err != nil {
		return messagingErrorResponse(c, txn, err, "Failed to request connection")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Connection requested", connection)
}

// AcceptConnection accepts a pending connection request
func (h *MessagingHandler) AcceptConnection(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Messaging.AcceptConnection")

	actorID := middleware.PrincipalID(c)
	if actorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	connection, err := h.messagingUC.AcceptConnection(c.Request().Context(), c.Param("connectionID"), actorID)
	if err != nil {
		return messagingErrorResponse(c, txn, err, "Failed to accept connection")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Connection accepted", connection)
}

// RejectConnection declines a pending connection request
func (h *MessagingHandler) RejectConnection(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Messaging.RejectConnection")

	actorID := middleware.PrincipalID(c)
	if actorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.messagingUC.RejectConnection(c.Request().Context(), c.Param("connectionID"), actorID); err != nil {
		return messagingErrorResponse(c, txn, err, "Failed to reject connection")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Connection rejected", nil)
}

// RemoveConnection deletes a connection
func (h *MessagingHandler) RemoveConnection(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Messaging.RemoveConnection")

	actorID := middleware.PrincipalID(c)
	if actorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.messagingUC.RemoveConnection(c.Request().Context(), c.Param("connectionID"), actorID); err != nil {
		return messagingErrorResponse(c, txn, err, "Failed to remove connection")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Connection removed", nil)
}

// ListConnections returns the caller's connections
func (h *MessagingHandler) ListConnections(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Messaging.ListConnections")

	userID := middleware.PrincipalID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.messagingUC.ListConnections(c.Request().Context(), userID)
	if err != nil {
		return messagingErrorResponse(c, txn, err, "Failed to list connections")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Connections retrieved", result)
}

// SendMessage posts a chat message to a conversation
func (h *MessagingHandler) SendMessage(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Messaging.SendMessage")

	senderID := middleware.PrincipalID(c)
	if senderID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	message, err := h.messagingUC.SendMessage(c.Request().Context(), senderID, req)
	if err != nil {
		return messagingErrorResponse(c, txn, err, "Failed to send message")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Message sent", message)
}

// ListMessages returns a conversation's messages in creation order
func (h *MessagingHandler) ListMessages(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Messaging.ListMessages")

	userID := middleware.PrincipalID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.messagingUC.ListMessages(c.Request().Context(), c.Param("conversationID"), userID)
	if err != nil {
		return messagingErrorResponse(c, txn, err, "Failed to list messages")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Messages retrieved", result)
}

// MarkMessagesRead marks the messages addressed to the caller as read
func (h *MessagingHandler) MarkMessagesRead(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Messaging.MarkMessagesRead")

	userID := middleware.PrincipalID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.messagingUC.MarkMessagesRead(c.Request().Context(), c.Param("conversationID"), userID); err != nil {
		return messagingErrorResponse(c, txn, err, "Failed to mark messages read")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Messages marked read", nil)
}

// ListNotifications returns the caller's notifications
func (h *MessagingHandler) ListNotifications(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Messaging.ListNotifications")

	userID := middleware.PrincipalID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.messagingUC.ListNotifications(c.Request().Context(), userID)
	if err != nil {
		return messagingErrorResponse(c, txn, err, "Failed to list notifications")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notifications retrieved", result)
}

// MarkNotificationRead marks one of the caller's notifications as read
func (h *MessagingHandler) MarkNotificationRead(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Messaging.MarkNotificationRead")

	userID := middleware.PrincipalID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.messagingUC.MarkNotificationRead(c.Request().Context(), c.Param("notificationID"), userID); err != nil {
		return messagingErrorResponse(c, txn, err, "Failed to mark notification read")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notification marked read", nil)
}

// saveRiderRequest is the body for bookmarking a rider
type saveRiderRequest struct {
	RiderID  string `json:"riderId"`
	Nickname string `json:"nickname"`
}

// SaveRider bookmarks a rider for the calling driver
func (h *MessagingHandler) SaveRider(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Messaging.SaveRider")

	driverID := middleware.PrincipalID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req saveRiderRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	savedRider, err := h.messagingUC.SaveRider(c.Request().Context(), driverID, req.RiderID, req.Nickname)
	if err != nil {
		return messagingErrorResponse(c, txn, err, "Failed to save rider")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Rider saved", savedRider)
}

// ListSavedRiders returns the calling driver's saved riders
func (h *MessagingHandler) ListSavedRiders(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Messaging.ListSavedRiders")

	driverID := middleware.PrincipalID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.messagingUC.ListSavedRiders(c.Request().Context(), driverID)
	if err != nil {
		return messagingErrorResponse(c, txn, err, "Failed to list saved riders")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Saved riders retrieved", result)
}

// RemoveSavedRider deletes one of the calling driver's saved riders
func (h *MessagingHandler) RemoveSavedRider(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Messaging.RemoveSavedRider")

	driverID := middleware.PrincipalID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.messagingUC.RemoveSavedRider(c.Request().Context(), driverID, c.Param("savedRiderID")); err != nil {
		return messagingErrorResponse(c, txn, err, "Failed to remove saved rider")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Saved rider removed", nil)
}

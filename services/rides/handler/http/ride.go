package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/openride/marketplace/internal/pkg/logger"
	"github.com/openride/marketplace/internal/pkg/middleware"
	"github.com/openride/marketplace/internal/pkg/models"
	nrpkg "github.com/openride/marketplace/internal/pkg/newrelic"
	"github.com/openride/marketplace/internal/utils"
	"github.com/openride/marketplace/services/rides"
)

// RidesHandler handles HTTP requests for ride operations
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{
		rideUC: rideUC,
	}
}

// rideErrorResponse maps the ride sentinel errors to HTTP responses. Errors
// outside the set are reported to the transaction and come back as 500.
func rideErrorResponse(c echo.Context, txn *newrelic.Transaction, err error, fallback string) error {
	switch {
	case errors.Is(err, rides.ErrRideNotFound):
		return utils.NotFoundResponse(c, "Ride not found")
	case errors.Is(err, rides.ErrTransferNotFound):
		return utils.NotFoundResponse(c, "Transfer request not found")
	case errors.Is(err, rides.ErrScheduledRideNotFound):
		return utils.NotFoundResponse(c, "Scheduled ride not found")
	case errors.Is(err, rides.ErrNotRideOwner), errors.Is(err, rides.ErrNotTransferTarget):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, rides.ErrInvalidTransition), errors.Is(err, rides.ErrDriverUnavailable):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, rides.ErrRideConflict), errors.Is(err, rides.ErrTransferClosed):
		return utils.ConflictResponse(c, err.Error())
	}

	nrpkg.NoticeTransactionError(txn, err)
	return utils.InternalServerErrorResponse(c, fallback)
}

// Create books a new ride
func (h *RidesHandler) Create(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.Create")

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	// When the caller is authenticated, the rider identity comes from the
	// token rather than the payload.
	if principal := middleware.PrincipalID(c); principal != "" {
		req.RiderID = principal
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to create ride", logger.Err(err))
		return rideErrorResponse(c, txn, err, "Failed to create ride")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride created successfully", ride)
}

// Get returns a ride by id
func (h *RidesHandler) Get(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.Get")

	rideID := c.Param("rideID")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Ride ID is required")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), rideID)
	if err != nil {
		return rideErrorResponse(c, txn, err, "Failed to get ride")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved successfully", ride)
}

// ListMine returns the caller's rides
func (h *RidesHandler) ListMine(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.ListMine")

	driverID := middleware.PrincipalID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.rideUC.ListDriverRides(c.Request().Context(), driverID)
	if err != nil {
		return rideErrorResponse(c, txn, err, "Failed to list rides")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", result)
}

// Accept assigns the calling driver to a pending ride
func (h *RidesHandler) Accept(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.Accept")

	rideID := c.Param("rideID")
	driverID := middleware.PrincipalID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	ride, err := h.rideUC.AssignDriver(c.Request().Context(), rideID, driverID)
	if err != nil {
		return rideErrorResponse(c, txn, err, "Failed to accept ride")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride accepted", ride)
}

// statusRequest is the body for updating a ride's status
type statusRequest struct {
	Status models.RideStatus `json:"status"`
}

// UpdateStatus moves a ride along the lifecycle on behalf of the caller
func (h *RidesHandler) UpdateStatus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.UpdateStatus")

	rideID := c.Param("rideID")
	actorID := middleware.PrincipalID(c)
	if actorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req statusRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	ride, err := h.rideUC.UpdateRideStatus(c.Request().Context(), rideID, req.Status, actorID)
	if err != nil {
		return rideErrorResponse(c, txn, err, "Failed to update ride status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride status updated", ride)
}

// Complete marks a ride finished on behalf of its assigned driver
func (h *RidesHandler) Complete(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.Complete")

	rideID := c.Param("rideID")
	driverID := middleware.PrincipalID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	ride, err := h.rideUC.CompleteRide(c.Request().Context(), rideID, driverID)
	if err != nil {
		return rideErrorResponse(c, txn, err, "Failed to complete ride")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride completed", ride)
}

// transferRequest is the body for a direct ride transfer
type transferRequest struct {
	ToDriverID string `json:"toDriverId"`
}

// Transfer hands the ride straight to another driver
func (h *RidesHandler) Transfer(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.Transfer")

	rideID := c.Param("rideID")
	driverID := middleware.PrincipalID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req transferRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.ToDriverID == "" {
		return utils.BadRequestResponse(c, "Target driver is required")
	}

	ride, err := h.rideUC.TransferRide(c.Request().Context(), rideID, driverID, req.ToDriverID)
	if err != nil {
		return rideErrorResponse(c, txn, err, "Failed to transfer ride")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride transferred", ride)
}

// CreateTransfer opens a transfer handshake with another driver
func (h *RidesHandler) CreateTransfer(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.CreateTransfer")

	driverID := middleware.PrincipalID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateTransferRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	transfer, err := h.rideUC.CreateTransferRequest(c.Request().Context(), driverID, req)
	if err != nil {
		return rideErrorResponse(c, txn, err, "Failed to create transfer request")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transfer request created", transfer)
}

// AcceptTransfer completes a transfer handshake as the target driver
func (h *RidesHandler) AcceptTransfer(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.AcceptTransfer")

	transferID := c.Param("transferID")
	driverID := middleware.PrincipalID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	ride, err := h.rideUC.AcceptTransferRequest(c.Request().Context(), transferID, driverID)
	if err != nil {
		return rideErrorResponse(c, txn, err, "Failed to accept transfer request")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transfer request accepted", ride)
}

// RejectTransfer declines a transfer handshake as the target driver
func (h *RidesHandler) RejectTransfer(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.RejectTransfer")

	transferID := c.Param("transferID")
	driverID := middleware.PrincipalID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.rideUC.RejectTransferRequest(c.Request().Context(), transferID, driverID); err != nil {
		return rideErrorResponse(c, txn, err, "Failed to reject transfer request")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transfer request rejected", nil)
}

// CreateScheduled books a ride for a future departure
func (h *RidesHandler) CreateScheduled(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.CreateScheduled")

	var ride models.ScheduledRide
	if err := c.Bind(&ride); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if principal := middleware.PrincipalID(c); principal != "" {
		ride.RiderID = principal
	}

	created, err := h.rideUC.CreateScheduledRide(c.Request().Context(), &ride)
	if err != nil {
		logger.Error("Failed to create scheduled ride", logger.Err(err))
		return rideErrorResponse(c, txn, err, "Failed to create scheduled ride")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Scheduled ride created", created)
}

// ListScheduled returns the caller's scheduled rides
func (h *RidesHandler) ListScheduled(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.ListScheduled")

	driverID := middleware.PrincipalID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.rideUC.ListScheduledRides(c.Request().Context(), driverID)
	if err != nil {
		return rideErrorResponse(c, txn, err, "Failed to list scheduled rides")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Scheduled rides retrieved", result)
}

// CancelScheduled removes a scheduled ride
func (h *RidesHandler) CancelScheduled(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.CancelScheduled")

	scheduledRideID := c.Param("scheduledRideID")
	actorID := middleware.PrincipalID(c)
	if actorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.rideUC.CancelScheduledRide(c.Request().Context(), scheduledRideID, actorID); err != nil {
		return rideErrorResponse(c, txn, err, "Failed to cancel scheduled ride")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Scheduled ride cancelled", nil)
}

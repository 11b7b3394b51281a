package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/openride/marketplace/internal/pkg/logger"
	"github.com/openride/marketplace/internal/pkg/middleware"
	"github.com/openride/marketplace/internal/pkg/models"
	nrpkg "github.com/openride/marketplace/internal/pkg/newrelic"
	"github.com/openride/marketplace/internal/utils"
	"github.com/openride/marketplace/services/drivers"
)

// DriversHandler handles HTTP requests for driver operations
type DriversHandler struct {
	driverUC drivers.DriverUC
}

// NewDriversHandler creates a new driver HTTP handler
func NewDriversHandler(driverUC drivers.DriverUC) *DriversHandler {
	return &DriversHandler{
		driverUC: driverUC,
	}
}

// Register handles driver onboarding
func (h *DriversHandler) Register(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.Register")

	var req models.DriverRegistrationRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	driver, err := h.driverUC.RegisterDriver(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to register driver", logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Failed to register driver: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Driver registered successfully", driver)
}

// GetDriver returns a driver by id
func (h *DriversHandler) GetDriver(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.GetDriver")

	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	driver, err := h.driverUC.GetDriver(c.Request().Context(), driverID)
	if err != nil {
		if errors.Is(err, drivers.ErrDriverNotFound) {
			return utils.NotFoundResponse(c, "Driver not found")
		}
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to get driver")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver retrieved successfully", driver)
}

// Approve marks a driver active (admin only)
func (h *DriversHandler) Approve(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.Approve")

	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	if err := h.driverUC.ApproveDriver(c.Request().Context(), driverID); err != nil {
		if errors.Is(err, drivers.ErrDriverNotFound) {
			return utils.NotFoundResponse(c, "Driver not found")
		}
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to approve driver")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver approved successfully", nil)
}

// availabilityRequest is the body for toggling availability
type availabilityRequest struct {
	Available bool `json:"available"`
}

// SetAvailability toggles the caller's availability flag. The driver id
// comes from the authenticated principal, not the URL.
func (h *DriversHandler) SetAvailability(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.SetAvailability")

	driverID := middleware.PrincipalID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req availabilityRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.driverUC.SetAvailability(c.Request().Context(), driverID, req.Available); err != nil {
		switch {
		case errors.Is(err, drivers.ErrDriverNotFound):
			return utils.NotFoundResponse(c, "Driver not found")
		case errors.Is(err, drivers.ErrDriverInactive):
			return utils.ForbiddenResponse(c, "Driver is not active yet")
		default:
			nrpkg.NoticeTransactionError(txn, err)
			return utils.InternalServerErrorResponse(c, "Failed to update availability")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", nil)
}

// UpdatePosition records the caller's current coordinate
func (h *DriversHandler) UpdatePosition(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.UpdatePosition")

	var position models.DriverPosition
	if err := c.Bind(&position); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	position.DriverID = middleware.PrincipalID(c)
	if position.DriverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.driverUC.UpdatePosition(c.Request().Context(), position); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to update position")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Position updated", nil)
}

// ListAvailable returns available drivers, optionally filtered by location,
// sorted by rating descending.
func (h *DriversHandler) ListAvailable(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.ListAvailable")

	locationID := c.QueryParam("locationId")

	result, err := h.driverUC.ListAvailableDrivers(c.Request().Context(), locationID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to list available drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Available drivers retrieved", result)
}

// Nearby returns drivers with reported positions near a coordinate
func (h *DriversHandler) Nearby(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.Nearby")

	latitude, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	longitude, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}
	radiusKm := 5.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		if radiusKm, err = strconv.ParseFloat(raw, 64); err != nil {
			return utils.BadRequestResponse(c, "Invalid radius")
		}
	}

	positions, err := h.driverUC.NearbyDrivers(c.Request().Context(), latitude, longitude, radiusKm)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to query nearby drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers retrieved", positions)
}

package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/openride/marketplace/internal/pkg/middleware"
	"github.com/openride/marketplace/internal/pkg/models"
	"github.com/openride/marketplace/services/drivers"
	httpHandler "github.com/openride/marketplace/services/drivers/handler/http"
)

// Handler combines all handlers for the drivers service
type Handler struct {
	driversHTTP *httpHandler.DriversHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(driverUC drivers.DriverUC, cfg *models.Config) *Handler {
	return &Handler{
		driversHTTP: httpHandler.NewDriversHandler(driverUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes
	e.POST("/drivers/register", h.driversHTTP.Register)
	e.GET("/drivers/available", h.driversHTTP.ListAvailable)

	// Authenticated routes
	auth := e.Group("/drivers", middleware.JWTAuthMiddleware(h.cfg.JWT))
	auth.GET("/nearby", h.driversHTTP.Nearby)
	auth.GET("/:driverID", h.driversHTTP.GetDriver)
	auth.PUT("/availability", h.driversHTTP.SetAvailability)
	auth.PUT("/position", h.driversHTTP.UpdatePosition)

	// Admin routes
	admin := e.Group("/admin/drivers",
		middleware.JWTAuthMiddleware(h.cfg.JWT),
		middleware.AdminOnlyMiddleware())
	admin.POST("/:driverID/approve", h.driversHTTP.Approve)
}

package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/openride/marketplace/internal/pkg/middleware"
	"github.com/openride/marketplace/internal/pkg/models"
	"github.com/openride/marketplace/services/rides"
	httpHandler "github.com/openride/marketplace/services/rides/handler/http"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP *httpHandler.RidesHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(rideUC rides.RideUC, cfg *models.Config) *Handler {
	return &Handler{
		ridesHTTP: httpHandler.NewRidesHandler(rideUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Ride booking is open to unauthenticated riders
	e.POST("/rides", h.ridesHTTP.Create)
	e.POST("/rides/scheduled", h.ridesHTTP.CreateScheduled)

	auth := e.Group("/rides", middleware.JWTAuthMiddleware(h.cfg.JWT))
	auth.GET("/mine", h.ridesHTTP.ListMine)
	auth.GET("/scheduled", h.ridesHTTP.ListScheduled)
	auth.DELETE("/scheduled/:scheduledRideID", h.ridesHTTP.CancelScheduled)
	auth.GET("/:rideID", h.ridesHTTP.Get)
	auth.POST("/:rideID/accept", h.ridesHTTP.Accept)
	auth.PUT("/:rideID/status", h.ridesHTTP.UpdateStatus)
	auth.POST("/:rideID/complete", h.ridesHTTP.Complete)
	auth.POST("/:rideID/transfer", h.ridesHTTP.Transfer)

	transfers := e.Group("/transfers", middleware.JWTAuthMiddleware(h.cfg.JWT))
	transfers.POST("", h.ridesHTTP.CreateTransfer)
	transfers.POST("/:transferID/accept", h.ridesHTTP.AcceptTransfer)
	transfers.POST("/:transferID/reject", h.ridesHTTP.RejectTransfer)
}

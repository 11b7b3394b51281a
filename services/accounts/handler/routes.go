package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/openride/marketplace/internal/pkg/middleware"
	"github.com/openride/marketplace/internal/pkg/models"
	"github.com/openride/marketplace/services/accounts"
	httpHandler "github.com/openride/marketplace/services/accounts/handler/http"
)

// Handler combines all handlers for the accounts service
type Handler struct {
	accountsHTTP *httpHandler.AccountsHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(accountUC accounts.AccountUC, cfg *models.Config) *Handler {
	return &Handler{
		accountsHTTP: httpHandler.NewAccountsHandler(accountUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes
	e.POST("/riders/register", h.accountsHTTP.RegisterRider)
	e.POST("/auth/login", h.accountsHTTP.Login)
	e.POST("/auth/bootstrap-admin", h.accountsHTTP.BootstrapAdmin)

	auth := e.Group("/riders", middleware.JWTAuthMiddleware(h.cfg.JWT))
	auth.GET("/:riderID", h.accountsHTTP.GetRider)

	admin := e.Group("/admin/accounts",
		middleware.JWTAuthMiddleware(h.cfg.JWT),
		middleware.AdminOnlyMiddleware())
	admin.POST("/grant-admin", h.accountsHTTP.GrantAdmin)
}

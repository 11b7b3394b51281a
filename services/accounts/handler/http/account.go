package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openride/marketplace/internal/pkg/logger"
	"github.com/openride/marketplace/internal/pkg/models"
	nrpkg "github.com/openride/marketplace/internal/pkg/newrelic"
	"github.com/openride/marketplace/internal/utils"
	"github.com/openride/marketplace/services/accounts"
)

// AccountsHandler handles HTTP requests for rider accounts and auth
type AccountsHandler struct {
	accountUC accounts.AccountUC
}

// NewAccountsHandler creates a new accounts HTTP handler
func NewAccountsHandler(accountUC accounts.AccountUC) *AccountsHandler {
	return &AccountsHandler{
		accountUC: accountUC,
	}
}

// RegisterRider handles rider account creation
func (h *AccountsHandler) RegisterRider(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Accounts.RegisterRider")

	var req models.RegisterRiderRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	rider, err := h.accountUC.RegisterRider(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to register rider", logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Failed to register rider: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Rider registered successfully", rider)
}

// GetRider returns a rider by id
func (h *AccountsHandler) GetRider(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Accounts.GetRider")

	riderID := c.Param("riderID")
	if riderID == "" {
		return utils.BadRequestResponse(c, "Rider ID is required")
	}

	rider, err := h.accountUC.GetRider(c.Request().Context(), riderID)
	if err != nil {
		if errors.Is(err, accounts.ErrRiderNotFound) {
			return utils.NotFoundResponse(c, "Rider not found")
		}
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to get rider")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rider retrieved successfully", rider)
}

// Login issues a JWT for a phone and role
func (h *AccountsHandler) Login(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Accounts.Login")

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	token, err := h.accountUC.Login(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrAccountNotFound):
			return utils.UnauthorizedResponse(c, "No account matches the given phone")
		case errors.Is(err, accounts.ErrInvalidRole):
			return utils.BadRequestResponse(c, err.Error())
		default:
			nrpkg.NoticeTransactionError(txn, err)
			return utils.InternalServerErrorResponse(c, "Failed to log in")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged in", token)
}

// GrantAdmin promotes a user to admin (admin only)
func (h *AccountsHandler) GrantAdmin(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Accounts.GrantAdmin")

	var req models.GrantAdminRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.accountUC.GrantAdmin(c.Request().Context(), req); err != nil {
		switch {
		case errors.Is(err, accounts.ErrRiderNotFound):
			return utils.NotFoundResponse(c, "User not found")
		case errors.Is(err, accounts.ErrInvalidRole):
			return utils.BadRequestResponse(c, err.Error())
		default:
			nrpkg.NoticeTransactionError(txn, err)
			return utils.InternalServerErrorResponse(c, "Failed to grant admin")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Admin granted", nil)
}

// BootstrapAdmin seeds the first admin by email
func (h *AccountsHandler) BootstrapAdmin(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Accounts.BootstrapAdmin")

	var req models.BootstrapAdminRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.accountUC.BootstrapAdmin(c.Request().Context(), req.Email); err != nil {
		if errors.Is(err, accounts.ErrAccountNotFound) {
			return utils.NotFoundResponse(c, "No account matches the given email")
		}
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to bootstrap admin")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Admin bootstrapped", nil)
}

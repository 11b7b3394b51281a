package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	jwtpkg "github.com/openride/marketplace/internal/pkg/jwt"
	"github.com/openride/marketplace/internal/pkg/logger"
	"github.com/openride/marketplace/internal/pkg/models"
	"github.com/openride/marketplace/services/accounts"
	"github.com/openride/marketplace/services/drivers"
)

type accountUC struct {
	cfg        *models.Config
	riderRepo  accounts.RiderRepo
	driverRepo drivers.DriverRepo
}

// NewAccountUC creates a new account use case
func NewAccountUC(
	cfg *models.Config,
	riderRepo accounts.RiderRepo,
	driverRepo drivers.DriverRepo,
) accounts.AccountUC {
	return &accountUC{
		cfg:        cfg,
		riderRepo:  riderRepo,
		driverRepo: driverRepo,
	}
}

// RegisterRider creates a rider account
func (uc *accountUC) RegisterRider(ctx context.Context, req models.RegisterRiderRequest) (*models.Rider, error) {
	if req.Name == "" || req.Phone == "" {
		return nil, fmt.Errorf("name and phone are required")
	}

	rider := &models.Rider{
		ID:    uuid.New().String(),
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}

	if err := uc.riderRepo.CreateRider(ctx, rider); err != nil {
		return nil, err
	}

	logger.Info("Rider registered", logger.String("rider_id", rider.ID))

	return rider, nil
}

// GetRider retrieves a rider by id
func (uc *accountUC) GetRider(ctx context.Context, riderID string) (*models.Rider, error) {
	return uc.riderRepo.GetRider(ctx, riderID)
}

// Login issues a JWT for the account matching the phone and role
func (uc *accountUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthToken, error) {
	var userID string
	var isAdmin bool

	switch req.Role {
	case "driver":
		driver, err := uc.driverRepo.GetDriverByPhone(ctx, req.Phone)
		if err != nil {
			if errors.Is(err, drivers.ErrDriverNotFound) {
				return nil, accounts.ErrAccountNotFound
			}
			return nil, err
		}
		userID = driver.ID
		isAdmin = driver.IsAdmin
	case "rider":
		rider, err := uc.riderRepo.GetRiderByPhone(ctx, req.Phone)
		if err != nil {
			if errors.Is(err, accounts.ErrRiderNotFound) {
				return nil, accounts.ErrAccountNotFound
			}
			return nil, err
		}
		userID = rider.ID
		isAdmin = rider.IsAdmin
	default:
		return nil, accounts.ErrInvalidRole
	}

	token, expiresAt, err := jwtpkg.GenerateToken(userID, req.Role, isAdmin, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthToken{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    userID,
		Role:      req.Role,
		IsAdmin:   isAdmin,
	}, nil
}

// GrantAdmin promotes a driver or rider to admin
func (uc *accountUC) GrantAdmin(ctx context.Context, req models.GrantAdminRequest) error {
	switch req.Role {
	case "driver":
		if err := uc.driverRepo.UpdateAdmin(ctx, req.UserID, true); err != nil {
			return err
		}
	case "rider":
		if err := uc.riderRepo.UpdateAdmin(ctx, req.UserID, true); err != nil {
			return err
		}
	default:
		return accounts.ErrInvalidRole
	}

	logger.Info("Admin granted",
		logger.String("user_id", req.UserID),
		logger.String("role", req.Role))

	return nil
}

// BootstrapAdmin seeds the first admin by email. The call is unauthenticated;
// every use is logged at warn level so it stands out in the stream.
func (uc *accountUC) BootstrapAdmin(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}

	rider, err := uc.riderRepo.GetRiderByEmail(ctx, email)
	if err == nil {
		if err := uc.riderRepo.UpdateAdmin(ctx, rider.ID, true); err != nil {
			return err
		}
		logger.Warn("Admin bootstrapped via unauthenticated endpoint",
			logger.String("rider_id", rider.ID),
			logger.String("email", email))
		return nil
	}
	if !errors.Is(err, accounts.ErrRiderNotFound) {
		return err
	}

	driver, err := uc.driverRepo.GetDriverByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, drivers.ErrDriverNotFound) {
			return accounts.ErrAccountNotFound
		}
		return err
	}

	if err := uc.driverRepo.UpdateAdmin(ctx, driver.ID, true); err != nil {
		return err
	}

	logger.Warn("Admin bootstrapped via unauthenticated endpoint",
		logger.String("driver_id", driver.ID),
		logger.String("email", email))

	return nil
}

package accounts

import (
	"context"

	"github.com/openride/marketplace/internal/pkg/models"
)

// AccountUC defines the interface for rider accounts, login and admin claims
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/openride/marketplace/services/accounts AccountUC
type AccountUC interface {
	RegisterRider(ctx context.Context, req models.RegisterRiderRequest) (*models.Rider, error)
	GetRider(ctx context.Context, riderID string) (*models.Rider, error)

	// Login issues a JWT for the account matching the phone and role
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthToken, error)

	// GrantAdmin promotes a driver or rider to admin. Admin only; enforced at
	// the route.
	GrantAdmin(ctx context.Context, req models.GrantAdminRequest) error

	// BootstrapAdmin seeds the first admin by email. The endpoint is
	// unauthenticated and intended for initial setup only.
	BootstrapAdmin(ctx context.Context, email string) error
}

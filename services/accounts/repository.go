package accounts

import (
	"context"

	"github.com/openride/marketplace/internal/pkg/models"
)

// RiderRepo defines the interface for rider data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/openride/marketplace/services/accounts RiderRepo
type RiderRepo interface {
	CreateRider(ctx context.Context, rider *models.Rider) error
	GetRider(ctx context.Context, riderID string) (*models.Rider, error)
	GetRiderByPhone(ctx context.Context, phone string) (*models.Rider, error)
	GetRiderByEmail(ctx context.Context, email string) (*models.Rider, error)
	UpdateAdmin(ctx context.Context, riderID string, isAdmin bool) error
}

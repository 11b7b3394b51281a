package rides

import (
	"context"

	"github.com/openride/marketplace/internal/pkg/models"
)

// RideGW defines the interface for ride gateway operations
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/openride/marketplace/services/rides RideGW
type RideGW interface {
	PublishRideCreated(ctx context.Context, ride *models.Ride) error
	PublishRideAssigned(ctx context.Context, ride *models.Ride) error
	PublishRideTransferred(ctx context.Context, ride *models.Ride) error
	PublishRideCompleted(ctx context.Context, ride *models.Ride) error
	PublishRideCancelled(ctx context.Context, ride *models.Ride) error
	EnqueueRideRequestWebhook(ride *models.Ride) error
}

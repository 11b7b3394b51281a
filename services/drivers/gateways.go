package drivers

import (
	"github.com/openride/marketplace/internal/pkg/models"
)

// DriverGW defines the interface for driver gateway operations
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/openride/marketplace/services/drivers DriverGW
type DriverGW interface {
	EnqueueRegistrationWebhook(driver *models.Driver) error
}

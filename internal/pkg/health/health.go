package health

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/openride/marketplace/internal/pkg/database"
	"github.com/openride/marketplace/internal/pkg/logger"
	natspkg "github.com/openride/marketplace/internal/pkg/nats"
)

// Checker verifies the health of a single dependency
type Checker interface {
	Check(ctx context.Context) error
}

// Service aggregates dependency health checks
type Service struct {
	logger   *logger.ZapLogger
	checkers map[string]Checker
}

// NewHealthService creates a health service
func NewHealthService(zapLogger *logger.ZapLogger) *Service {
	return &Service{
		logger:   zapLogger,
		checkers: make(map[string]Checker),
	}
}

// AddChecker registers a named dependency checker
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// CheckAll runs every registered checker and returns per-dependency status
func (s *Service) CheckAll(ctx context.Context) (map[string]string, bool) {
	results := make(map[string]string, len(s.checkers))
	healthy := true

	for name, checker := range s.checkers {
		if err := checker.Check(ctx); err != nil {
			s.logger.Warn("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			results[name] = err.Error()
			healthy = false
			continue
		}
		results[name] = "ok"
	}

	return results, healthy
}

// RegisterHealthEndpoints adds liveness and readiness endpoints
func RegisterHealthEndpoints(e *echo.Echo, appName, version string, svc *Service) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"app":     appName,
			"version": version,
		})
	})

	e.GET("/health/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		results, healthy := svc.CheckAll(ctx)
		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}

		return c.JSON(status, map[string]interface{}{
			"app":          appName,
			"version":      version,
			"dependencies": results,
		})
	})
}

// PostgresHealthChecker pings the database
type PostgresHealthChecker struct {
	client *database.PostgresClient
}

// NewPostgresHealthChecker creates a Postgres checker
func NewPostgresHealthChecker(client *database.PostgresClient) *PostgresHealthChecker {
	return &PostgresHealthChecker{client: client}
}

// Check pings the database
func (p *PostgresHealthChecker) Check(ctx context.Context) error {
	return p.client.GetDB().PingContext(ctx)
}

// RedisHealthChecker pings Redis
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a Redis checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// Check pings Redis
func (r *RedisHealthChecker) Check(ctx context.Context) error {
	return r.client.GetClient().Ping(ctx).Err()
}

// NATSHealthChecker verifies the NATS connection
type NATSHealthChecker struct {
	client *natspkg.Client
}

// NewNATSHealthChecker creates a NATS checker
func NewNATSHealthChecker(client *natspkg.Client) *NATSHealthChecker {
	return &NATSHealthChecker{client: client}
}

// Check verifies the connection state
func (n *NATSHealthChecker) Check(ctx context.Context) error {
	if !n.client.IsConnected() {
		return errors.New("nats connection lost")
	}
	return nil
}

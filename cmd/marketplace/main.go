package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/openride/marketplace/internal/pkg/config"
	"github.com/openride/marketplace/internal/pkg/constants"
	"github.com/openride/marketplace/internal/pkg/database"
	"github.com/openride/marketplace/internal/pkg/health"
	"github.com/openride/marketplace/internal/pkg/logger"
	"github.com/openride/marketplace/internal/pkg/metrics"
	"github.com/openride/marketplace/internal/pkg/middleware"
	natspkg "github.com/openride/marketplace/internal/pkg/nats"
	nrpkg "github.com/openride/marketplace/internal/pkg/newrelic"
	nsqpkg "github.com/openride/marketplace/internal/pkg/nsq"
	"github.com/openride/marketplace/internal/pkg/server"
	"github.com/openride/marketplace/internal/pkg/webhook"
	wspkg "github.com/openride/marketplace/internal/pkg/websocket"

	accountsHandler "github.com/openride/marketplace/services/accounts/handler"
	accountsRepository "github.com/openride/marketplace/services/accounts/repository"
	accountsUsecase "github.com/openride/marketplace/services/accounts/usecase"
	driversGateway "github.com/openride/marketplace/services/drivers/gateway"
	driversHandler "github.com/openride/marketplace/services/drivers/handler"
	driversRepository "github.com/openride/marketplace/services/drivers/repository"
	driversUsecase "github.com/openride/marketplace/services/drivers/usecase"
	messagingGateway "github.com/openride/marketplace/services/messaging/gateway"
	messagingHandler "github.com/openride/marketplace/services/messaging/handler"
	messagingNats "github.com/openride/marketplace/services/messaging/handler/nats"
	messagingRepository "github.com/openride/marketplace/services/messaging/repository"
	messagingUsecase "github.com/openride/marketplace/services/messaging/usecase"
	ridesGateway "github.com/openride/marketplace/services/rides/gateway"
	ridesHandler "github.com/openride/marketplace/services/rides/handler"
	ridesRepository "github.com/openride/marketplace/services/rides/repository"
	ridesUsecase "github.com/openride/marketplace/services/rides/usecase"
)

func main() {
	appName := "marketplace"
	configPath := "config/marketplace.env"
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.NewZapLogger(configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	nsqProducer, err := nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}

	// Repositories
	driverRepo := driversRepository.NewDriverRepository(configs, postgresClient.GetDB())
	availabilityRepo := driversRepository.NewAvailabilityRepository(redisClient)
	rideRepo := ridesRepository.NewRideRepository(configs, postgresClient.GetDB())
	messagingRepo := messagingRepository.NewMessagingRepository(configs, postgresClient.GetDB())
	riderRepo := accountsRepository.NewRiderRepository(configs, postgresClient.GetDB())

	// WebSocket manager is shared between the messaging gateway (push) and
	// the messaging handler (connections).
	wsManager := wspkg.NewManager(configs.JWT)

	// Gateways
	driverGW := driversGateway.NewDriverGW(configs, nsqProducer)
	rideGW := ridesGateway.NewRideGW(configs, natsClient, nsqProducer)
	messagingGW := messagingGateway.NewMessagingGW(configs, wsManager)

	// Use cases
	driverUC := driversUsecase.NewDriverUC(configs, driverRepo, availabilityRepo, driverGW)
	rideUC := ridesUsecase.NewRideUC(configs, rideRepo, driverRepo, rideGW)
	messagingUC := messagingUsecase.NewMessagingUC(configs, messagingRepo, messagingGW)
	accountUC := accountsUsecase.NewAccountUC(configs, riderRepo, driverRepo)

	// NATS consumers: ride lifecycle events fan out as notifications
	rideEventConsumer := messagingNats.NewRideEventConsumer(natsClient, messagingUC)
	if err := rideEventConsumer.InitConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// NSQ consumer: outbound webhook delivery
	dispatcher := webhook.NewDispatcher(configs)
	webhookConsumer, err := nsqpkg.NewConsumer(
		constants.TopicWebhookOutbound,
		configs.NSQ.Channel,
		configs.NSQ.NSQDAddress,
		dispatcher.HandleJob,
	)
	if err != nil {
		zapLogger.Fatal("Failed to initialize webhook consumer", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))
	e.Use(nrpkg.Middleware(nrApp))

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)
	metrics.RegisterEndpoint(e)

	driversHandler.NewHandler(driverUC, configs).RegisterRoutes(e)
	ridesHandler.NewHandler(rideUC, configs).RegisterRoutes(e)
	messagingHandler.NewHandler(messagingUC, wsManager, configs).RegisterRoutes(e)
	accountsHandler.NewHandler(accountUC, configs).RegisterRoutes(e)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		webhookConsumer.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		nsqProducer.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	if err := server.NewGracefulServer(e, zapLogger, configs.Server.Port).Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}

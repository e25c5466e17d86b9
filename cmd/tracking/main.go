package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lokamart/lokamart/internal/pkg/config"
	"github.com/lokamart/lokamart/internal/pkg/database"
	"github.com/lokamart/lokamart/internal/pkg/logger"
	"github.com/lokamart/lokamart/internal/pkg/middleware"
	natspkg "github.com/lokamart/lokamart/internal/pkg/nats"
	"github.com/lokamart/lokamart/internal/pkg/server"
	"github.com/lokamart/lokamart/services/order/repository"
	"github.com/lokamart/lokamart/services/tracking"
	"github.com/lokamart/lokamart/services/tracking/gateway"
	"github.com/lokamart/lokamart/services/tracking/handler"
	trackingrepo "github.com/lokamart/lokamart/services/tracking/repository"
)

func main() {
	cfg := config.InitConfig(os.Getenv("CONFIG_PATH"))
	if cfg.App.Name == "" {
		cfg.App.Name = "tracking-service"
	}

	zapLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize Postgres client
	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to Postgres", logger.Err(err))
	}
	defer pgClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := natspkg.NewClient(cfg.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Shared tick source for every live session
	tickInterval := time.Duration(cfg.Tracking.TickIntervalSeconds) * time.Second
	clock := tracking.NewTickerClock(tickInterval)
	defer clock.Stop()

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(cfg, pgClient.GetDB())
	positionRepo := trackingrepo.NewPositionRepository(redisClient)

	// Initialize tracking manager and gateway
	manager := tracking.NewManager(clock, orderRepo, positionRepo, cfg.Tracking)
	defer manager.Close()
	trackingGW := gateway.NewTrackingGW(natsClient)

	// Initialize handlers
	h := handler.NewHandler(manager, trackingGW, natsClient, cfg)
	if err := h.InitNATSConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}
	defer h.Close()

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port, time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		logger.Error("Server stopped with error", logger.Err(err))
	}
}

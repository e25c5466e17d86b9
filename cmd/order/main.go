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
	nsqpkg "github.com/lokamart/lokamart/internal/pkg/nsq"
	"github.com/lokamart/lokamart/internal/pkg/server"
	"github.com/lokamart/lokamart/services/order/gateway"
	"github.com/lokamart/lokamart/services/order/handler"
	"github.com/lokamart/lokamart/services/order/repository"
	"github.com/lokamart/lokamart/services/order/usecase"
)

func main() {
	cfg := config.InitConfig(os.Getenv("CONFIG_PATH"))
	if cfg.App.Name == "" {
		cfg.App.Name = "order-service"
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

	// Initialize NSQ producer
	nsqProducer, err := nsqpkg.NewProducer(cfg.NSQ.NSQDAddress)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer nsqProducer.Stop()

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(cfg, pgClient.GetDB())
	storeRepo := repository.NewStoreRepository(pgClient.GetDB(), redisClient)

	// Initialize gateway
	orderGW := gateway.NewOrderGW(natsClient, nsqProducer)

	// Initialize usecase
	orderUC := usecase.NewOrderUC(cfg, orderRepo, storeRepo, orderGW)

	// Initialize handlers
	h := handler.NewHandler(orderUC, cfg)
	if err := h.StartNSQConsumers(); err != nil {
		logger.Fatal("Failed to start NSQ consumers", logger.Err(err))
	}
	defer h.Stop()

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

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lokamart/lokamart/internal/pkg/models"
	natspkg "github.com/lokamart/lokamart/internal/pkg/nats"
	wspkg "github.com/lokamart/lokamart/internal/pkg/websocket"
	"github.com/lokamart/lokamart/services/tracking"
)

// Handler combines all handlers for the tracking service
type Handler struct {
	ws   *WebSocketHandler
	nats *NATSHandler
	cfg  *models.Config
}

// NewHandler creates a new combined tracking handler
func NewHandler(
	manager *tracking.Manager,
	gateway tracking.TrackingGW,
	natsClient *natspkg.Client,
	cfg *models.Config,
) *Handler {
	wsManager := wspkg.NewManager(cfg.JWT)
	return &Handler{
		ws:   NewWebSocketHandler(wsManager, manager, gateway, cfg.Tracking),
		nats: NewNATSHandler(manager, natsClient),
		cfg:  cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/tracking", h.ws.HandleTracking)
	e.GET("/health", h.healthCheck)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.nats.InitConsumers()
}

// Close drains NATS subscriptions
func (h *Handler) Close() {
	h.nats.Close()
}

func (h *Handler) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": h.cfg.App.Name,
	})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lokamart/lokamart/internal/pkg/middleware"
	"github.com/lokamart/lokamart/internal/pkg/models"
	"github.com/lokamart/lokamart/services/order"
)

// Handler combines all handlers for the order service
type Handler struct {
	orderHTTP *OrderHandler
	orderNSQ  *NSQHandler
	cfg       *models.Config
}

// NewHandler creates a new combined order handler
func NewHandler(orderUC order.OrderUC, cfg *models.Config) *Handler {
	return &Handler{
		orderHTTP: NewOrderHandler(orderUC),
		orderNSQ:  NewNSQHandler(orderUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.healthCheck)

	api := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	api.GET("/orders", h.orderHTTP.ListActiveOrders)
	api.GET("/orders/:id", h.orderHTTP.GetOrder)
	api.GET("/orders/:id/view", h.orderHTTP.GetOrderView)
	api.POST("/orders/:id/status", h.orderHTTP.UpdateStatus)
	api.POST("/orders/:id/status/async", h.orderHTTP.RequestStatusUpdate)
	api.GET("/stores/nearby", h.orderHTTP.NearbyStores)
	api.POST("/internal/stores", h.orderHTTP.RegisterStore)
}

// StartNSQConsumers connects the status command consumer
func (h *Handler) StartNSQConsumers() error {
	return h.orderNSQ.Start(h.cfg.NSQ)
}

// Stop gracefully stops background consumers
func (h *Handler) Stop() {
	h.orderNSQ.Stop()
}

func (h *Handler) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": h.cfg.App.Name,
	})
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lokamart/lokamart/internal/pkg/middleware"
	"github.com/lokamart/lokamart/internal/pkg/models"
	"github.com/lokamart/lokamart/internal/utils"
	"github.com/lokamart/lokamart/services/order"
)

// OrderHandler serves the order HTTP API
type OrderHandler struct {
	orderUC order.OrderUC
}

// NewOrderHandler creates a new order HTTP handler
func NewOrderHandler(orderUC order.OrderUC) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID := c.Param("id")
	if _, err := uuid.Parse(orderID); err != nil {
		return utils.BadRequest(c, "invalid order id")
	}

	o, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return utils.NotFound(c, "order not found")
		}
		return utils.InternalError(c, "failed to load order")
	}

	return utils.WriteJSON(c, http.StatusOK, o)
}

// GetOrderView handles GET /orders/:id/view
func (h *OrderHandler) GetOrderView(c echo.Context) error {
	orderID := c.Param("id")
	if _, err := uuid.Parse(orderID); err != nil {
		return utils.BadRequest(c, "invalid order id")
	}

	view, err := h.orderUC.GetOrderView(c.Request().Context(), orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return utils.NotFound(c, "order not found")
		}
		return utils.InternalError(c, "failed to load order view")
	}

	return utils.WriteJSON(c, http.StatusOK, view)
}

// ListActiveOrders handles GET /orders
func (h *OrderHandler) ListActiveOrders(c echo.Context) error {
	customerID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return utils.Unauthorized(c, "missing authenticated user")
	}

	orders, err := h.orderUC.ListActiveOrders(c.Request().Context(), customerID.String())
	if err != nil {
		return utils.InternalError(c, "failed to list orders")
	}

	return utils.WriteJSON(c, http.StatusOK, orders)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles POST /orders/:id/status, applying the
// transition synchronously.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID := c.Param("id")
	if _, err := uuid.Parse(orderID); err != nil {
		return utils.BadRequest(c, "invalid order id")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil || req.Status == "" {
		return utils.BadRequest(c, "status is required")
	}

	o, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			return utils.NotFound(c, "order not found")
		case errors.Is(err, order.ErrInvalidTransition):
			return utils.Conflict(c, err.Error())
		default:
			return utils.InternalError(c, "failed to update order status")
		}
	}

	return utils.WriteJSON(c, http.StatusOK, o)
}

// RequestStatusUpdate handles POST /orders/:id/status/async, enqueuing
// the transition as a fire-and-forget command.
func (h *OrderHandler) RequestStatusUpdate(c echo.Context) error {
	orderID := c.Param("id")
	if _, err := uuid.Parse(orderID); err != nil {
		return utils.BadRequest(c, "invalid order id")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil || req.Status == "" {
		return utils.BadRequest(c, "status is required")
	}

	requestedBy := ""
	if userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID); ok {
		requestedBy = userID.String()
	}

	cmd := models.StatusCommand{
		OrderID:     orderID,
		NewStatus:   req.Status,
		RequestedBy: requestedBy,
	}
	if err := h.orderUC.RequestStatusUpdate(c.Request().Context(), cmd); err != nil {
		return utils.InternalError(c, "failed to enqueue status update")
	}

	return utils.WriteJSON(c, http.StatusAccepted, cmd)
}

// NearbyStores handles GET /stores/nearby?lat=&lng=&limit=
func (h *OrderHandler) NearbyStores(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequest(c, "lat query parameter is required")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequest(c, "lng query parameter is required")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return utils.BadRequest(c, "limit must be a non-negative integer")
		}
	}

	stores, err := h.orderUC.NearbyStores(c.Request().Context(), models.LatLng{Latitude: lat, Longitude: lng}, limit)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	return utils.WriteJSON(c, http.StatusOK, stores)
}

type registerStoreRequest struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RegisterStore handles POST /internal/stores
func (h *OrderHandler) RegisterStore(c echo.Context) error {
	var req registerStoreRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequest(c, "invalid store payload")
	}

	store := &models.Store{
		ID:        uuid.New(),
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsActive:  true,
	}
	if err := h.orderUC.RegisterStore(c.Request().Context(), store); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	return utils.WriteJSON(c, http.StatusCreated, store)
}

package handler

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/lokamart/lokamart/internal/pkg/constants"
	"github.com/lokamart/lokamart/internal/pkg/logger"
	"github.com/lokamart/lokamart/internal/pkg/models"
	wspkg "github.com/lokamart/lokamart/internal/pkg/websocket"
	"github.com/lokamart/lokamart/internal/utils"
	"github.com/lokamart/lokamart/services/tracking"
	"github.com/lokamart/lokamart/services/tracking/device"
)

// LocationUpdate is the payload a rider's device pushes over the socket
type LocationUpdate struct {
	OrderID   string    `json:"order_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// WebSocketHandler bridges WebSocket connections to tracking sessions.
// Viewers receive a stream of merged order views; riders push device
// positions up the same socket type.
type WebSocketHandler struct {
	wsManager *wspkg.Manager
	manager   *tracking.Manager
	gateway   tracking.TrackingGW
	cfg       models.TrackingConfig
}

// NewWebSocketHandler creates a new tracking WebSocket handler
func NewWebSocketHandler(wsManager *wspkg.Manager, manager *tracking.Manager, gateway tracking.TrackingGW, cfg models.TrackingConfig) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager: wsManager,
		manager:   manager,
		gateway:   gateway,
		cfg:       cfg,
	}
}

// connWriter serializes writes; the view pump and the read loop both
// write to the same connection.
type connWriter struct {
	mu        sync.Mutex
	conn      *websocket.Conn
	wsManager *wspkg.Manager
}

func (w *connWriter) sendView(view models.OrderView) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.wsManager.SendOrderView(w.conn, view)
}

func (w *connWriter) sendEvent(event string, data interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.wsManager.SendMessage(w.conn, event, data)
}

func (w *connWriter) sendError(code, message string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.wsManager.SendErrorMessage(w.conn, code, message)
}

// sendDeviceError tells the pushing device its sample was rejected
// and why, using the device failure categories.
func (w *connWriter) sendDeviceError(category device.Category, message string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.wsManager.SendMessage(w.conn, constants.EventDeviceError, models.WSErrorMessage{
		Code:    string(category),
		Message: message,
	})
}

// HandleTracking upgrades the connection and serves it until the
// client disconnects or the session is torn down.
func (h *WebSocketHandler) HandleTracking(c echo.Context) error {
	return h.wsManager.HandleConnection(c, func(client *models.WebSocketClient, ws *websocket.Conn) error {
		return h.serveClient(c, client, ws)
	})
}

func (h *WebSocketHandler) serveClient(c echo.Context, client *models.WebSocketClient, ws *websocket.Conn) error {
	writer := &connWriter{conn: ws, wsManager: h.wsManager}

	orderID := c.QueryParam("order_id")
	if orderID == "" {
		return writer.sendError(constants.ErrorInvalidMessage, "order_id query parameter is required")
	}

	deviceLocation := parseDeviceLocation(c)

	h.wsManager.AddClient(client)
	defer h.wsManager.RemoveClient(client.UserID)

	views, cancel, err := h.manager.Observe(c.Request().Context(), orderID, client.AccountType, deviceLocation)
	if err != nil {
		logger.Warn("Failed to start tracking",
			logger.String("order_id", orderID),
			logger.String("user_id", client.UserID),
			logger.Err(err))
		return writer.sendError(constants.ErrorOrderNotFound, "order not found")
	}
	defer cancel()

	// View pump; a closed stream means the session tore itself down
	done := make(chan struct{})
	go func() {
		defer close(done)
		for view := range views {
			if err := writer.sendView(view); err != nil {
				return
			}
		}
		_ = writer.sendEvent(constants.EventSessionReleased, map[string]string{"order_id": orderID})
		_ = ws.Close()
	}()

	h.readLoop(client, orderID, ws, writer)

	cancel()
	<-done
	return nil
}

// readLoop consumes client messages until disconnect. Only riders may
// push positions; anything else on the socket is rejected in-band so
// the view stream keeps flowing.
func (h *WebSocketHandler) readLoop(client *models.WebSocketClient, orderID string, ws *websocket.Conn, writer *connWriter) {
	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			return
		}

		var msg models.WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			_ = writer.sendError(constants.ErrorInvalidMessage, "invalid message format")
			continue
		}

		switch msg.Event {
		case constants.EventLocationUpdate:
			if client.Role != "driver" {
				_ = writer.sendError(constants.ErrorUnauthorized, "only riders may push positions")
				continue
			}
			h.handleLocationUpdate(client, orderID, msg.Data, writer)
		default:
			_ = writer.sendError(constants.ErrorInvalidMessage, "unknown event: "+msg.Event)
		}
	}
}

func (h *WebSocketHandler) handleLocationUpdate(client *models.WebSocketClient, orderID string, data json.RawMessage, writer *connWriter) {
	var update LocationUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		_ = writer.sendError(constants.ErrorInvalidLocation, "invalid location payload")
		return
	}
	if update.OrderID == "" {
		update.OrderID = orderID
	}

	if !utils.IsValidLatLng(models.LatLng{Latitude: update.Latitude, Longitude: update.Longitude}) {
		_ = writer.sendDeviceError(device.CategorySignal, "coordinates out of range")
		return
	}

	maxAccuracy := h.cfg.MaxTelemetryAccuracy
	if maxAccuracy <= 0 {
		maxAccuracy = device.DefaultMaxAccuracy
	}
	if update.Accuracy > maxAccuracy {
		logger.Debug("Dropping low-accuracy position",
			logger.String("order_id", update.OrderID),
			logger.Float64("accuracy", update.Accuracy))
		_ = writer.sendDeviceError(device.CategorySignal, "position accuracy too low")
		return
	}

	ts := update.Timestamp
	if ts.IsZero() {
		ts = models.Now()
	}

	telemetry := models.TelemetryUpdate{
		OrderID:  update.OrderID,
		DriverID: client.UserID,
		Position: models.Position{
			Latitude:  update.Latitude,
			Longitude: update.Longitude,
			Timestamp: ts,
			Accuracy:  update.Accuracy,
		},
		CreatedAt: models.Now(),
	}

	ctx := context.Background()
	h.manager.HandleTelemetry(ctx, telemetry)

	if err := h.gateway.PublishDriverPosition(ctx, telemetry); err != nil {
		logger.Warn("Failed to publish driver position",
			logger.String("order_id", update.OrderID),
			logger.Err(err))
	}
}

// parseDeviceLocation reads an optional lat/lng pair from the query
// string; viewers report their device position this way so simulated
// deliveries can head toward it.
func parseDeviceLocation(c echo.Context) *models.LatLng {
	latStr, lngStr := c.QueryParam("lat"), c.QueryParam("lng")
	if latStr == "" || lngStr == "" {
		return nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil
	}

	loc := models.LatLng{Latitude: lat, Longitude: lng}
	if !utils.IsValidLatLng(loc) {
		return nil
	}
	return &loc
}

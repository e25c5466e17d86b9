package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lokamart/lokamart/internal/pkg/constants"
	"github.com/lokamart/lokamart/internal/pkg/logger"
	"github.com/lokamart/lokamart/internal/pkg/models"
	natspkg "github.com/lokamart/lokamart/internal/pkg/nats"
	"github.com/lokamart/lokamart/services/tracking"
)

// NATSHandler feeds order and telemetry events into the tracking manager
type NATSHandler struct {
	manager    *tracking.Manager
	natsClient *natspkg.Client
	consumers  []*natspkg.Consumer
}

// NewNATSHandler creates a new tracking NATS handler
func NewNATSHandler(manager *tracking.Manager, natsClient *natspkg.Client) *NATSHandler {
	return &NATSHandler{
		manager:    manager,
		natsClient: natsClient,
	}
}

// InitConsumers subscribes to the order and telemetry subjects. Order
// updates are broadcast (every instance keeps its own sessions fresh);
// telemetry is also broadcast since any instance may hold a session
// for the order.
func (h *NATSHandler) InitConsumers() error {
	orderConsumer, err := natspkg.NewConsumer(h.natsClient, constants.SubjectOrderUpdated, "", h.handleOrderUpdated)
	if err != nil {
		return fmt.Errorf("failed to subscribe to order updates: %w", err)
	}
	h.consumers = append(h.consumers, orderConsumer)

	positionConsumer, err := natspkg.NewConsumer(h.natsClient, constants.SubjectDriverPosition, "", h.handleDriverPosition)
	if err != nil {
		return fmt.Errorf("failed to subscribe to driver positions: %w", err)
	}
	h.consumers = append(h.consumers, positionConsumer)

	logger.Info("Tracking consumers initialized",
		logger.Strings("subjects", []string{constants.SubjectOrderUpdated, constants.SubjectDriverPosition}))
	return nil
}

func (h *NATSHandler) handleOrderUpdated(msg []byte) error {
	var update models.OrderUpdate
	if err := json.Unmarshal(msg, &update); err != nil {
		return fmt.Errorf("failed to unmarshal order update: %w", err)
	}
	if update.OrderID == "" {
		return fmt.Errorf("order update without order id")
	}

	h.manager.HandleOrderUpdate(update)
	return nil
}

func (h *NATSHandler) handleDriverPosition(msg []byte) error {
	var update models.TelemetryUpdate
	if err := json.Unmarshal(msg, &update); err != nil {
		return fmt.Errorf("failed to unmarshal driver position: %w", err)
	}
	if update.OrderID == "" {
		return fmt.Errorf("driver position without order id")
	}

	h.manager.HandleTelemetry(context.Background(), update)
	return nil
}

// Close drains all subscriptions
func (h *NATSHandler) Close() {
	for _, consumer := range h.consumers {
		if err := consumer.Close(); err != nil {
			logger.Warn("Failed to close consumer",
				logger.String("subject", consumer.Subject()),
				logger.Err(err))
		}
	}
	h.consumers = nil
}

package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/lokamart/lokamart/internal/pkg/constants"
	"github.com/lokamart/lokamart/internal/pkg/logger"
	"github.com/lokamart/lokamart/internal/pkg/models"
	nsqpkg "github.com/lokamart/lokamart/internal/pkg/nsq"
	"github.com/lokamart/lokamart/services/order"
)

// NSQHandler consumes fire-and-forget status commands
type NSQHandler struct {
	orderUC  order.OrderUC
	consumer *nsqpkg.Consumer
}

// NewNSQHandler creates a new order NSQ handler
func NewNSQHandler(orderUC order.OrderUC) *NSQHandler {
	return &NSQHandler{orderUC: orderUC}
}

// Start connects the status command consumer
func (h *NSQHandler) Start(cfg models.NSQConfig) error {
	consumer, err := nsqpkg.NewConsumer(
		constants.TopicOrderStatusUpdate,
		constants.ChannelOrderService,
		cfg,
		h.handleStatusCommand,
	)
	if err != nil {
		return fmt.Errorf("failed to start status command consumer: %w", err)
	}
	h.consumer = consumer
	return nil
}

// handleStatusCommand applies a queued status command through the
// transition guard. Commands the guard rejects are dropped, not
// requeued; retrying cannot make a skipped step valid.
func (h *NSQHandler) handleStatusCommand(msg []byte) error {
	var cmd models.StatusCommand
	if err := nsqpkg.UnmarshalMessage(msg, &cmd); err != nil {
		logger.Warn("Dropping malformed status command", logger.Err(err))
		return nil
	}

	_, err := h.orderUC.UpdateOrderStatus(context.Background(), cmd.OrderID, cmd.NewStatus)
	if err != nil {
		if errors.Is(err, order.ErrInvalidTransition) || errors.Is(err, order.ErrOrderNotFound) {
			logger.Warn("Dropping unapplicable status command",
				logger.String("order_id", cmd.OrderID),
				logger.String("new_status", cmd.NewStatus),
				logger.Err(err))
			return nil
		}
		// Transient failure, requeue
		return err
	}

	logger.Info("Applied status command",
		logger.String("order_id", cmd.OrderID),
		logger.String("new_status", cmd.NewStatus),
		logger.String("requested_by", cmd.RequestedBy))
	return nil
}

// Stop gracefully stops the consumer
func (h *NSQHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}

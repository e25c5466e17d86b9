package gateway

import (
	"context"
	"fmt"

	"github.com/lokamart/lokamart/internal/pkg/constants"
	"github.com/lokamart/lokamart/internal/pkg/models"
	natspkg "github.com/lokamart/lokamart/internal/pkg/nats"
	nsqpkg "github.com/lokamart/lokamart/internal/pkg/nsq"
	"github.com/lokamart/lokamart/services/order"
)

type orderGW struct {
	natsClient  *natspkg.Client
	nsqProducer *nsqpkg.Producer
}

// NewOrderGW creates a new order gateway
func NewOrderGW(natsClient *natspkg.Client, nsqProducer *nsqpkg.Producer) order.OrderGW {
	return &orderGW{
		natsClient:  natsClient,
		nsqProducer: nsqProducer,
	}
}

// PublishOrderUpdated broadcasts an order change so live tracking
// sessions everywhere pick it up.
func (g *orderGW) PublishOrderUpdated(_ context.Context, update models.OrderUpdate) error {
	if err := g.natsClient.Publish(constants.SubjectOrderUpdated, update); err != nil {
		return fmt.Errorf("failed to publish order update: %w", err)
	}
	return nil
}

// PublishStatusCommand enqueues a fire-and-forget status update
// command for the order worker.
func (g *orderGW) PublishStatusCommand(_ context.Context, cmd models.StatusCommand) error {
	if err := g.nsqProducer.Publish(constants.TopicOrderStatusUpdate, cmd); err != nil {
		return fmt.Errorf("failed to publish status command: %w", err)
	}
	return nil
}

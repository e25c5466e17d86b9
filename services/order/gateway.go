package order

import (
	"context"

	"github.com/lokamart/lokamart/internal/pkg/models"
)

// OrderGW defines the interface for order gateway operations
type OrderGW interface {
	PublishOrderUpdated(ctx context.Context, update models.OrderUpdate) error
	PublishStatusCommand(ctx context.Context, cmd models.StatusCommand) error
}

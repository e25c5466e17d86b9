package tracking

import (
	"context"

	"github.com/lokamart/lokamart/internal/pkg/models"
)

// PositionSource supplies the best-known current position for an
// order's rider. A false second return means no sample is applicable
// right now; that is a normal outcome, not an error.
type PositionSource interface {
	Sample(order *models.Order, tick int64) (models.Position, bool)
}

// OrderProvider loads the persisted order record when a session starts
type OrderProvider interface {
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
}

// PositionRepo persists the sticky last-known driver position per order
type PositionRepo interface {
	StorePosition(ctx context.Context, orderID string, position models.Position) error
	GetPosition(ctx context.Context, orderID string) (*models.Position, error)
	ClearPosition(ctx context.Context, orderID string) error
}

// TrackingGW publishes rider telemetry to interested services
type TrackingGW interface {
	PublishDriverPosition(ctx context.Context, update models.TelemetryUpdate) error
}

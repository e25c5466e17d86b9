package order

import (
	"context"

	"github.com/lokamart/lokamart/internal/pkg/models"
)

// OrderUC defines the interface for order business logic
type OrderUC interface {
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
	GetOrderView(ctx context.Context, orderID string) (*models.OrderView, error)
	ListActiveOrders(ctx context.Context, customerID string) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, newStatus string) (*models.Order, error)
	RequestStatusUpdate(ctx context.Context, cmd models.StatusCommand) error
	NearbyStores(ctx context.Context, location models.LatLng, limit int) ([]models.Store, error)
	RegisterStore(ctx context.Context, store *models.Store) error
}

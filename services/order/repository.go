package order

import (
	"context"

	"github.com/lokamart/lokamart/internal/pkg/models"
)

// OrderRepo defines the interface for order data access operations
type OrderRepo interface {
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error
	ListActiveOrders(ctx context.Context, customerID string) ([]models.Order, error)
}

// StoreRepo defines the interface for store lookup operations
type StoreRepo interface {
	AddStore(ctx context.Context, store *models.Store) error
	NearbyStores(ctx context.Context, location models.LatLng, radiusKm float64, limit int) ([]models.Store, error)
}

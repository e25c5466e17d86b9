package usecase

import (
	"context"
	"fmt"

	"github.com/lokamart/lokamart/internal/pkg/logger"
	"github.com/lokamart/lokamart/internal/pkg/models"
	"github.com/lokamart/lokamart/internal/utils"
	"github.com/lokamart/lokamart/services/order"
	"github.com/lokamart/lokamart/services/order/statemachine"
)

// DefaultStoreSearchRadiusKm bounds proximity queries when the config
// leaves the radius unset.
const DefaultStoreSearchRadiusKm = 10.0

// DefaultNearbyStoreLimit caps the number of stores returned by a
// proximity query.
const DefaultNearbyStoreLimit = 20

type orderUC struct {
	cfg    *models.Config
	orders order.OrderRepo
	stores order.StoreRepo
	gw     order.OrderGW
}

// NewOrderUC creates a new order usecase
func NewOrderUC(cfg *models.Config, orders order.OrderRepo, stores order.StoreRepo, gw order.OrderGW) order.OrderUC {
	return &orderUC{
		cfg:    cfg,
		orders: orders,
		stores: stores,
		gw:     gw,
	}
}

// GetOrder returns the persisted order record
func (uc *orderUC) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return uc.orders.GetOrder(ctx, orderID)
}

// GetOrderView classifies the order's status against its step track
// and returns the progress view a client renders from.
func (uc *orderUC) GetOrderView(ctx context.Context, orderID string) (*models.OrderView, error) {
	o, err := uc.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	progress := statemachine.Classify(string(o.Status), o.Mode)
	return &models.OrderView{
		OrderID:     o.ID.String(),
		Mode:        o.Mode,
		Status:      o.Status,
		Steps:       progress.Steps,
		CurrentStep: progress.CurrentIndex,
		Progress:    progress.Fraction,
	}, nil
}

// ListActiveOrders returns the customer's in-flight orders
func (uc *orderUC) ListActiveOrders(ctx context.Context, customerID string) ([]models.Order, error) {
	return uc.orders.ListActiveOrders(ctx, customerID)
}

// UpdateOrderStatus applies a guarded status transition and broadcasts
// the change. Transitions that skip steps or leave a terminal status
// are rejected with ErrInvalidTransition.
func (uc *orderUC) UpdateOrderStatus(ctx context.Context, orderID string, newStatus string) (*models.Order, error) {
	o, err := uc.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !statemachine.CanTransition(string(o.Status), newStatus, o.Mode) {
		return nil, fmt.Errorf("%w: %s -> %s", order.ErrInvalidTransition, o.Status, models.ParseStatus(newStatus))
	}

	status := models.ParseStatus(newStatus)
	if err := uc.orders.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	o.Status = status

	statusStr := string(status)
	if err := uc.gw.PublishOrderUpdated(ctx, models.OrderUpdate{
		OrderID: orderID,
		Status:  &statusStr,
	}); err != nil {
		// Persisted state wins; trackers resync on their next load
		logger.Warn("Failed to publish order update",
			logger.String("order_id", orderID),
			logger.Err(err))
	}

	return o, nil
}

// RequestStatusUpdate enqueues a fire-and-forget status command. The
// transition guard runs when the command is consumed, not here.
func (uc *orderUC) RequestStatusUpdate(ctx context.Context, cmd models.StatusCommand) error {
	if cmd.OrderID == "" || cmd.NewStatus == "" {
		return fmt.Errorf("status command requires order_id and new_status")
	}
	if cmd.CreatedAt.IsZero() {
		cmd.CreatedAt = models.Now()
	}
	cmd.NewStatus = string(models.ParseStatus(cmd.NewStatus))

	return uc.gw.PublishStatusCommand(ctx, cmd)
}

// NearbyStores returns active stores around the location, nearest first
func (uc *orderUC) NearbyStores(ctx context.Context, location models.LatLng, limit int) ([]models.Store, error) {
	if !utils.IsValidLatLng(location) {
		return nil, fmt.Errorf("invalid coordinates: %f, %f", location.Latitude, location.Longitude)
	}

	radius := uc.cfg.Tracking.StoreSearchRadiusKm
	if radius <= 0 {
		radius = DefaultStoreSearchRadiusKm
	}
	if limit <= 0 {
		limit = DefaultNearbyStoreLimit
	}

	return uc.stores.NearbyStores(ctx, location, radius, limit)
}

// RegisterStore validates and persists a new store
func (uc *orderUC) RegisterStore(ctx context.Context, store *models.Store) error {
	if !utils.IsValidLatLng(store.Location()) {
		return fmt.Errorf("invalid store coordinates: %f, %f", store.Latitude, store.Longitude)
	}
	if store.Name == "" {
		return fmt.Errorf("store name is required")
	}

	return uc.stores.AddStore(ctx, store)
}

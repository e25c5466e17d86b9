package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lokamart/lokamart/internal/pkg/models"
	"github.com/lokamart/lokamart/services/order"
)

type OrderRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(cfg *models.Config, db *sqlx.DB) *OrderRepo {
	return &OrderRepo{
		cfg: cfg,
		db:  db,
	}
}

const orderColumns = `
	o.order_id, o.mart_id, o.customer_id, o.fulfillment_mode, o.status,
	s.latitude AS store_latitude, s.longitude AS store_longitude,
	o.customer_latitude, o.customer_longitude, o.created_at`

// GetOrder retrieves an order by ID along with its store's coordinates
func (r *OrderRepo) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	query := `
		SELECT` + orderColumns + `
		FROM orders o
		JOIN stores s ON s.store_id = o.mart_id
		WHERE o.order_id = $1
	`

	row := r.db.QueryRowContext(ctx, query, orderID)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}
	return o, nil
}

// UpdateOrderStatus persists a new status for the order
func (r *OrderRepo) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	query := `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE order_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, string(status), orderID)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

// ListActiveOrders returns the customer's orders that are not yet in a
// terminal status, newest first.
func (r *OrderRepo) ListActiveOrders(ctx context.Context, customerID string) ([]models.Order, error) {
	query := `
		SELECT` + orderColumns + `
		FROM orders o
		JOIN stores s ON s.store_id = o.mart_id
		WHERE o.customer_id = $1
		  AND o.status NOT IN ('DELIVERED', 'PICKED_UP', 'CANCELLED', 'REJECTED')
		ORDER BY o.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order rows: %w", err)
	}
	return orders, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*models.Order, error) {
	var (
		o            models.Order
		mode, status string
		customerLat  sql.NullFloat64
		customerLng  sql.NullFloat64
	)

	err := row.Scan(
		&o.ID,
		&o.MartID,
		&o.CustomerID,
		&mode,
		&status,
		&o.StoreLocation.Latitude,
		&o.StoreLocation.Longitude,
		&customerLat,
		&customerLng,
		&o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	o.Mode = models.ParseMode(mode)
	o.Status = models.ParseStatus(status)
	if customerLat.Valid && customerLng.Valid {
		o.CustomerLocation = &models.LatLng{
			Latitude:  customerLat.Float64,
			Longitude: customerLng.Float64,
		}
	}
	return &o, nil
}

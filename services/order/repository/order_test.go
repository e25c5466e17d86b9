package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokamart/lokamart/internal/pkg/models"
	"github.com/lokamart/lokamart/services/order"
	"github.com/lokamart/lokamart/services/order/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func orderRows(orderID, martID, customerID uuid.UUID, mode, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"order_id", "mart_id", "customer_id", "fulfillment_mode", "status",
		"store_latitude", "store_longitude",
		"customer_latitude", "customer_longitude", "created_at",
	}).AddRow(orderID.String(), martID.String(), customerID.String(), mode, status, 12.9716, 77.6410, 12.9780, 77.6450, time.Now())
}

func TestGetOrder_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOrderRepository(&models.Config{}, db)

	orderID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(orderID.String()).
		WillReturnRows(orderRows(orderID, uuid.New(), uuid.New(), "DELIVERY", "PACKING"))

	got, err := repo.GetOrder(context.Background(), orderID.String())
	require.NoError(t, err)
	assert.Equal(t, orderID, got.ID)
	assert.Equal(t, models.ModeDelivery, got.Mode)
	assert.Equal(t, models.StatusPacking, got.Status)
	assert.InDelta(t, 12.9716, got.StoreLocation.Latitude, 1e-9)
	require.NotNil(t, got.CustomerLocation)
	assert.InDelta(t, 12.9780, got.CustomerLocation.Latitude, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrder_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOrderRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}))

	_, err := repo.GetOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestGetOrder_NullCustomerLocation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOrderRepository(&models.Config{}, db)

	orderID := uuid.New()
	rows := sqlmock.NewRows([]string{
		"order_id", "mart_id", "customer_id", "fulfillment_mode", "status",
		"store_latitude", "store_longitude",
		"customer_latitude", "customer_longitude", "created_at",
	}).AddRow(orderID.String(), uuid.New().String(), uuid.New().String(), "PICKUP", "READY", 12.9716, 77.6410, nil, nil, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(orderID.String()).
		WillReturnRows(rows)

	got, err := repo.GetOrder(context.Background(), orderID.String())
	require.NoError(t, err)
	assert.Equal(t, models.ModePickup, got.Mode)
	assert.Nil(t, got.CustomerLocation)
}

func TestUpdateOrderStatus_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOrderRepository(&models.Config{}, db)

	orderID := uuid.New().String()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders")).
		WithArgs("ON_THE_WAY", orderID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateOrderStatus(context.Background(), orderID, models.StatusOnTheWay)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatus_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOrderRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders")).
		WithArgs("DELIVERED", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateOrderStatus(context.Background(), "missing", models.StatusDelivered)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestListActiveOrders(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOrderRepository(&models.Config{}, db)

	customerID := uuid.New()
	rows := orderRows(uuid.New(), uuid.New(), customerID, "DELIVERY", "PLACED")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(customerID.String()).
		WillReturnRows(rows)

	orders, err := repo.ListActiveOrders(context.Background(), customerID.String())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, models.StatusPlaced, orders[0].Status)
}

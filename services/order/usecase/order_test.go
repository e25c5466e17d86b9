package usecase_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokamart/lokamart/internal/pkg/models"
	"github.com/lokamart/lokamart/services/order"
	"github.com/lokamart/lokamart/services/order/mocks"
	"github.com/lokamart/lokamart/services/order/usecase"
)

type fixture struct {
	orders *mocks.MockOrderRepo
	stores *mocks.MockStoreRepo
	gw     *mocks.MockOrderGW
	uc     order.OrderUC
}

func setup(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		orders: mocks.NewMockOrderRepo(ctrl),
		stores: mocks.NewMockStoreRepo(ctrl),
		gw:     mocks.NewMockOrderGW(ctrl),
	}
	f.uc = usecase.NewOrderUC(&models.Config{}, f.orders, f.stores, f.gw)
	return f
}

func sampleOrder(status models.OrderStatus) *models.Order {
	return &models.Order{
		ID:            uuid.New(),
		MartID:        uuid.New(),
		CustomerID:    uuid.New(),
		Mode:          models.ModeDelivery,
		Status:        status,
		StoreLocation: models.LatLng{Latitude: 12.9716, Longitude: 77.6410},
		CreatedAt:     models.Now(),
	}
}

func TestUpdateOrderStatus_ValidTransition(t *testing.T) {
	f := setup(t)
	o := sampleOrder(models.StatusPacking)
	orderID := o.ID.String()

	f.orders.EXPECT().GetOrder(gomock.Any(), orderID).Return(o, nil)
	f.orders.EXPECT().UpdateOrderStatus(gomock.Any(), orderID, models.StatusOnTheWay).Return(nil)
	f.gw.EXPECT().PublishOrderUpdated(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, update models.OrderUpdate) error {
			assert.Equal(t, orderID, update.OrderID)
			require.NotNil(t, update.Status)
			assert.Equal(t, "ON_THE_WAY", *update.Status)
			return nil
		})

	updated, err := f.uc.UpdateOrderStatus(context.Background(), orderID, "on_the_way")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnTheWay, updated.Status)
}

func TestUpdateOrderStatus_SkipsStep(t *testing.T) {
	f := setup(t)
	o := sampleOrder(models.StatusPlaced)

	f.orders.EXPECT().GetOrder(gomock.Any(), o.ID.String()).Return(o, nil)

	_, err := f.uc.UpdateOrderStatus(context.Background(), o.ID.String(), "ON_THE_WAY")
	assert.ErrorIs(t, err, order.ErrInvalidTransition)
}

func TestUpdateOrderStatus_TerminalIsFinal(t *testing.T) {
	f := setup(t)
	o := sampleOrder(models.StatusDelivered)

	f.orders.EXPECT().GetOrder(gomock.Any(), o.ID.String()).Return(o, nil)

	_, err := f.uc.UpdateOrderStatus(context.Background(), o.ID.String(), "PACKING")
	assert.ErrorIs(t, err, order.ErrInvalidTransition)
}

func TestUpdateOrderStatus_CancelFromAnyActive(t *testing.T) {
	f := setup(t)
	o := sampleOrder(models.StatusOnTheWay)
	orderID := o.ID.String()

	f.orders.EXPECT().GetOrder(gomock.Any(), orderID).Return(o, nil)
	f.orders.EXPECT().UpdateOrderStatus(gomock.Any(), orderID, models.StatusCancelled).Return(nil)
	f.gw.EXPECT().PublishOrderUpdated(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := f.uc.UpdateOrderStatus(context.Background(), orderID, "CANCELLED")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, updated.Status)
}

func TestUpdateOrderStatus_PublishFailureDoesNotFail(t *testing.T) {
	f := setup(t)
	o := sampleOrder(models.StatusPlaced)
	orderID := o.ID.String()

	f.orders.EXPECT().GetOrder(gomock.Any(), orderID).Return(o, nil)
	f.orders.EXPECT().UpdateOrderStatus(gomock.Any(), orderID, models.StatusPacking).Return(nil)
	f.gw.EXPECT().PublishOrderUpdated(gomock.Any(), gomock.Any()).Return(assert.AnError)

	_, err := f.uc.UpdateOrderStatus(context.Background(), orderID, "PACKING")
	assert.NoError(t, err)
}

func TestUpdateOrderStatus_OrderNotFound(t *testing.T) {
	f := setup(t)

	f.orders.EXPECT().GetOrder(gomock.Any(), "missing").Return(nil, order.ErrOrderNotFound)

	_, err := f.uc.UpdateOrderStatus(context.Background(), "missing", "PACKING")
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestGetOrderView(t *testing.T) {
	f := setup(t)
	o := sampleOrder(models.StatusOnTheWay)

	f.orders.EXPECT().GetOrder(gomock.Any(), o.ID.String()).Return(o, nil)

	view, err := f.uc.GetOrderView(context.Background(), o.ID.String())
	require.NoError(t, err)
	assert.Equal(t, o.ID.String(), view.OrderID)
	assert.Equal(t, 2, view.CurrentStep)
	assert.InDelta(t, 2.0/3.0, view.Progress, 1e-9)
	assert.Len(t, view.Steps, 4)
}

func TestRequestStatusUpdate(t *testing.T) {
	f := setup(t)

	f.gw.EXPECT().PublishStatusCommand(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd models.StatusCommand) error {
			assert.Equal(t, "PACKING", cmd.NewStatus)
			assert.False(t, cmd.CreatedAt.IsZero())
			return nil
		})

	err := f.uc.RequestStatusUpdate(context.Background(), models.StatusCommand{
		OrderID:     "o1",
		NewStatus:   "packing",
		RequestedBy: "staff-1",
	})
	assert.NoError(t, err)
}

func TestRequestStatusUpdate_MissingFields(t *testing.T) {
	f := setup(t)

	err := f.uc.RequestStatusUpdate(context.Background(), models.StatusCommand{OrderID: "o1"})
	assert.Error(t, err)
}

func TestNearbyStores(t *testing.T) {
	f := setup(t)
	location := models.LatLng{Latitude: 12.97, Longitude: 77.64}

	f.stores.EXPECT().
		NearbyStores(gomock.Any(), location, usecase.DefaultStoreSearchRadiusKm, 5).
		Return([]models.Store{{Name: "Mart A"}}, nil)

	stores, err := f.uc.NearbyStores(context.Background(), location, 5)
	require.NoError(t, err)
	assert.Len(t, stores, 1)
}

func TestNearbyStores_InvalidCoordinates(t *testing.T) {
	f := setup(t)

	_, err := f.uc.NearbyStores(context.Background(), models.LatLng{Latitude: 91, Longitude: 0}, 5)
	assert.Error(t, err)
}

func TestRegisterStore_Validation(t *testing.T) {
	f := setup(t)

	err := f.uc.RegisterStore(context.Background(), &models.Store{
		ID:       uuid.New(),
		Name:     "",
		Latitude: 12.97, Longitude: 77.64,
	})
	assert.Error(t, err)

	err = f.uc.RegisterStore(context.Background(), &models.Store{
		ID:       uuid.New(),
		Name:     "Mart A",
		Latitude: 123, Longitude: 77.64,
	})
	assert.Error(t, err)
}

package tracking

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokamart/lokamart/internal/pkg/jwt"
	"github.com/lokamart/lokamart/internal/pkg/models"
)

type viewRecorder struct {
	mu    sync.Mutex
	views []models.OrderView
}

func (r *viewRecorder) record(view models.OrderView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, view)
}

func (r *viewRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

func (r *viewRecorder) last() models.OrderView {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.views[len(r.views)-1]
}

func strPtr(s string) *string { return &s }

func TestSession_SimulatedViewsPerTick(t *testing.T) {
	clock := NewManualClock()
	rec := &viewRecorder{}

	session := NewSession(deliveryOrder(models.StatusPacking), jwt.AccountTypeDemo, clock, nil, models.TrackingConfig{}, rec.record)
	session.Start()

	clock.Advance(3)
	require.Equal(t, 3, rec.count())

	view := rec.last()
	assert.Equal(t, models.StatusPacking, view.Status)
	assert.Equal(t, 1, view.CurrentStep)
	require.NotNil(t, view.DriverPosition)
}

func TestSession_StickyPosition(t *testing.T) {
	clock := NewManualClock()
	rec := &viewRecorder{}

	order := deliveryOrder(models.StatusOnTheWay)
	session := NewSession(order, jwt.AccountTypeDemo, clock, nil, models.TrackingConfig{}, rec.record)
	session.Start()

	clock.Advance(1)
	require.NotNil(t, rec.last().DriverPosition)
	moving := *rec.last().DriverPosition

	// A status the source won't sample for: the last position stays
	tearDown := session.ApplyUpdate(models.OrderUpdate{
		OrderID: session.OrderID(),
		Status:  strPtr("PLACED"),
	})
	assert.False(t, tearDown)

	view := session.View()
	require.NotNil(t, view.DriverPosition)
	assert.Equal(t, moving.Latitude, view.DriverPosition.Latitude)
}

func TestSession_PushDisablesSimulationForRealAccounts(t *testing.T) {
	clock := NewManualClock()
	rec := &viewRecorder{}

	session := NewSession(deliveryOrder(models.StatusOnTheWay), jwt.AccountTypeReal, clock, nil, models.TrackingConfig{}, rec.record)
	session.Start()

	pushed := models.Position{Latitude: 12.9755, Longitude: 77.6430, Timestamp: models.Now()}
	session.ApplyUpdate(models.OrderUpdate{
		OrderID:        session.OrderID(),
		DriverPosition: &pushed,
	})

	// Later ticks must not overwrite the device report with synthesis
	clock.Advance(5)
	view := session.View()
	require.NotNil(t, view.DriverPosition)
	assert.Equal(t, pushed.Latitude, view.DriverPosition.Latitude)
	assert.Equal(t, pushed.Longitude, view.DriverPosition.Longitude)
}

func TestSession_DemoAccountsIgnoreTelemetryPrecedence(t *testing.T) {
	clock := NewManualClock()
	rec := &viewRecorder{}

	session := NewSession(deliveryOrder(models.StatusOnTheWay), jwt.AccountTypeDemo, clock, nil, models.TrackingConfig{}, rec.record)
	session.Start()

	pushed := models.Position{Latitude: 1.0, Longitude: 1.0, Timestamp: models.Now()}
	session.ApplyUpdate(models.OrderUpdate{OrderID: session.OrderID(), DriverPosition: &pushed})

	clock.Advance(1)
	view := session.View()
	require.NotNil(t, view.DriverPosition)
	assert.NotEqual(t, pushed.Latitude, view.DriverPosition.Latitude, "demo sessions keep simulating")
}

func TestSession_TerminalStatusTearsDown(t *testing.T) {
	clock := NewManualClock()
	rec := &viewRecorder{}

	session := NewSession(deliveryOrder(models.StatusOnTheWay), jwt.AccountTypeDemo, clock, nil, models.TrackingConfig{}, rec.record)
	session.Start()
	clock.Advance(1)

	tearDown := session.ApplyUpdate(models.OrderUpdate{
		OrderID: session.OrderID(),
		Status:  strPtr("DELIVERED"),
	})
	require.True(t, tearDown)

	// The final view carries the terminal status with position cleared
	view := rec.last()
	assert.Equal(t, models.StatusDelivered, view.Status)
	assert.Nil(t, view.DriverPosition)
	assert.Equal(t, 1.0, view.Progress)

	// The clock keeps ticking; the released session stays silent
	before := rec.count()
	clock.Advance(10)
	assert.Equal(t, before, rec.count())
}

func TestSession_ReleaseIdempotent(t *testing.T) {
	clock := NewManualClock()
	rec := &viewRecorder{}

	session := NewSession(deliveryOrder(models.StatusPacking), jwt.AccountTypeDemo, clock, nil, models.TrackingConfig{}, rec.record)
	session.Start()

	session.Release()
	session.Release()

	clock.Advance(3)
	assert.Zero(t, rec.count())

	assert.False(t, session.ApplyUpdate(models.OrderUpdate{
		OrderID: session.OrderID(),
		Status:  strPtr("DELIVERED"),
	}))
}

func TestSession_SeededPositionMarksTelemetry(t *testing.T) {
	clock := NewManualClock()
	rec := &viewRecorder{}

	order := deliveryOrder(models.StatusOnTheWay)
	seeded := models.Position{Latitude: 12.9760, Longitude: 77.6440, Timestamp: models.Now()}
	order.DriverPosition = &seeded

	session := NewSession(order, jwt.AccountTypeReal, clock, nil, models.TrackingConfig{}, rec.record)
	session.Start()

	clock.Advance(3)
	view := session.View()
	require.NotNil(t, view.DriverPosition)
	assert.Equal(t, seeded.Latitude, view.DriverPosition.Latitude)
}

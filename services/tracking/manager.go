package tracking

import (
	"context"
	"fmt"
	"sync"

	"github.com/lokamart/lokamart/internal/pkg/logger"
	"github.com/lokamart/lokamart/internal/pkg/models"
	"github.com/lokamart/lokamart/internal/utils"
)

// subscriberBuffer bounds each observer channel; a slow consumer drops
// intermediate views rather than stalling the tick handler.
const subscriberBuffer = 8

type entry struct {
	session *Session
	subs    map[int64]chan models.OrderView
	nextSub int64
}

// Manager coordinates all live tracking sessions over one shared
// clock. One session exists per observed order, regardless of how many
// viewers watch it, so total clock subscriptions are bounded by the
// number of currently visible orders.
type Manager struct {
	clock     Clock
	orders    OrderProvider
	positions PositionRepo
	cfg       models.TrackingConfig

	mu      sync.Mutex
	entries map[string]*entry
}

// NewManager creates a tracking manager on the given shared clock
func NewManager(clock Clock, orders OrderProvider, positions PositionRepo, cfg models.TrackingConfig) *Manager {
	return &Manager{
		clock:     clock,
		orders:    orders,
		positions: positions,
		cfg:       cfg,
		entries:   make(map[string]*entry),
	}
}

// Observe starts (or joins) live tracking of an order and returns a
// stream of merged views plus a cancel function. The first view is
// emitted immediately; cancel is idempotent and releases the
// underlying session when the last observer leaves.
func (m *Manager) Observe(ctx context.Context, orderID, accountType string, deviceLocation *models.LatLng) (<-chan models.OrderView, func(), error) {
	m.mu.Lock()
	e, ok := m.entries[orderID]
	if ok {
		return m.addSubscriberLocked(orderID, e)
	}
	m.mu.Unlock()

	order, err := m.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load order %s: %w", orderID, err)
	}

	// Seed the sticky last-known position so a rejoining viewer
	// doesn't start blank.
	if order.DriverPosition == nil {
		if pos, err := m.positions.GetPosition(ctx, orderID); err == nil && pos != nil && utils.IsValidLatLng(pos.LatLng()) {
			order.DriverPosition = pos
		}
	}

	m.mu.Lock()
	if e, ok = m.entries[orderID]; !ok {
		e = &entry{subs: make(map[int64]chan models.OrderView)}
		e.session = NewSession(*order, accountType, m.clock, deviceLocation, m.cfg, func(view models.OrderView) {
			m.broadcast(orderID, view)
		})
		m.entries[orderID] = e
		e.session.Start()
	}
	return m.addSubscriberLocked(orderID, e)
}

// addSubscriberLocked registers a new observer on the entry and
// releases m.mu before emitting the initial snapshot.
func (m *Manager) addSubscriberLocked(orderID string, e *entry) (<-chan models.OrderView, func(), error) {
	subID := e.nextSub
	e.nextSub++
	ch := make(chan models.OrderView, subscriberBuffer)
	e.subs[subID] = ch
	m.mu.Unlock()

	// Initial snapshot so the viewer renders before the next tick
	send(ch, e.session.View())

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			m.removeSubscriber(orderID, subID)
		})
	}

	return ch, cancel, nil
}

// HandleOrderUpdate merges a pushed partial order record into the
// matching session, if one is live. Updates for unobserved orders are
// ignored; there is no state to keep fresh.
func (m *Manager) HandleOrderUpdate(update models.OrderUpdate) {
	m.mu.Lock()
	e, ok := m.entries[update.OrderID]
	m.mu.Unlock()
	if !ok {
		return
	}

	if tornDown := e.session.ApplyUpdate(update); tornDown {
		if err := m.positions.ClearPosition(context.Background(), update.OrderID); err != nil {
			logger.Warn("Failed to clear sticky position",
				logger.String("order_id", update.OrderID),
				logger.Err(err))
		}
		m.closeEntry(update.OrderID)
	}
}

// HandleTelemetry stores an authoritative device report and merges it
// into the live session for the order, if any. Invalid coordinates are
// discarded silently per the permissive-input policy.
func (m *Manager) HandleTelemetry(ctx context.Context, update models.TelemetryUpdate) {
	if !utils.IsValidLatLng(update.Position.LatLng()) {
		logger.Debug("Discarding telemetry with invalid coordinates",
			logger.String("order_id", update.OrderID))
		return
	}

	if err := m.positions.StorePosition(ctx, update.OrderID, update.Position); err != nil {
		logger.Warn("Failed to store driver position",
			logger.String("order_id", update.OrderID),
			logger.Err(err))
		// In-memory merge still proceeds; stickiness degrades, tracking doesn't
	}

	m.mu.Lock()
	e, ok := m.entries[update.OrderID]
	m.mu.Unlock()
	if !ok {
		return
	}

	pos := update.Position
	e.session.ApplyUpdate(models.OrderUpdate{
		OrderID:        update.OrderID,
		DriverPosition: &pos,
	})
}

// ActiveSessions returns the number of live sessions
func (m *Manager) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Close releases every session and closes all observer streams
func (m *Manager) Close() {
	m.mu.Lock()
	ids := make([]string, 0, len(m.entries))
	for id := range m.entries {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	for _, id := range ids {
		m.closeEntry(id)
	}
}

func (m *Manager) broadcast(orderID string, view models.OrderView) {
	m.mu.Lock()
	e, ok := m.entries[orderID]
	if !ok {
		m.mu.Unlock()
		return
	}
	chans := make([]chan models.OrderView, 0, len(e.subs))
	for _, ch := range e.subs {
		chans = append(chans, ch)
	}
	m.mu.Unlock()

	for _, ch := range chans {
		send(ch, view)
	}
}

func (m *Manager) removeSubscriber(orderID string, subID int64) {
	m.mu.Lock()
	e, ok := m.entries[orderID]
	if !ok {
		m.mu.Unlock()
		return
	}

	if ch, exists := e.subs[subID]; exists {
		delete(e.subs, subID)
		close(ch)
	}

	last := len(e.subs) == 0
	if last {
		delete(m.entries, orderID)
	}
	m.mu.Unlock()

	if last {
		e.session.Release()
	}
}

func (m *Manager) closeEntry(orderID string) {
	m.mu.Lock()
	e, ok := m.entries[orderID]
	if ok {
		delete(m.entries, orderID)
	}
	m.mu.Unlock()
	if !ok {
		return
	}

	e.session.Release()
	for _, ch := range e.subs {
		close(ch)
	}
}

// send delivers a view without ever blocking the tick handler
func send(ch chan models.OrderView, view models.OrderView) {
	select {
	case ch <- view:
	default:
	}
}

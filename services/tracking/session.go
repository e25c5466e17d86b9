package tracking

import (
	"sync"

	"github.com/lokamart/lokamart/internal/pkg/jwt"
	"github.com/lokamart/lokamart/internal/pkg/models"
	"github.com/lokamart/lokamart/internal/utils"
	"github.com/lokamart/lokamart/services/order/statemachine"
)

// ViewFunc receives merged order views as they are produced
type ViewFunc func(view models.OrderView)

// Session owns the live-tracking lifecycle of exactly one order: the
// bound position source, the clock subscription and the in-memory
// order view. The session is the order's single writer; subscribers
// only ever see complete views.
type Session struct {
	orderID     string
	accountType string

	real PositionSource
	sim  PositionSource

	clock  Clock
	notify ViewFunc

	mu            sync.Mutex
	order         models.Order
	telemetrySeen bool
	released      bool
}

// NewSession creates a session for the order. The order value is an
// owned copy; deviceLocation, when known, seeds the simulated
// destination. The account type decides the position source once, at
// creation.
func NewSession(order models.Order, accountType string, clock Clock, deviceLocation *models.LatLng, cfg models.TrackingConfig, notify ViewFunc) *Session {
	s := &Session{
		orderID:     order.ID.String(),
		accountType: accountType,
		real:        NewRealPositionSource(),
		sim:         NewSimulatedPositionSource(order.ID.String(), deviceLocation, cfg),
		clock:       clock,
		notify:      notify,
		order:       order,
	}

	// A seeded position came from a device report; telemetry is
	// already authoritative for this order.
	if order.DriverPosition != nil {
		s.telemetrySeen = true
	}

	return s
}

// OrderID returns the tracked order's identifier
func (s *Session) OrderID() string {
	return s.orderID
}

// Start attaches the session to the shared clock
func (s *Session) Start() {
	s.clock.Subscribe(s.orderID, s.onTick)
}

// source picks the bound position source. Demo accounts always
// simulate; real accounts use authoritative telemetry once any has
// arrived and simulate until then.
func (s *Session) source() PositionSource {
	if s.accountType == jwt.AccountTypeDemo {
		return s.sim
	}
	if s.telemetrySeen {
		return s.real
	}
	return s.sim
}

func (s *Session) onTick(tick int64) {
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		return
	}

	if pos, ok := s.source().Sample(&s.order, tick); ok {
		p := pos
		s.order.DriverPosition = &p
	}
	// Absent samples leave the previous position in place (sticky)

	view := s.buildView()
	notify := s.notify
	s.mu.Unlock()

	if notify != nil {
		notify(view)
	}
}

// ApplyUpdate merges a pushed partial order record into the session.
// Pushed driver positions are authoritative and permanently disable
// the simulated fallback for real accounts. Returns true when the
// update moved the order into a terminal or non-trackable state and
// the session tore itself down.
func (s *Session) ApplyUpdate(update models.OrderUpdate) bool {
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		return false
	}

	if update.DriverPosition != nil && utils.IsValidLatLng(update.DriverPosition.LatLng()) {
		p := *update.DriverPosition
		s.order.DriverPosition = &p
		s.telemetrySeen = true
	}

	tearDown := false
	if update.Status != nil {
		newStatus := models.ParseStatus(*update.Status)
		if newStatus != s.order.Status {
			s.order.Status = newStatus
			if newStatus.IsTerminal() || (newStatus != models.StatusPlaced && !trackable(newStatus, s.order.Mode)) {
				s.order.DriverPosition = nil
				tearDown = true
			}
		}
	}

	view := s.buildView()
	notify := s.notify
	s.mu.Unlock()

	if notify != nil {
		notify(view)
	}
	if tearDown {
		s.Release()
	}
	return tearDown
}

// View returns the current merged view of the order
func (s *Session) View() models.OrderView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildView()
}

// buildView must be called with s.mu held
func (s *Session) buildView() models.OrderView {
	progress := statemachine.Classify(string(s.order.Status), s.order.Mode)

	view := models.OrderView{
		OrderID:     s.orderID,
		Mode:        s.order.Mode,
		Status:      s.order.Status,
		Steps:       progress.Steps,
		CurrentStep: progress.CurrentIndex,
		Progress:    progress.Fraction,
	}
	if s.order.DriverPosition != nil {
		p := *s.order.DriverPosition
		view.DriverPosition = &p
	}
	return view
}

// Release detaches the session from the clock. Idempotent; once it
// returns, no further views are delivered even if the clock keeps
// ticking.
func (s *Session) Release() {
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		return
	}
	s.released = true
	s.mu.Unlock()

	s.clock.Unsubscribe(s.orderID)
}

// trackable reports whether a rider position is meaningful for the
// status under the given mode.
func trackable(status models.OrderStatus, mode models.Mode) bool {
	switch status {
	case models.StatusPacking:
		return true
	case models.StatusOnTheWay:
		return mode == models.ModeDelivery
	}
	return false
}

package tracking

import (
	"time"

	"github.com/lokamart/lokamart/internal/pkg/models"
	"github.com/lokamart/lokamart/internal/utils"
)

// Defaults for the simulated animation loop. The degree offsets are
// demo placeholders for the rider start and fallback destination
// points; tune them through TrackingConfig, they carry no routing
// meaning.
const (
	DefaultSimLoopTicks    = int64(60)
	DefaultPickupOffsetDeg = 0.005
	DefaultFallbackDestDeg = 0.01
)

// RealPositionSource relays authoritative telemetry already merged
// into the order. No interpolation, no smoothing; the device report is
// ground truth.
type RealPositionSource struct{}

// NewRealPositionSource creates a pass-through source for live telemetry
func NewRealPositionSource() *RealPositionSource {
	return &RealPositionSource{}
}

// Sample returns the order's last-known driver position, or absent if
// none has ever arrived.
func (s *RealPositionSource) Sample(order *models.Order, _ int64) (models.Position, bool) {
	if order.DriverPosition == nil {
		return models.Position{}, false
	}
	if !utils.IsValidLatLng(order.DriverPosition.LatLng()) {
		return models.Position{}, false
	}
	return *order.DriverPosition, true
}

// SimulatedPositionSource synthesizes deterministic rider motion for
// demo accounts and for orders with no live telemetry. Position is a
// pure function of (tick + offset) mod loop, so the same order at the
// same tick always yields the same sample.
type SimulatedPositionSource struct {
	offset          int64
	loopTicks       int64
	pickupOffsetDeg float64
	fallbackDestDeg float64
	deviceLocation  *models.LatLng
	now             func() time.Time
}

// NewSimulatedPositionSource creates a simulated source for the order.
// deviceLocation, when known, is preferred as the delivery destination
// over the checkout address.
func NewSimulatedPositionSource(orderID string, deviceLocation *models.LatLng, cfg models.TrackingConfig) *SimulatedPositionSource {
	loopTicks := cfg.SimLoopTicks
	if loopTicks <= 0 {
		loopTicks = DefaultSimLoopTicks
	}
	pickupOffset := cfg.PickupOffsetDeg
	if pickupOffset == 0 {
		pickupOffset = DefaultPickupOffsetDeg
	}
	fallbackDest := cfg.FallbackDestDeg
	if fallbackDest == 0 {
		fallbackDest = DefaultFallbackDestDeg
	}

	return &SimulatedPositionSource{
		offset:          PhaseOffset(orderID, loopTicks),
		loopTicks:       loopTicks,
		pickupOffsetDeg: pickupOffset,
		fallbackDestDeg: fallbackDest,
		deviceLocation:  deviceLocation,
		now:             models.Now,
	}
}

// PhaseOffset derives a per-order tick offset from the order
// identifier so concurrently tracked demo orders animate out of phase.
func PhaseOffset(orderID string, loopTicks int64) int64 {
	if loopTicks <= 0 {
		loopTicks = DefaultSimLoopTicks
	}
	return int64(len(orderID)) % loopTicks
}

// Sample synthesizes a position for the order's current phase. Absent
// outside the packing and delivery phases, and whenever an input
// coordinate is invalid.
func (s *SimulatedPositionSource) Sample(order *models.Order, tick int64) (models.Position, bool) {
	store := order.StoreLocation
	if !utils.IsValidLatLng(store) {
		return models.Position{}, false
	}

	var start, end models.LatLng
	switch order.Status {
	case models.StatusPacking:
		// Rider arriving at the store
		start = models.LatLng{
			Latitude:  store.Latitude + s.pickupOffsetDeg,
			Longitude: store.Longitude + s.pickupOffsetDeg,
		}
		end = store
	case models.StatusOnTheWay:
		if order.Mode != models.ModeDelivery {
			return models.Position{}, false
		}
		start = store
		end = s.destination(order)
	default:
		return models.Position{}, false
	}

	if !utils.IsValidLatLng(start) || !utils.IsValidLatLng(end) {
		return models.Position{}, false
	}

	progress := float64((tick+s.offset)%s.loopTicks) / float64(s.loopTicks)
	point := Interpolate(start, end, progress)

	return models.Position{
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
		Timestamp: s.now(),
	}, true
}

// destination picks the delivery end point: a fresh device location if
// one was detected, else the checkout address, else a synthetic point
// offset from the store.
func (s *SimulatedPositionSource) destination(order *models.Order) models.LatLng {
	if s.deviceLocation != nil && utils.IsValidLatLng(*s.deviceLocation) {
		return *s.deviceLocation
	}
	if order.CustomerLocation != nil && utils.IsValidLatLng(*order.CustomerLocation) {
		return *order.CustomerLocation
	}
	return models.LatLng{
		Latitude:  order.StoreLocation.Latitude + s.fallbackDestDeg,
		Longitude: order.StoreLocation.Longitude + s.fallbackDestDeg,
	}
}

// Interpolate returns the point at the given fraction of the way from
// start to end. Progress is clamped to [0, 1], so progress 1 lands on
// end exactly.
func Interpolate(start, end models.LatLng, progress float64) models.LatLng {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}

	return models.LatLng{
		Latitude:  start.Latitude + (end.Latitude-start.Latitude)*progress,
		Longitude: start.Longitude + (end.Longitude-start.Longitude)*progress,
	}
}

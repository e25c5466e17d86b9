// Package device wraps the external device-location API: it maps raw
// failures onto user-facing categories and filters low-quality samples
// out of the continuous watch stream.
package device

import (
	"context"
	"errors"
	"fmt"

	"github.com/lokamart/lokamart/internal/pkg/models"
	"github.com/lokamart/lokamart/internal/utils"
)

// DefaultMaxAccuracy is the worst acceptable accuracy for a watched
// sample; anything above it is discarded.
const DefaultMaxAccuracy = 100.0

// Sentinel errors reported by Locator implementations
var (
	ErrPermissionDenied  = errors.New("location permission denied")
	ErrSignalUnavailable = errors.New("location signal unavailable")
	ErrTimeout           = errors.New("location request timed out")
)

// Category is the user-facing classification of a device failure
type Category string

const (
	CategoryPermission Category = "permission"
	CategorySignal     Category = "signal"
	CategoryTimeout    Category = "timeout"
)

// Categorize maps a device error onto its user-facing category.
// Anything unrecognized reads as a signal problem.
func Categorize(err error) Category {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return CategoryPermission
	case errors.Is(err, ErrTimeout):
		return CategoryTimeout
	default:
		return CategorySignal
	}
}

// Locator is the external device-location API
type Locator interface {
	// CurrentPosition performs a one-shot high-accuracy lookup
	CurrentPosition(ctx context.Context) (models.Position, error)
	// WatchPosition starts a continuous stream and returns a watch id
	WatchPosition(onPosition func(models.Position), onError func(error)) (string, error)
	// ClearWatch stops the stream started under the watch id
	ClearWatch(watchID string)
}

// Lookup performs a one-shot device lookup. All failures surface,
// including timeouts, wrapped with their category.
func Lookup(ctx context.Context, locator Locator) (models.Position, error) {
	pos, err := locator.CurrentPosition(ctx)
	if err != nil {
		return models.Position{}, fmt.Errorf("device location %s: %w", Categorize(err), err)
	}
	if !utils.IsValidLatLng(pos.LatLng()) {
		return models.Position{}, fmt.Errorf("device location %s: %w", CategorySignal, ErrSignalUnavailable)
	}
	return pos, nil
}

// Watcher filters a continuous device stream: samples with accuracy
// worse than maxAccuracy or invalid coordinates are dropped, timeout
// errors are suppressed as transient, and everything else surfaces as
// a categorized condition.
type Watcher struct {
	locator     Locator
	maxAccuracy float64
	watchID     string
}

// NewWatcher creates a watcher over the locator
func NewWatcher(locator Locator, maxAccuracy float64) *Watcher {
	if maxAccuracy <= 0 {
		maxAccuracy = DefaultMaxAccuracy
	}
	return &Watcher{locator: locator, maxAccuracy: maxAccuracy}
}

// Start begins watching. onPosition receives only valid, sufficiently
// accurate samples; onError receives non-timeout failure categories.
func (w *Watcher) Start(onPosition func(models.Position), onError func(Category)) error {
	watchID, err := w.locator.WatchPosition(
		func(pos models.Position) {
			if pos.Accuracy > w.maxAccuracy {
				return
			}
			if !utils.IsValidLatLng(pos.LatLng()) {
				return
			}
			onPosition(pos)
		},
		func(err error) {
			if errors.Is(err, ErrTimeout) {
				// Transient; the next sample will come or not
				return
			}
			onError(Categorize(err))
		},
	)
	if err != nil {
		return fmt.Errorf("failed to start device watch: %w", err)
	}

	w.watchID = watchID
	return nil
}

// Stop ends the watch. Safe to call before Start or more than once.
func (w *Watcher) Stop() {
	if w.watchID == "" {
		return
	}
	w.locator.ClearWatch(w.watchID)
	w.watchID = ""
}

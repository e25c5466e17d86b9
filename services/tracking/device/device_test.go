package device

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokamart/lokamart/internal/pkg/models"
)

type fakeLocator struct {
	current    models.Position
	currentErr error

	onPosition func(models.Position)
	onError    func(error)
	watchErr   error
	cleared    []string
}

func (f *fakeLocator) CurrentPosition(ctx context.Context) (models.Position, error) {
	return f.current, f.currentErr
}

func (f *fakeLocator) WatchPosition(onPosition func(models.Position), onError func(error)) (string, error) {
	if f.watchErr != nil {
		return "", f.watchErr
	}
	f.onPosition = onPosition
	f.onError = onError
	return "watch-1", nil
}

func (f *fakeLocator) ClearWatch(watchID string) {
	f.cleared = append(f.cleared, watchID)
}

func TestCategorize(t *testing.T) {
	assert.Equal(t, CategoryPermission, Categorize(ErrPermissionDenied))
	assert.Equal(t, CategoryTimeout, Categorize(ErrTimeout))
	assert.Equal(t, CategorySignal, Categorize(ErrSignalUnavailable))
	assert.Equal(t, CategorySignal, Categorize(errors.New("something else")))
}

func TestLookup_Success(t *testing.T) {
	locator := &fakeLocator{
		current: models.Position{Latitude: 12.9716, Longitude: 77.5946, Accuracy: 5},
	}

	pos, err := Lookup(context.Background(), locator)
	require.NoError(t, err)
	assert.InDelta(t, 12.9716, pos.Latitude, 1e-9)
}

func TestLookup_TimeoutSurfaces(t *testing.T) {
	locator := &fakeLocator{currentErr: ErrTimeout}

	_, err := Lookup(context.Background(), locator)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout))
	assert.Contains(t, err.Error(), string(CategoryTimeout))
}

func TestLookup_InvalidCoordinates(t *testing.T) {
	locator := &fakeLocator{
		current: models.Position{Latitude: 120, Longitude: 77.5946},
	}

	_, err := Lookup(context.Background(), locator)
	assert.Error(t, err)
}

func TestWatcher_FiltersInaccurateSamples(t *testing.T) {
	locator := &fakeLocator{}
	watcher := NewWatcher(locator, DefaultMaxAccuracy)

	var received []models.Position
	require.NoError(t, watcher.Start(func(pos models.Position) {
		received = append(received, pos)
	}, func(Category) {
		t.Fatal("unexpected error callback")
	}))

	locator.onPosition(models.Position{Latitude: 12.97, Longitude: 77.59, Accuracy: 50})
	locator.onPosition(models.Position{Latitude: 12.98, Longitude: 77.60, Accuracy: 150}) // too coarse
	locator.onPosition(models.Position{Latitude: 95, Longitude: 77.61, Accuracy: 10})     // invalid latitude

	require.Len(t, received, 1)
	assert.InDelta(t, 12.97, received[0].Latitude, 1e-9)
}

func TestWatcher_SuppressesTimeouts(t *testing.T) {
	locator := &fakeLocator{}
	watcher := NewWatcher(locator, 0)

	var categories []Category
	require.NoError(t, watcher.Start(func(models.Position) {}, func(c Category) {
		categories = append(categories, c)
	}))

	locator.onError(ErrTimeout)
	locator.onError(ErrPermissionDenied)
	locator.onError(errors.New("gps glitch"))

	assert.Equal(t, []Category{CategoryPermission, CategorySignal}, categories)
}

func TestWatcher_Stop(t *testing.T) {
	locator := &fakeLocator{}
	watcher := NewWatcher(locator, 0)

	require.NoError(t, watcher.Start(func(models.Position) {}, func(Category) {}))
	watcher.Stop()
	watcher.Stop() // idempotent

	assert.Equal(t, []string{"watch-1"}, locator.cleared)
}

func TestWatcher_StartFailure(t *testing.T) {
	locator := &fakeLocator{watchErr: ErrPermissionDenied}
	watcher := NewWatcher(locator, 0)

	err := watcher.Start(func(models.Position) {}, func(Category) {})
	assert.Error(t, err)
}

package tracking

import (
	"sync"
	"time"
)

// TickFunc is invoked with the current tick number
type TickFunc func(tick int64)

// Clock drives all tracking sessions from a single shared tick stream.
// Implementations invoke subscribers synchronously; handlers must
// return well within the tick period.
type Clock interface {
	Subscribe(id string, fn TickFunc)
	Unsubscribe(id string)
}

// TickerClock is the production Clock, backed by a time.Ticker
type TickerClock struct {
	mu      sync.Mutex
	subs    map[string]TickFunc
	tick    int64
	ticker  *time.Ticker
	done    chan struct{}
	stopped bool
}

// NewTickerClock creates and starts a clock ticking at the given interval
func NewTickerClock(interval time.Duration) *TickerClock {
	if interval <= 0 {
		interval = time.Second
	}

	c := &TickerClock{
		subs:   make(map[string]TickFunc),
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}

	go c.run()
	return c
}

func (c *TickerClock) run() {
	for {
		select {
		case <-c.done:
			return
		case <-c.ticker.C:
			c.dispatch()
		}
	}
}

func (c *TickerClock) dispatch() {
	c.mu.Lock()
	c.tick++
	tick := c.tick
	fns := make([]TickFunc, 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(tick)
	}
}

// Subscribe registers a tick handler under the given id, replacing any
// previous handler with the same id.
func (c *TickerClock) Subscribe(id string, fn TickFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs[id] = fn
}

// Unsubscribe removes the handler registered under id
func (c *TickerClock) Unsubscribe(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.subs, id)
}

// Stop halts the clock. Safe to call more than once.
func (c *TickerClock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.stopped = true
	c.ticker.Stop()
	close(c.done)
}

// ManualClock is a Clock advanced explicitly by tests
type ManualClock struct {
	mu   sync.Mutex
	subs map[string]TickFunc
	tick int64
}

// NewManualClock creates a manual clock starting at tick 0
func NewManualClock() *ManualClock {
	return &ManualClock{subs: make(map[string]TickFunc)}
}

// Subscribe registers a tick handler under the given id
func (c *ManualClock) Subscribe(id string, fn TickFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs[id] = fn
}

// Unsubscribe removes the handler registered under id
func (c *ManualClock) Unsubscribe(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.subs, id)
}

// Advance moves the clock forward n ticks, dispatching synchronously
func (c *ManualClock) Advance(n int64) {
	for i := int64(0); i < n; i++ {
		c.mu.Lock()
		c.tick++
		tick := c.tick
		fns := make([]TickFunc, 0, len(c.subs))
		for _, fn := range c.subs {
			fns = append(fns, fn)
		}
		c.mu.Unlock()

		for _, fn := range fns {
			fn(tick)
		}
	}
}

// Tick returns the current tick number
func (c *ManualClock) Tick() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tick
}

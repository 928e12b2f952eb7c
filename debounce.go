package funtils

import (
	"context"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
)

// Metric keys for Debouncer observability.
const (
	DebounceScheduledTotal  = metricz.Key("debounce.scheduled.total")
	DebounceSupersededTotal = metricz.Key("debounce.superseded.total")
	DebounceFiredTotal      = metricz.Key("debounce.fired.total")
)

// Hook event keys for Debouncer.
const (
	DebounceEventFired = hookz.Key("debounce.fired")
)

// DebounceEvent represents one trailing invocation of the debounced
// function. It is emitted via hookz after the function returns.
type DebounceEvent struct {
	Name      Name      // Debouncer name
	Args      []any     // Arguments of the winning call
	Timestamp time.Time // When the invocation fired
}

// Debouncer collapses rapid repeated calls into a single trailing
// invocation. Each Call cancels any pending invocation and schedules a new
// one for delay in the future with the latest call's arguments; only the
// final call of a burst executes the function, exactly once, after the
// window elapses with no further calls. Call itself never blocks and has no
// synchronous side effect beyond (re)scheduling.
//
// CRITICAL: Debouncer is a STATEFUL component holding the pending timer.
// Create it once and share it; a fresh Debouncer per call never collapses
// anything.
//
// The clock is injectable for deterministic tests:
//
//	clock := clockz.NewFakeClock()
//	d := funtils.NewDebouncer("save", persist, time.Second).WithClock(clock)
//	d.Call(doc)
//	clock.Advance(time.Second) // fires persist(doc)
//
// # Observability
//
// Metrics:
//   - debounce.scheduled.total: Counter of Call invocations
//   - debounce.superseded.total: Counter of pending invocations canceled by a later Call
//   - debounce.fired.total: Counter of trailing invocations that executed
//
// Events (via hooks):
//   - debounce.fired: Fired after each trailing invocation completes
type Debouncer struct {
	name    Name
	fn      func(args ...any)
	delay   time.Duration
	clock   clockz.Clock
	mu      sync.Mutex
	pending chan struct{}

	// Observability
	metrics *metricz.Registry
	hooks   *hookz.Hooks[DebounceEvent]
}

// NewDebouncer creates a Debouncer that invokes fn with the latest call's
// arguments once delay has elapsed without another Call.
func NewDebouncer(name Name, fn func(args ...any), delay time.Duration) *Debouncer {
	registry := metricz.New()
	registry.Counter(DebounceScheduledTotal)
	registry.Counter(DebounceSupersededTotal)
	registry.Counter(DebounceFiredTotal)

	return &Debouncer{
		name:    name,
		fn:      fn,
		delay:   delay,
		metrics: registry,
		hooks:   hookz.New[DebounceEvent](),
	}
}

// Call schedules a trailing invocation with args, superseding any pending
// one. At most one invocation is pending at a time.
func (d *Debouncer) Call(args ...any) {
	d.mu.Lock()
	if d.pending != nil {
		close(d.pending)
		d.metrics.Counter(DebounceSupersededTotal).Inc()
	}
	cancel := make(chan struct{})
	d.pending = cancel
	clock := d.getClockLocked()
	delay := d.delay
	d.mu.Unlock()

	d.metrics.Counter(DebounceScheduledTotal).Inc()

	go func() {
		select {
		case <-cancel:
			return
		case <-clock.After(delay):
		}

		// Only the latest generation may fire. The window between the
		// timer expiring and this check is covered by comparing the
		// pending channel under the lock.
		d.mu.Lock()
		if d.pending != cancel {
			d.mu.Unlock()
			return
		}
		d.pending = nil
		d.mu.Unlock()

		d.metrics.Counter(DebounceFiredTotal).Inc()
		d.fn(args...)

		_ = d.hooks.Emit(context.Background(), DebounceEventFired, DebounceEvent{ //nolint:errcheck
			Name:      d.name,
			Args:      args,
			Timestamp: time.Now(),
		})
	}()
}

// Stop cancels any pending invocation without executing it. Subsequent
// Calls schedule normally.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		close(d.pending)
		d.pending = nil
	}
}

// SetDelay updates the debounce window for future Calls. The pending
// invocation, if any, keeps its original window.
func (d *Debouncer) SetDelay(delay time.Duration) *Debouncer {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.delay = delay
	return d
}

// GetDelay returns the current debounce window.
func (d *Debouncer) GetDelay() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.delay
}

// Name returns the name of this debouncer.
func (d *Debouncer) Name() Name {
	return d.name
}

// Metrics returns the metrics registry for this debouncer.
func (d *Debouncer) Metrics() *metricz.Registry {
	return d.metrics
}

// OnFired registers a handler for trailing invocations. The handler is
// called asynchronously after the debounced function returns.
func (d *Debouncer) OnFired(handler func(context.Context, DebounceEvent) error) error {
	_, err := d.hooks.Hook(DebounceEventFired, handler)
	return err
}

// WithClock sets a custom clock for testing.
func (d *Debouncer) WithClock(clock clockz.Clock) *Debouncer {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clock = clock
	return d
}

// Close cancels any pending invocation and shuts down observability
// components.
func (d *Debouncer) Close() error {
	d.Stop()
	d.hooks.Close()
	return nil
}

// getClockLocked returns the clock to use. Callers must hold d.mu.
func (d *Debouncer) getClockLocked() clockz.Clock {
	if d.clock == nil {
		return clockz.RealClock
	}
	return d.clock
}

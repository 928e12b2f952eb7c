package funtils

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Metric keys for Memoizer observability.
const (
	MemoizeCallsTotal  = metricz.Key("memoize.calls.total")
	MemoizeHitsTotal   = metricz.Key("memoize.hits.total")
	MemoizeMissesTotal = metricz.Key("memoize.misses.total")
	MemoizeEntries     = metricz.Key("memoize.entries")
)

// Span names for Memoizer.
const (
	MemoizeCallSpan    = tracez.Key("memoize.call")
	MemoizeComputeSpan = tracez.Key("memoize.compute")
)

// Span tags for Memoizer.
const (
	MemoizeTagName = tracez.Tag("memoize.name")
	MemoizeTagKey  = tracez.Tag("memoize.key")
	MemoizeTagHit  = tracez.Tag("memoize.hit")

	// Hook event keys.
	MemoizeEventHit  = hookz.Key("memoize.hit")
	MemoizeEventMiss = hookz.Key("memoize.miss")
)

// MemoizeEvent represents a single cache lookup outcome. It is emitted via
// hookz on every call, allowing external systems to track cache efficiency.
type MemoizeEvent struct {
	Name      Name      // Memoizer name
	Key       string    // Serialized argument key
	Hit       bool      // Whether the cached result was used
	Entries   int       // Cache size after the call
	Timestamp time.Time // When the lookup occurred
}

// Memoizer caches the results of a variadic function, keyed by an order- and
// type-sensitive serialization of the full argument list. The cache is
// unbounded and never evicted; its lifetime is the lifetime of the Memoizer.
//
// CRITICAL: Memoizer is a STATEFUL component. Create it once and share it;
// building a new Memoizer per call gives every call an empty cache.
//
// A cached nil is indistinguishable from an absent entry, so a function
// whose legitimate result is nil is recomputed on every call. The miss
// counter makes the recomputation observable.
//
// # Observability
//
// Metrics:
//   - memoize.calls.total: Counter of lookups
//   - memoize.hits.total: Counter of calls served from cache
//   - memoize.misses.total: Counter of calls that invoked the function
//   - memoize.entries: Gauge of cache size
//
// Traces:
//   - memoize.call: Span for the full lookup
//   - memoize.compute: Span for the underlying function invocation (misses only)
//
// Events (via hooks):
//   - memoize.hit: Fired when a cached result is returned
//   - memoize.miss: Fired when the underlying function runs
//
// Example:
//
//	var fibMemo = funtils.NewMemoizer("fib", fib)
//
//	func fastFib(n int) int {
//	    return fibMemo.Call(n).(int)
//	}
type Memoizer struct {
	name  Name
	fn    Func
	cache map[string]any
	mu    sync.RWMutex

	// Observability
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[MemoizeEvent]
}

// NewMemoizer creates a Memoizer around fn. The name appears in emitted
// events and span tags.
func NewMemoizer(name Name, fn Func) *Memoizer {
	registry := metricz.New()
	registry.Counter(MemoizeCallsTotal)
	registry.Counter(MemoizeHitsTotal)
	registry.Counter(MemoizeMissesTotal)
	registry.Gauge(MemoizeEntries)

	return &Memoizer{
		name:    name,
		fn:      fn,
		cache:   make(map[string]any),
		metrics: registry,
		tracer:  tracez.New(),
		hooks:   hookz.New[MemoizeEvent](),
	}
}

// Memoize wraps fn with an anonymous Memoizer and returns its Call method.
// Use NewMemoizer directly when you need metrics, events, or cache
// inspection.
func Memoize(fn Func) Func {
	return NewMemoizer("memoize", fn).Call
}

// Call looks up the serialized argument list in the cache, invoking the
// underlying function only when no non-nil entry exists. Identical argument
// lists (same order, same types, same values) share one computation.
func (m *Memoizer) Call(args ...any) any {
	ctx, span := m.tracer.StartSpan(context.Background(), MemoizeCallSpan)
	defer span.Finish()
	span.SetTag(MemoizeTagName, string(m.name))

	key := memoKey(args)
	span.SetTag(MemoizeTagKey, key)

	m.metrics.Counter(MemoizeCallsTotal).Inc()

	m.mu.RLock()
	cached := m.cache[key]
	m.mu.RUnlock()

	// A nil entry is treated as absent. Functions that return nil are
	// therefore recomputed on every call.
	if cached != nil {
		m.metrics.Counter(MemoizeHitsTotal).Inc()
		span.SetTag(MemoizeTagHit, "true")

		m.mu.RLock()
		entries := len(m.cache)
		m.mu.RUnlock()

		_ = m.hooks.Emit(ctx, MemoizeEventHit, MemoizeEvent{ //nolint:errcheck
			Name:      m.name,
			Key:       key,
			Hit:       true,
			Entries:   entries,
			Timestamp: time.Now(),
		})
		return cached
	}

	m.metrics.Counter(MemoizeMissesTotal).Inc()
	span.SetTag(MemoizeTagHit, "false")

	_, computeSpan := m.tracer.StartSpan(ctx, MemoizeComputeSpan)
	result := m.fn(args...)
	computeSpan.Finish()

	m.mu.Lock()
	m.cache[key] = result
	entries := len(m.cache)
	m.mu.Unlock()

	m.metrics.Gauge(MemoizeEntries).Set(float64(entries))

	_ = m.hooks.Emit(ctx, MemoizeEventMiss, MemoizeEvent{ //nolint:errcheck
		Name:      m.name,
		Key:       key,
		Hit:       false,
		Entries:   entries,
		Timestamp: time.Now(),
	})
	return result
}

// Len returns the number of cached entries.
func (m *Memoizer) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cache)
}

// Name returns the name of this memoizer.
func (m *Memoizer) Name() Name {
	return m.name
}

// Metrics returns the metrics registry for this memoizer.
func (m *Memoizer) Metrics() *metricz.Registry {
	return m.metrics
}

// Tracer returns the tracer for this memoizer.
func (m *Memoizer) Tracer() *tracez.Tracer {
	return m.tracer
}

// OnHit registers a handler for calls served from the cache.
// The handler is called asynchronously after the lookup completes.
func (m *Memoizer) OnHit(handler func(context.Context, MemoizeEvent) error) error {
	_, err := m.hooks.Hook(MemoizeEventHit, handler)
	return err
}

// OnMiss registers a handler for calls that invoked the underlying function.
// The handler is called asynchronously after the computation completes.
func (m *Memoizer) OnMiss(handler func(context.Context, MemoizeEvent) error) error {
	_, err := m.hooks.Hook(MemoizeEventMiss, handler)
	return err
}

// Close gracefully shuts down observability components. The cache itself
// needs no teardown.
func (m *Memoizer) Close() error {
	if m.tracer != nil {
		m.tracer.Close()
	}
	m.hooks.Close()
	return nil
}

// memoKey builds an order- and type-sensitive key for an argument list.
// Each argument contributes its dynamic type and formatted value, so
// Call(1) and Call(int64(1)) occupy distinct entries. Rendered values are
// quote-escaped so that a value containing the segment separator cannot
// collide with a genuinely separate argument list.
func memoKey(args []any) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(';')
		}
		fmt.Fprintf(&b, "%T:%s", arg, strconv.Quote(fmt.Sprintf("%v", arg)))
	}
	return b.String()
}

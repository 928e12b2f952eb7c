package funtils

import (
	"context"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

func TestDebouncer(t *testing.T) {
	t.Run("Burst Collapses To One Trailing Call", func(t *testing.T) {
		var calls atomic.Int32
		var gotArgs []any
		var mu sync.Mutex
		fired := make(chan struct{}, 1)

		d := NewDebouncer("test", func(args ...any) {
			calls.Add(1)
			mu.Lock()
			gotArgs = args
			mu.Unlock()
			fired <- struct{}{}
		}, 100*time.Millisecond)
		defer d.Close()

		clock := clockz.NewFakeClock()
		d.WithClock(clock)

		d.Call("first")
		d.Call("second")

		// Let the scheduled goroutine register its timer
		time.Sleep(10 * time.Millisecond)
		clock.Advance(100 * time.Millisecond)
		clock.BlockUntilReady()

		select {
		case <-fired:
		case <-time.After(time.Second):
			t.Fatal("debounced function never fired")
		}

		if calls.Load() != 1 {
			t.Errorf("expected exactly 1 invocation, got %d", calls.Load())
		}
		mu.Lock()
		defer mu.Unlock()
		if !reflect.DeepEqual(gotArgs, []any{"second"}) {
			t.Errorf("expected the final call's args, got %v", gotArgs)
		}
	})

	t.Run("Call Resets The Window", func(t *testing.T) {
		var calls atomic.Int32
		fired := make(chan struct{}, 1)

		d := NewDebouncer("test", func(_ ...any) {
			calls.Add(1)
			fired <- struct{}{}
		}, 100*time.Millisecond)
		defer d.Close()

		clock := clockz.NewFakeClock()
		d.WithClock(clock)

		d.Call()
		time.Sleep(10 * time.Millisecond)

		// Half the window passes, then another call restarts it
		clock.Advance(50 * time.Millisecond)
		clock.BlockUntilReady()
		d.Call()
		time.Sleep(10 * time.Millisecond)

		// The original deadline passing must not fire anything
		clock.Advance(50 * time.Millisecond)
		clock.BlockUntilReady()
		time.Sleep(10 * time.Millisecond)
		if calls.Load() != 0 {
			t.Fatalf("fired before the restarted window elapsed")
		}

		clock.Advance(50 * time.Millisecond)
		clock.BlockUntilReady()
		select {
		case <-fired:
		case <-time.After(time.Second):
			t.Fatal("debounced function never fired")
		}
		if calls.Load() != 1 {
			t.Errorf("expected exactly 1 invocation, got %d", calls.Load())
		}
	})

	t.Run("Separate Bursts Fire Separately", func(t *testing.T) {
		var calls atomic.Int32
		fired := make(chan struct{}, 2)

		d := NewDebouncer("test", func(_ ...any) {
			calls.Add(1)
			fired <- struct{}{}
		}, 50*time.Millisecond)
		defer d.Close()

		clock := clockz.NewFakeClock()
		d.WithClock(clock)

		for i := 0; i < 2; i++ {
			d.Call(i)
			time.Sleep(10 * time.Millisecond)
			clock.Advance(50 * time.Millisecond)
			clock.BlockUntilReady()
			select {
			case <-fired:
			case <-time.After(time.Second):
				t.Fatalf("burst %d never fired", i)
			}
		}

		if calls.Load() != 2 {
			t.Errorf("expected 2 invocations, got %d", calls.Load())
		}
	})

	t.Run("Stop Cancels Pending", func(t *testing.T) {
		var calls atomic.Int32

		d := NewDebouncer("test", func(_ ...any) {
			calls.Add(1)
		}, 50*time.Millisecond)
		defer d.Close()

		clock := clockz.NewFakeClock()
		d.WithClock(clock)

		d.Call()
		time.Sleep(10 * time.Millisecond)
		d.Stop()

		clock.Advance(50 * time.Millisecond)
		clock.BlockUntilReady()
		time.Sleep(10 * time.Millisecond)

		if calls.Load() != 0 {
			t.Errorf("expected no invocations after Stop, got %d", calls.Load())
		}
	})

	t.Run("Metrics Track Scheduling", func(t *testing.T) {
		fired := make(chan struct{}, 1)
		d := NewDebouncer("test", func(_ ...any) {
			fired <- struct{}{}
		}, 50*time.Millisecond)
		defer d.Close()

		clock := clockz.NewFakeClock()
		d.WithClock(clock)

		d.Call()
		d.Call()
		d.Call()
		time.Sleep(10 * time.Millisecond)
		clock.Advance(50 * time.Millisecond)
		clock.BlockUntilReady()

		select {
		case <-fired:
		case <-time.After(time.Second):
			t.Fatal("debounced function never fired")
		}

		if got := d.Metrics().Counter(DebounceScheduledTotal).Value(); got != 3 {
			t.Errorf("expected 3 scheduled, got %f", got)
		}
		if got := d.Metrics().Counter(DebounceSupersededTotal).Value(); got != 2 {
			t.Errorf("expected 2 superseded, got %f", got)
		}
		if got := d.Metrics().Counter(DebounceFiredTotal).Value(); got != 1 {
			t.Errorf("expected 1 fired, got %f", got)
		}
	})

	t.Run("Fired Event", func(t *testing.T) {
		d := NewDebouncer("autosave", func(_ ...any) {}, 50*time.Millisecond)
		defer d.Close()

		clock := clockz.NewFakeClock()
		d.WithClock(clock)

		events := make(chan DebounceEvent, 1)
		d.OnFired(func(_ context.Context, e DebounceEvent) error {
			events <- e
			return nil
		})

		d.Call("doc-1")
		time.Sleep(10 * time.Millisecond)
		clock.Advance(50 * time.Millisecond)
		clock.BlockUntilReady()

		select {
		case e := <-events:
			if e.Name != "autosave" {
				t.Errorf("unexpected event name: %q", e.Name)
			}
			if !reflect.DeepEqual(e.Args, []any{"doc-1"}) {
				t.Errorf("unexpected event args: %v", e.Args)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for fired event")
		}
	})

	t.Run("Real Clock By Default", func(t *testing.T) {
		var calls atomic.Int32
		fired := make(chan struct{}, 1)

		d := NewDebouncer("test", func(_ ...any) {
			calls.Add(1)
			fired <- struct{}{}
		}, 10*time.Millisecond)
		defer d.Close()

		start := time.Now()
		d.Call(1)
		d.Call(2)

		select {
		case <-fired:
		case <-time.After(time.Second):
			t.Fatal("debounced function never fired")
		}

		if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
			t.Errorf("fired after %v, expected at least the 10ms window", elapsed)
		}
		if calls.Load() != 1 {
			t.Errorf("expected exactly 1 invocation, got %d", calls.Load())
		}
	})

	t.Run("Accessors", func(t *testing.T) {
		d := NewDebouncer("test", func(_ ...any) {}, time.Second)
		defer d.Close()

		if d.Name() != "test" {
			t.Errorf("Name() = %q, want test", d.Name())
		}
		if d.GetDelay() != time.Second {
			t.Errorf("GetDelay() = %v, want 1s", d.GetDelay())
		}
		d.SetDelay(2 * time.Second)
		if d.GetDelay() != 2*time.Second {
			t.Errorf("GetDelay() = %v after SetDelay, want 2s", d.GetDelay())
		}
	})
}

// Package funtils provides a small collection of generic functional-programming
// utilities for Go: structural copy, sequence helpers, higher-order function
// combinators, memoization, a scaling-function generator, a minimal monad
// constructor, and trailing-edge debounce.
//
// # Overview
//
// Each utility is an independent, stateless (or trivially locally-stateful)
// function with no interaction between components. There is no pipeline, no
// protocol, and no persistence - just composable building blocks for code that
// treats functions as values.
//
// # Value Model
//
// Dynamic utilities operate on plain values: mappings are map[string]any,
// sequences are []any, functions are opaque leaves, and nil is the single
// absence sentinel. These are the shapes encoding/json produces, so cloned
// and merged structures interoperate directly with decoded JSON.
//
// Utilities whose arity is fixed use Go generics instead:
//
//	double := func(n int) int { return n * 2 }
//	inc := func(n int) int { return n + 1 }
//	f := funtils.Compose(double, inc) // f(2) == 6
//
// Inherently variadic utilities use the Func type:
//
//	sum := funtils.Func(func(args ...any) any {
//	    total := 0
//	    for _, a := range args {
//	        total += a.(int)
//	    }
//	    return total
//	})
//	cached := funtils.Memoize(sum)
//
// # Structural Copy
//
// Clone performs a recursive deep copy; Merge layers shallow overrides on top
// of a clone:
//
//	base := map[string]any{"host": "localhost", "opts": map[string]any{"tls": true}}
//	cfg := funtils.Merge(base, map[string]any{"host": "example.com"})
//
// # Stateful Components
//
// Memoizer and Debouncer are the only stateful components. Both follow the
// connector conventions: they are safe for concurrent use, expose metrics via
// a metricz.Registry, emit typed events via hookz, and are created once and
// shared rather than rebuilt per call. Debouncer additionally accepts an
// injectable clockz.Clock so timer behavior is fully testable:
//
//	d := funtils.NewDebouncer("save", persist, 200*time.Millisecond)
//	d.Call(doc) // rapid repeat calls collapse into one trailing invocation
//
// # Monad Constructor
//
// NewMonad builds a unit constructor whose instances support Bind and named
// lifted operations:
//
//	unit := funtils.NewMonad(nil)
//	unit.Lift("upper", func(v any, _ ...any) any {
//	    return strings.ToUpper(v.(string))
//	})
//	m, _ := unit.Wrap("ok").Do("upper")
//	m.Value() // "OK"
//
// # Known Limitations
//
//   - Clone does not detect cycles; a self-referential structure recurses
//     until stack exhaustion. Inputs must be finite and acyclic.
//   - Memoizer treats a cached nil result as absent, so a function that
//     legitimately returns nil is recomputed on every call. See Memoizer.
//   - NewScale does not guard against an empty input range; interpolating
//     with inMin == inMax follows IEEE division semantics.
package funtils

package funtils

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrOpConflict is returned by Unit.Lift when the operation name is
	// already registered on that constructor.
	ErrOpConflict = errors.New("operation already registered")
	// ErrOpUnknown is returned by Monad.Do for an unregistered operation.
	ErrOpUnknown = errors.New("operation not registered")
)

// Modifier transforms a value as it is wrapped into a Monad. The instance
// being constructed is passed alongside the value, allowing modifiers that
// attach state to the instance itself. A nil Modifier wraps values
// unchanged.
type Modifier = func(m *Monad, v any) any

// BindFunc is an operation applied to a monad's stored value. Extra
// arguments come from the Bind or Do call site.
type BindFunc = func(value any, args ...any) any

// Unit is a monad constructor produced by NewMonad. Each Unit owns its own
// operation registry: operations registered with Lift are visible to every
// instance this Unit has wrapped or will wrap, and to no instance of any
// other Unit.
type Unit struct {
	modifier Modifier
	mu       sync.RWMutex
	ops      map[string]BindFunc
}

// Monad is an immutable-by-convention wrapper around one value, tagged by
// its concrete type: Bind recognizes an already-wrapped result with a plain
// type assertion rather than inspecting marker fields, so any *Monad -
// regardless of which Unit produced it - passes through unwrapped.
type Monad struct {
	unit  *Unit
	value any
}

// NewMonad returns a constructor whose Wrap method builds Monad instances.
// When modifier is non-nil it is applied to every value as it is wrapped,
// including values re-wrapped by Bind.
//
// Example:
//
//	unit := funtils.NewMonad(func(_ *funtils.Monad, v any) any {
//	    return v.(string) + " - modified"
//	})
//	unit.Wrap("x").Value() // "x - modified"
func NewMonad(modifier Modifier) *Unit {
	return &Unit{
		modifier: modifier,
		ops:      make(map[string]BindFunc),
	}
}

// Wrap constructs a Monad holding v, transformed by the Unit's modifier when
// one was provided.
func (u *Unit) Wrap(v any) *Monad {
	m := &Monad{unit: u}
	if u.modifier != nil {
		v = u.modifier(m, v)
	}
	m.value = v
	return m
}

// Lift registers a named operation on this constructor. Calling Do(name,
// args...) on any instance of this Unit - including instances wrapped before
// the Lift - is then equivalent to Bind(fn, args...). Registration is
// single-shot: lifting an already-registered name returns ErrOpConflict and
// leaves the original operation in place.
func (u *Unit) Lift(name string, fn BindFunc) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, exists := u.ops[name]; exists {
		return fmt.Errorf("%w: %q", ErrOpConflict, name)
	}
	u.ops[name] = fn
	return nil
}

// Value returns the stored value.
func (m *Monad) Value() any {
	return m.value
}

// Bind applies fn to the stored value. A result that is already a *Monad is
// returned as-is; anything else is re-wrapped through this instance's Unit,
// re-running the modifier on the new value.
func (m *Monad) Bind(fn BindFunc, args ...any) *Monad {
	result := fn(m.value, args...)
	if wrapped, ok := result.(*Monad); ok {
		return wrapped
	}
	return m.unit.Wrap(result)
}

// Do invokes a lifted operation by name, resolving it through the
// constructor's registry at call time. Returns ErrOpUnknown when no
// operation of that name has been lifted.
func (m *Monad) Do(name string, args ...any) (*Monad, error) {
	m.unit.mu.RLock()
	fn, ok := m.unit.ops[name]
	m.unit.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrOpUnknown, name)
	}
	return m.Bind(fn, args...), nil
}

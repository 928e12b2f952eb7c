package funtils

// Name identifies a stateful component such as a Memoizer or Debouncer.
// Names appear in metric tags and emitted events, so prefer storing them
// as constants rather than using inline strings throughout your code.
//
// Example:
//
//	const (
//	    UserLookupMemo Name = "user-lookup"
//	    AutosaveDebounce Name = "autosave"
//	)
type Name = string

// Func is the variadic function shape shared by the dynamic utilities
// (Memoize, Partial, Curry). Any function taking arbitrary arguments and
// producing a single value fits.
type Func = func(args ...any) any

// Handler is the function shape consumed and produced by Dispatch: a
// priority-ordered candidate that receives the dispatch target plus any
// extra arguments and returns a result, or nil to decline.
type Handler = func(target any, args ...any) any

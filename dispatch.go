package funtils

// Dispatch composes a priority-ordered list of handlers into a single
// handler with first-match-wins semantics. Each candidate is invoked in
// order with the same target and arguments; the first result that Exists is
// returned and no further candidates run. When every candidate declines, the
// final candidate's (absent) result is returned.
//
// This gives polymorphic dispatch without inheritance: each handler inspects
// the target and either produces a result or returns nil to pass.
//
// Example:
//
//	describe := funtils.Dispatch(
//	    func(t any, _ ...any) any {
//	        if s, ok := t.([]any); ok {
//	            return fmt.Sprintf("sequence of %d", len(s))
//	        }
//	        return nil
//	    },
//	    func(t any, _ ...any) any {
//	        return fmt.Sprintf("%v", t)
//	    },
//	)
func Dispatch(handlers ...Handler) Handler {
	return func(target any, args ...any) any {
		var result any
		for _, h := range handlers {
			result = h(target, args...)
			if Exists(result) {
				return result
			}
		}
		return result
	}
}

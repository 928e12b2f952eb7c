package funtils

// Clone returns a deep copy of v. Sequences ([]any) are copied element-wise
// and mappings (map[string]any) key-wise, recursively, so mutating any
// container in the copy never affects the original at any depth. Functions
// are treated as atomic leaves and returned by reference; primitives are
// returned unchanged.
//
// Clone does not detect cycles. A self-referential structure recurses until
// stack exhaustion; inputs must be finite and acyclic.
func Clone(v any) any {
	switch val := v.(type) {
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = Clone(elem)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = Clone(elem)
		}
		return out
	default:
		return v
	}
}

// Merge returns a new mapping built from a deep clone of base with every key
// from overrides shallow-assigned on top. Override values are assigned raw,
// not cloned: a nested mapping under an override key fully replaces the
// base's nested mapping rather than merging into it, and the result shares
// that value with overrides by reference.
//
// Neither base nor overrides is mutated. A nil base yields a fresh mapping
// containing only the overrides.
func Merge(base, overrides map[string]any) map[string]any {
	out, ok := Clone(base).(map[string]any)
	if !ok || out == nil {
		out = make(map[string]any, len(overrides))
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

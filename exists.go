package funtils

import "reflect"

// Exists reports whether v is present: false only for nil, including typed
// nil pointers, maps, slices, channels, functions, and interfaces hiding
// behind a non-nil interface value. Every other value is present - zero,
// the empty string, false, and NaN all exist.
func Exists(v any) bool {
	if v == nil {
		return false
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}

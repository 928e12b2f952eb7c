package funtils

import (
	"cmp"
	"slices"
)

// Slice returns a copy of s[start:end] with a fresh backing array. Bounds
// are clamped into [0, len(s)], and a start beyond end yields an empty
// slice, so out-of-range indices never panic.
func Slice[T any](s []T, start, end int) []T {
	start = clampIndex(start, len(s))
	end = clampIndex(end, len(s))
	if start >= end {
		return []T{}
	}
	return slices.Clone(s[start:end])
}

// Splice returns a copy of s with deleteCount elements removed at start and
// items inserted in their place, plus the removed elements. Unlike the
// mutating splice found in other languages, s is never modified; both
// returned slices have fresh backing arrays. Bounds are clamped, and a
// negative deleteCount removes nothing.
func Splice[T any](s []T, start, deleteCount int, items ...T) (result, removed []T) {
	start = clampIndex(start, len(s))
	if deleteCount < 0 {
		deleteCount = 0
	}
	end := clampIndex(start+deleteCount, len(s))

	removed = slices.Clone(s[start:end])
	result = make([]T, 0, len(s)-(end-start)+len(items))
	result = append(result, s[:start]...)
	result = append(result, items...)
	result = append(result, s[end:]...)
	return result, removed
}

// Reduce folds s left-to-right into a single value, starting from init and
// applying fn to the running accumulator and each element in order.
func Reduce[T, A any](s []T, fn func(acc A, elem T) A, init A) A {
	acc := init
	for _, elem := range s {
		acc = fn(acc, elem)
	}
	return acc
}

// IndexOf returns the index of the first occurrence of v in s, or -1 when
// absent.
func IndexOf[T comparable](s []T, v T) int {
	return slices.Index(s, v)
}

// SortNumeric returns a copy of s sorted in ascending order. The input is
// never mutated.
func SortNumeric[N cmp.Ordered](s []N) []N {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}

// Values returns the values of m in unspecified order. A nil map yields an
// empty, non-nil slice.
func Values[K comparable, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}

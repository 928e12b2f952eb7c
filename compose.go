package funtils

// Compose returns the right-to-left composition of f and g: the function
// x -> f(g(x)). Composition is strictly two functions; nest calls to build
// longer chains.
//
// Example:
//
//	double := func(n int) int { return n * 2 }
//	inc := func(n int) int { return n + 1 }
//	f := funtils.Compose(double, inc)
//	f(2) // 6
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Identity returns its argument unchanged. It is the left and right identity
// of Compose and is occasionally useful as a placeholder transformation.
func Identity[T any](v T) T {
	return v
}

// Const returns a zero-argument function that always produces v. Useful for
// adapting a known value to an API that expects a producer.
func Const[T any](v T) func() T {
	return func() T {
		return v
	}
}

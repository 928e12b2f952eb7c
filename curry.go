package funtils

// Curry restricts a variadic function to exactly one argument. The returned
// wrapper discards nothing - it simply pins the arity, which is useful when
// passing a variadic Func to an API that supplies extra positional arguments
// you do not want forwarded.
func Curry(fn Func) func(any) any {
	return func(arg any) any {
		return fn(arg)
	}
}

// Partial binds pargs to the front of fn's argument list. The returned
// function invokes fn with the bound arguments followed by its own call-time
// arguments.
//
// Example:
//
//	greet := func(args ...any) any {
//	    return args[0].(string) + ", " + args[1].(string)
//	}
//	hello := funtils.Partial(greet, "hello")
//	hello("world") // "hello, world"
func Partial(fn Func, pargs ...any) Func {
	return func(args ...any) any {
		merged := make([]any, 0, len(pargs)+len(args))
		merged = append(merged, pargs...)
		merged = append(merged, args...)
		return fn(merged...)
	}
}

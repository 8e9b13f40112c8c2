// Package ft provides high-level function tools for manipulating common function objects and types.
package ft

// Noop returns the input value.
func Noop[T any](in T) T { return in }

// Compose returns a function that passes its argument to the first
// function and the result of that to the second.
func Compose[A any, B any, C any](first func(A) B, second func(B) C) func(A) C {
	return func(in A) C { return second(first(in)) }
}

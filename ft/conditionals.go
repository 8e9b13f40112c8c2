package ft

// IfValue provides a ternary-like operation for values.
func IfValue[T any](cond bool, ifVal T, elseVal T) T {
	if cond {
		return ifVal
	}
	return elseVal
}

// Negate wraps a predicate, returning a predicate that returns the
// opposite result.
func Negate[T any](pred func(T) bool) func(T) bool { return func(in T) bool { return !pred(in) } }

// Package numeric provides numeric aggregations over lazy sequences,
// all implemented in terms of the lazy package's combinators.
//
// Every function that consumes a sequence requires a finite input:
// bound infinite sequences with lazy.Take first.
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/tychoish/lazy"
	"github.com/tychoish/lazy/ft"
)

// Number describes the native integer and floating point types.
type Number interface {
	constraints.Integer | constraints.Float
}

// MaxNumber returns the largest value in the sequence. Empty
// sequences produce negative infinity.
func MaxNumber[T constraints.Float](seq lazy.Sequence[T]) T {
	return lazy.Reduce(func(acc, in T) T { return ft.IfValue(in > acc, in, acc) }, seq, T(math.Inf(-1)))
}

// Max returns the largest value in the sequence, for any ordered
// type, and false when the sequence has already ended.
func Max[T constraints.Ordered](seq lazy.Sequence[T]) (T, bool) {
	first, ok := seq.Get()
	if !ok {
		return first, false
	}
	return lazy.Reduce(func(acc, in T) T { return ft.IfValue(in > acc, in, acc) }, seq.Next(), first), true
}

// Length counts the elements in the sequence.
func Length[T any](seq lazy.Sequence[T]) int {
	return lazy.Reduce(func(acc int, _ T) int { return acc + 1 }, seq, 0)
}

// Sum adds all of the elements in the sequence. Empty sequences
// produce zero.
func Sum[T Number](seq lazy.Sequence[T]) T {
	return lazy.Reduce(func(acc, in T) T { return acc + in }, seq, 0)
}

package lazy

import (
	"fmt"
	"iter"

	"github.com/tychoish/lazy/ers"
)

// ErrEnded is returned by Resolve when the sequence has reached the
// ended marker, and has no current value.
const ErrEnded ers.Error = ers.Error("sequence ended")

// Sequence is a node in a lazily evaluated, forward-only chain of
// values, or the marker that signals the end of the chain.
//
// The zero value is the ended marker, as is the output of End(). For
// nodes, Value() returns the current element, which has already been
// computed, and Next() produces the next state of the sequence. The
// successor is not computed until Next() is called.
type Sequence[T any] struct {
	value T
	ok    bool
	next  stepper[T]
}

// stepper holds whatever state a node needs to produce its
// successor. Each source of sequences (generators, combinators, and
// slices) provides its own implementation.
type stepper[T any] interface{ step() Sequence[T] }

func node[T any](value T, next stepper[T]) Sequence[T] {
	return Sequence[T]{value: value, ok: true, next: next}
}

// End returns the ended marker for sequences of type T. Equivalent
// to the zero value of Sequence.
func End[T any]() Sequence[T] { return Sequence[T]{} }

// Ok reports if the sequence is a node that holds a value. Ok returns
// false for the ended marker.
func (s Sequence[T]) Ok() bool { return s.ok }

// Value returns the current element of the sequence, or the zero
// value for T if the sequence has ended.
func (s Sequence[T]) Value() T { return s.value }

// Get returns the current element and true, or the zero value and
// false for the ended marker.
func (s Sequence[T]) Get() (T, bool) { return s.value, s.ok }

// Resolve returns the current element, or ErrEnded if the sequence
// has ended.
func (s Sequence[T]) Resolve() (T, error) {
	if !s.ok {
		return s.value, ErrEnded
	}
	return s.value, nil
}

// Next advances the sequence and returns the next state, which is
// either a new node or the ended marker. The receiver is not
// modified. Calling Next on the ended marker returns the ended
// marker.
func (s Sequence[T]) Next() Sequence[T] {
	if !s.ok || s.next == nil {
		return End[T]()
	}
	return s.next.step()
}

// Iterator provides a native iterator over the remaining elements of
// the sequence, starting with the current value. Iteration stops at
// the ended marker or when the caller stops ranging; for infinite
// sequences the caller is responsible for breaking out of the loop.
func (s Sequence[T]) Iterator() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := s; cur.Ok(); cur = cur.Next() {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// String renders the current node; it does not traverse the
// sequence.
func (s Sequence[T]) String() string {
	if !s.ok {
		return "<ended>"
	}
	return fmt.Sprintf("<%v ...>", s.value)
}

type generated[T any] struct {
	transform func(T) T
	value     T
}

func (g generated[T]) step() Sequence[T] {
	next := g.transform(g.value)
	return node[T](next, generated[T]{transform: g.transform, value: next})
}

// Generate returns a constructor for infinite sequences. The
// constructor's argument is the first value of the sequence, and
// every subsequent value is produced by applying the transform to the
// previous value, only when the caller advances the sequence.
//
// Each call to the constructor starts a new, independent chain. The
// transform should be free of side effects: for pure transforms two
// chains started from the same seed are identical.
func Generate[T any](transform func(T) T) func(T) Sequence[T] {
	return func(seed T) Sequence[T] {
		return node[T](seed, generated[T]{transform: transform, value: seed})
	}
}

type items[T any] struct {
	values []T
	idx    int
}

func (it items[T]) step() Sequence[T] {
	next := it.idx + 1
	if next >= len(it.values) {
		return End[T]()
	}
	return node[T](it.values[next], items[T]{values: it.values, idx: next})
}

// Items constructs a finite sequence that yields the provided values
// in order, followed by the ended marker. With no arguments Items
// returns the ended marker. The slice is not copied, and callers
// should not modify it while the sequence is in use.
func Items[T any](values ...T) Sequence[T] {
	if len(values) == 0 {
		return End[T]()
	}
	return node[T](values[0], items[T]{values: values})
}

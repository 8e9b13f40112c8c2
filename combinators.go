package lazy

type mapped[T any, V any] struct {
	mapper   func(T) V
	upstream Sequence[T]
}

func (m mapped[T, V]) step() Sequence[V] { return Map(m.mapper, m.upstream.Next()) }

// Map returns a sequence where every element is the result of
// applying the mapper to the corresponding element of the input
// sequence. The output has the same length as the input, and the
// mapper is called once for each element, only as the output is
// advanced to that element.
func Map[T any, V any](mapper func(T) V, seq Sequence[T]) Sequence[V] {
	if !seq.Ok() {
		return End[V]()
	}
	return node[V](mapper(seq.value), mapped[T, V]{mapper: mapper, upstream: seq})
}

type filtered[T any] struct {
	predicate func(T) bool
	upstream  Sequence[T]
}

func (f filtered[T]) step() Sequence[T] { return Filter(f.predicate, f.upstream.Next()) }

// Filter returns a sequence of the elements in the input sequence for
// which the predicate returns true, in their original order.
//
// Filter advances the input until it finds an element that satisfies
// the predicate (or the input ends) before returning, so when the
// input is infinite and no remaining element passes the predicate,
// Filter never returns. Filtering the ended marker returns the ended
// marker.
func Filter[T any](predicate func(T) bool, seq Sequence[T]) Sequence[T] {
	for ; seq.Ok(); seq = seq.Next() {
		if predicate(seq.value) {
			return node[T](seq.value, filtered[T]{predicate: predicate, upstream: seq})
		}
	}
	return End[T]()
}

type taken[T any] struct {
	remaining int
	upstream  Sequence[T]
}

func (tk taken[T]) step() Sequence[T] {
	if tk.remaining <= 0 {
		// never advance the upstream past the last taken element.
		return End[T]()
	}
	return Take(tk.remaining, tk.upstream.Next())
}

// Take returns a finite sequence of at most n elements from the
// beginning of the input sequence. Advancing past the nth element
// (or past the end of a shorter input) produces the ended
// marker. When n is zero or negative Take returns the ended marker.
func Take[T any](n int, seq Sequence[T]) Sequence[T] {
	if n <= 0 || !seq.Ok() {
		return End[T]()
	}
	return node[T](seq.value, taken[T]{remaining: n - 1, upstream: seq})
}

// Reduce folds the sequence, from left to right, into a single
// value. The reducer is called with the accumulated value (starting
// with start) and each element in turn. When the sequence is the
// ended marker, Reduce returns start.
//
// Reduce terminates only when the sequence reaches the ended marker:
// the input must be finite (e.g. the output of Take.)
func Reduce[T any, V any](reducer func(V, T) V, seq Sequence[T], start V) V {
	acc := start
	for ; seq.Ok(); seq = seq.Next() {
		acc = reducer(acc, seq.value)
	}
	return acc
}

// ReduceRight folds the sequence from right to left: the reducer is
// first called with start and the last element, and the result is
// combined with each preceding element until the first. For
// associative and commutative reducers, ReduceRight and Reduce
// produce the same result.
//
// The elements are buffered before folding, so memory use is
// proportional to the length of the sequence, which must be finite.
func ReduceRight[T any, V any](reducer func(V, T) V, seq Sequence[T], start V) V {
	stack := Collect(seq)
	acc := start
	for idx := len(stack) - 1; idx >= 0; idx-- {
		acc = reducer(acc, stack[idx])
	}
	return acc
}

// Collect materializes a finite sequence into a slice, preserving
// order. The ended marker produces an empty (non-nil) slice.
func Collect[T any](seq Sequence[T]) []T {
	return Reduce(func(out []T, elem T) []T { return append(out, elem) }, seq, []T{})
}

// Last returns the final element of a finite sequence, and false if
// the sequence has already ended.
func Last[T any](seq Sequence[T]) (T, bool) {
	var zero T
	return Reduce(func(_ T, elem T) T { return elem }, seq, zero), seq.Ok()
}

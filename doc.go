// Package lazy provides a minimal lazy sequence type and a small
// collection of combinators (Map, Filter, Take, Reduce, ReduceRight,
// and Collect) built entirely on top of it.
//
// A Sequence is either a node, which holds an already computed value
// and knows how to produce the next state of the sequence on demand,
// or the ended marker. Nothing downstream of a node is computed until
// a caller asks for it with Next(), which means that sequences may be
// (and frequently are) infinite. Generate produces such infinite
// sequences from a step function and a seed value, and Take converts
// any sequence into a finite one that is explicitly terminated by the
// ended marker.
//
// Sequences are immutable: every call to Next() constructs a new
// value, and no node is ever modified in place. Calling Next() on the
// same node more than once recomputes the successor, which is
// equivalent to the previous result as long as the functions passed
// to the combinators are pure.
//
// The consuming operations (Reduce, ReduceRight, Collect, Last, and
// the Iterator if run to completion) only terminate when the sequence
// reaches the ended marker. Passing an infinite sequence that has not
// been bounded with Take, or a Filter over an infinite sequence where
// no element ever satisfies the predicate, will never return. This is
// a precondition of these functions and is not detected at runtime.
//
// None of the types in this package are safe for concurrent use by
// multiple consumers of the same chain, although because nodes are
// never mutated, sharing a node does not corrupt it.
package lazy

package ers

import (
	"errors"
	"strings"
)

// Stack represents the error type returned by Join when it has more
// than one error. The implementation provides support for
// errors.Unwrap and errors.Is, and an Unwind() method which returns a
// slice of the constituent errors for additional use.
type Stack struct {
	err   error
	next  *Stack
	count int
}

// Join takes a slice of errors and converts it into an *ers.Stack
// typed error. Nil errors are skipped: Join returns nil when there
// are no non-nil errors and the error itself when there is only one.
func Join(errs ...error) error {
	s := &Stack{}
	for _, err := range errs {
		s.Push(err)
	}

	switch s.count {
	case 0:
		return nil
	case 1:
		return s.err
	default:
		return s
	}
}

// Len reports the number of errors in the stack.
func (e *Stack) Len() int {
	if e == nil {
		return 0
	}
	return e.count
}

// Push adds an error to the stack. Nil errors are ignored. Another
// Stack is spliced in with its push order intact; every other error,
// including one built with several %w verbs, is pushed whole so its
// message survives.
func (e *Stack) Push(err error) {
	switch werr := err.(type) {
	case nil:
		return
	case *Stack:
		errs := werr.Unwind()
		for idx := len(errs) - 1; idx >= 0; idx-- {
			e.Push(errs[idx])
		}
	default:
		if e.err != nil {
			e.next = &Stack{next: e.next, err: e.err, count: e.count}
		}
		e.err = err
		e.count++
	}
}

// Error produces the aggregated error strings, most recently pushed
// first.
func (e *Stack) Error() string {
	if e.err == nil {
		return "<nil>"
	}

	errs := e.Unwind()
	out := make([]string, 0, len(errs))
	for _, err := range errs {
		out = append(out, err.Error())
	}
	return strings.Join(out, ": ")
}

// Is calls errors.Is on the underlying error to provied compatibility
// with errors.Is, which takes advantage of this interface.
func (e *Stack) Is(err error) bool { return errors.Is(e.err, err) }

// As calls errors.As on the underlying error to provied compatibility
// with errors.As, which takes advantage of this interface.
func (e *Stack) As(target any) bool { return errors.As(e.err, target) }

// Unwrap returns the next error in the stack, and is compatible
// with errors.Unwrap.
func (e *Stack) Unwrap() error {
	if e.next == nil || e.next.err == nil {
		return nil
	}
	return e.next
}

// Unwind returns the errors in the stack, most recently pushed
// first.
func (e *Stack) Unwind() []error {
	out := make([]error, 0, e.Len())
	for iter := e; iter != nil && iter.err != nil; iter = iter.next {
		out = append(out, iter.err)
	}
	return out
}

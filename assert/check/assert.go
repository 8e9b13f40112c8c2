// Package check holds the non-fatal counterparts of the assert
// package: failures are reported with t.Error and the test keeps
// running, so one test can report several mismatches.
package check

import (
	"errors"
	"strings"
	"testing"
)

// True reports a failure when cond is false.
func True(t testing.TB, cond bool) {
	t.Helper()
	if !cond {
		t.Error("condition was false")
	}
}

// Equal reports a failure when the two values differ under ==.
func Equal[T comparable](t testing.TB, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("got <%v>, want <%v>", got, want)
	}
}

// NotEqual reports a failure when the two values are equal under ==.
func NotEqual[T comparable](t testing.TB, got, other T) {
	t.Helper()
	if got == other {
		t.Errorf("both values are <%v>", got)
	}
}

// Zero reports a failure unless val is the zero value of its type.
func Zero[T comparable](t testing.TB, val T) {
	t.Helper()
	var zero T
	if val != zero {
		t.Errorf("got <%v>, want the zero %T", val, val)
	}
}

// EqualItems reports a failure when the slices differ in length, and
// one failure for every index where the items differ.
func EqualItems[T comparable](t testing.TB, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("got %d items %v, want %d items %v", len(got), got, len(want), want)
		return
	}
	for idx := range got {
		if got[idx] != want[idx] {
			t.Errorf("item %d: got <%v>, want <%v>", idx, got[idx], want[idx])
		}
	}
}

// NotError reports a failure when err is non-nil.
func NotError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// ErrorIs reports a failure unless errors.Is(err, target).
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("error <%v> does not match <%v>", err, target)
	}
}

// Substring reports a failure unless str contains substr.
func Substring(t testing.TB, str, substr string) {
	t.Helper()
	if !strings.Contains(str, substr) {
		t.Errorf("%q does not contain %q", str, substr)
	}
}

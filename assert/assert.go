// Package assert holds the fatal assertions used by the lazy tests:
// a failing assertion stops the current test at the failure line.
// The check package has the non-fatal forms.
package assert

import "testing"

// True stops the test when cond is false.
func True(t testing.TB, cond bool) {
	t.Helper()
	if !cond {
		t.Fatal("condition was false")
	}
}

// Equal stops the test when the two values differ under ==.
func Equal[T comparable](t testing.TB, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got <%v>, want <%v>", got, want)
	}
}

// Error stops the test when err is nil.
func Error(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("error was nil")
	}
}

// NotError stops the test when err is non-nil.
func NotError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Package testt has small helpers for tests that use the assert and
// check packages.
package testt

import "testing"

// Log writes args to the test log, but only once the test has
// already failed, to keep passing runs quiet.
func Log(t testing.TB, args ...any) {
	t.Helper()
	if !t.Failed() {
		return
	}
	t.Log(args...)
}

// Logf is the formatted form of Log.
func Logf(t testing.TB, format string, args ...any) {
	t.Helper()
	if !t.Failed() {
		return
	}
	t.Logf(format, args...)
}

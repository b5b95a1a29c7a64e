package testkit

import "testing"

// Swap replaces *target for the rest of the test, typically a package-level
// clock or sleep func, and restores it on cleanup
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	prev := *target
	*target = replacement
	t.Cleanup(func() { *target = prev })
}

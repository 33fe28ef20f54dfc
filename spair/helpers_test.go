package spair_test

import (
	"testing"
	"time"
)

// timeoutC returns a channel that fires after a generous bound, used to
// assert termination of recursive calls under test without hanging the
// suite forever if a termination guarantee regresses.
func timeoutC(t *testing.T) <-chan time.Time {
	t.Helper()
	return time.After(2 * time.Second)
}

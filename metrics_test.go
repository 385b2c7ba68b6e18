package redox

import (
	"testing"
	"time"
)

func TestNoOpMetricsProvider_DoesNotPanic(_ *testing.T) {
	var m NoOpMetricsProvider

	// These should not panic
	m.OnDispatch("INCREMENT", 100*time.Millisecond)
	m.OnDispatchFailure("INCREMENT", 50*time.Millisecond)
	m.OnNotify(3)
}

package redox

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on key store events.
type MetricsProvider interface {
	// OnDispatch is called when a dispatch commits. Duration covers the
	// full middleware pipeline including the reducer.
	OnDispatch(actionType string, duration time.Duration)

	// OnDispatchFailure is called when middleware aborts a dispatch.
	OnDispatchFailure(actionType string, duration time.Duration)

	// OnNotify is called after subscribers have been notified of a commit.
	OnNotify(subscribers int)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnDispatch(_ string, _ time.Duration)        {}
func (NoOpMetricsProvider) OnDispatchFailure(_ string, _ time.Duration) {}
func (NoOpMetricsProvider) OnNotify(_ int)                              {}

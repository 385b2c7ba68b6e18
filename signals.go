package redox

import "github.com/zoobzio/capitan"

// Construction signals.
var (
	// ReducerCreated is emitted when a Factory produces a reducer.
	ReducerCreated = capitan.NewSignal(
		"redox.reducer.created",
		"Reducer constructed from validated configuration",
	)

	// EntryDropped is emitted when validation drops a nil chain entry or
	// handler mapping value.
	EntryDropped = capitan.NewSignal(
		"redox.config.entry.dropped",
		"Invalid configuration entry dropped during validation",
	)
)

// Dispatch signals.
var (
	// StoreDispatched is emitted when a store commits a dispatch.
	StoreDispatched = capitan.NewSignal(
		"redox.store.dispatched",
		"Action dispatched and state committed",
	)

	// StoreDispatchFailed is emitted when dispatch middleware fails and the
	// store's state is left untouched.
	StoreDispatchFailed = capitan.NewSignal(
		"redox.store.dispatch.failed",
		"Dispatch aborted by middleware failure",
	)
)

package redox

import "github.com/zoobzio/pipz"

// Dispatch carries one action through a store's middleware pipeline.
// Middleware may inspect or replace Next before it is committed; the
// reducer terminal computes Next from Previous and Action.
type Dispatch[S any] struct {
	// Action is the dispatched action.
	Action Action

	// Previous is the store's state when the dispatch began.
	Previous S

	// Next is the state that will be committed if the pipeline succeeds.
	// Before the reducer terminal runs it equals Previous.
	Next S
}

// Terminal is the final processing stage in a store pipeline: the reducer
// application itself.
type Terminal[S any] pipz.Chainable[*Dispatch[S]]

package redox

// StateReducer is the contract consumed by Store and Combine: a seed state
// plus a pure transition function. *Reducer and *Combined both satisfy it.
type StateReducer[S any] interface {
	// Initial returns the configured seed state. Callers with no previous
	// state reduce from Initial().
	Initial() S

	// Reduce computes the next state from a previous state and an action.
	// It never mutates its inputs.
	Reduce(prev S, action Action) S
}

// Reducer dispatches actions to type-keyed handlers, folding its enhancer
// chains around each invocation. Configuration is frozen at construction;
// every Reduce call is an independent pure computation.
type Reducer[S any] struct {
	initial  S
	handlers Handlers[S]
	before   []Before[S]
	after    []After[S]
}

// NewReducer creates a plain reducer with no enhancer chains: a pure
// type-dispatch reducer over the handler mapping. Equivalent to
// New[S](nil, nil, opts...).Reducer(initial, handlers).
func NewReducer[S any](initial S, handlers Handlers[S], opts ...FactoryOption) *Reducer[S] {
	return New[S](nil, nil, opts...).Reducer(initial, handlers)
}

// Initial returns the configured initial state.
func (r *Reducer[S]) Initial() S {
	return r.initial
}

// Reduce computes the next state for one action:
//
//  1. Resolve the handler for action.Type; nil when absent.
//  2. Fold the before chain over prev. Every step sees the same handler
//     and initial state; the state accumulates left to right.
//  3. Apply the handler to the enhanced state, or pass it through
//     unchanged when no handler matched.
//  4. Fold the after chain over the result. Every step additionally sees
//     the pre-handler enhanced state, pinned for the whole phase.
//
// With empty chains and no matching handler, prev is returned as-is, so
// reference-shaped states keep their identity. Panics from handlers or
// enhancers are not recovered; the partial fold is discarded with the call.
func (r *Reducer[S]) Reduce(prev S, action Action) S {
	handler := r.handlers[action.Type]

	enhanced := prev
	for _, enhance := range r.before {
		enhanced = enhance(handler, r.initial, enhanced)
	}

	next := enhanced
	if handler != nil {
		next = handler(enhanced, action)
	}

	for _, enhance := range r.after {
		next = enhance(handler, r.initial, enhanced, next)
	}

	return next
}

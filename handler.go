package redox

// Handler computes the next state for one action type. Handlers must be
// pure: no side effects, no mutation of the previous state.
type Handler[S any] func(state S, action Action) S

// Handlers maps action type identifiers to handlers. A missing key and a
// nil value both behave as "no handler": the action passes the state
// through unchanged. Identifiers are meaningful only within one mapping.
type Handlers[S any] map[string]Handler[S]

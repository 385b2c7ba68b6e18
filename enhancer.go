package redox

// Before is a pre-handler enhancer. During a dispatch the before chain is
// folded over the previous state left to right: each enhancer receives the
// resolved handler (nil when the action has no entry), the reducer's
// configured initial state, and the state accumulated so far, and returns
// the state passed to the next enhancer. The handler and initial state are
// the same for every step of one dispatch; only the state threads through.
//
// Enhancers must be pure. They run on every dispatch, matched or not, and
// decide for themselves whether to act.
type Before[S any] func(handler Handler[S], initial, state S) S

// After is a post-handler enhancer. The after chain is folded over the
// handler's result left to right. In addition to the arguments a Before
// enhancer sees, each After enhancer receives enhancedPrev: the state as it
// stood right before the handler ran, fixed for the whole phase. The state
// argument is the evolving post-handler accumulator.
type After[S any] func(handler Handler[S], initial, enhancedPrev, state S) S

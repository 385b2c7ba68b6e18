// Package redox provides typed action dispatch primitives: reducers built
// from handler mappings, wrapped with ordered pre/post enhancer chains.
//
// The core type is Reducer, a pure function from a previous state and an
// action to a next state. Reducers are minted by a Factory, which captures
// two enhancer chains at construction and runs them around every handler
// invocation:
//
//	previous → before chain → handler (or pass-through) → after chain → next
//
// # Actions and Handlers
//
// An Action carries a type identifier and an opaque payload. A reducer
// dispatches on Action.Type through its handler mapping:
//
//	handlers := redox.Handlers[int]{
//	    "INCREMENT": func(s int, _ redox.Action) int { return s + 1 },
//	    "ADD": func(s int, a redox.Action) int { return s + a.Payload.(int) },
//	}
//
//	counter := redox.NewReducer(0, handlers)
//	next := counter.Reduce(counter.Initial(), redox.Action{Type: "INCREMENT"})
//
// Actions with no matching handler pass the state through unchanged. With
// empty enhancer chains the reducer returns the previous state value itself,
// so reference-shaped states keep their identity and downstream consumers
// can detect change cheaply.
//
// # Enhancers
//
// Enhancers are pure transforms folded over the state left to right, in
// configuration order, on every dispatch. Before-enhancers see the resolved
// handler (nil when the action has no entry) and the configured initial
// state; after-enhancers additionally see the state as it stood right
// before the handler ran:
//
//	factory := redox.New(
//	    []redox.Before[int]{clampNegative},
//	    []redox.After[int]{auditDelta},
//	)
//	counter := factory.Reducer(0, handlers)
//
// Enhancers run even when no handler matches; each decides for itself
// whether to act, using the handler argument to detect the unmatched case.
//
// # Validation
//
// Chain entries and handler mapping values are checked for nil at
// construction. Nil entries are dropped, survivors keep their relative
// order, and one Diagnostic per dropped entry is emitted on the capitan
// bus and to the sink configured with WithDiagnostics. Production builds
// that want the raw collections used as-is can opt out with
// WithoutValidation.
//
// Faults inside user-supplied handlers and enhancers are never caught:
// a panic propagates to the embedding application's own boundary.
//
// # Composition
//
// Combine merges independent state domains into one application state
// tree, dispatching every action to every domain:
//
//	root := redox.Combine(map[string]redox.DomainReducer{
//	    "counter": redox.AsDomain[int](counter),
//	    "session": redox.AsDomain[Session](session),
//	})
//
// When no domain changes, Combine returns the previous map itself.
//
// # Store
//
// Store is the embedding surface: it seeds itself from the reducer's
// initial state, serializes dispatches, runs each through an optional
// pipz middleware pipeline, and notifies subscribers on commit:
//
//	store := redox.NewStore[int](counter,
//	    redox.WithMiddleware(
//	        redox.UseEffect[int]("audit", logDispatch),
//	    ),
//	).JournalSize(64)
//
//	state, err := store.Dispatch(ctx, redox.Action{Type: "INCREMENT"})
//
// Middleware failures abort the dispatch: the store's state is untouched
// and the error is returned to the caller.
//
// # Observability
//
// Lifecycle and diagnostic events are emitted as capitan signals
// (redox.*) with typed field keys:
//
//	capitan.Hook(redox.StoreDispatched, func(_ context.Context, e *capitan.Event) {
//	    actionType, _ := redox.KeyActionType.From(e)
//	    log.Printf("dispatched %s", actionType)
//	})
package redox

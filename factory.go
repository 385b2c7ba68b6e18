package redox

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Factory mints reducers that share a pair of enhancer chains. The chains
// are validated and captured once at construction; every reducer produced
// by the factory runs them around its handler dispatch.
type Factory[S any] struct {
	before []Before[S]
	after  []After[S]
	cfg    settings
}

// New creates a Factory from a before chain and an after chain. Either
// chain may be nil for "no enhancement on that side".
//
// Validation is on by default: nil chain entries are dropped in place,
// survivors keep their relative order, and one Diagnostic is emitted per
// dropped entry. See WithoutValidation and WithDiagnostics.
//
// Example:
//
//	factory := redox.New(
//	    []redox.Before[Inventory]{reserveAudit},
//	    []redox.After[Inventory]{clampCounts, reindex},
//	)
//	inventory := factory.Reducer(Inventory{}, handlers)
func New[S any](before []Before[S], after []After[S], opts ...FactoryOption) *Factory[S] {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Factory[S]{
		before: filterBefore(before, cfg),
		after:  filterAfter(after, cfg),
		cfg:    cfg,
	}
}

// Reducer produces a reducer that closes over the factory's chains, the
// given initial state, and a validated copy of the handler mapping.
// Nil-valued mapping entries are dropped with a Diagnostic; the action
// types they were registered under behave as "no handler" thereafter.
// The input map is never mutated and later caller mutations of it do not
// affect the reducer.
func (f *Factory[S]) Reducer(initial S, handlers Handlers[S]) *Reducer[S] {
	validated := filterHandlers(handlers, f.cfg)

	capitan.Emit(context.Background(), ReducerCreated,
		KeyBeforeCount.Field(len(f.before)),
		KeyAfterCount.Field(len(f.after)),
		KeyHandlerCount.Field(len(validated)),
	)

	return &Reducer[S]{
		initial:  initial,
		handlers: validated,
		before:   f.before,
		after:    f.after,
	}
}

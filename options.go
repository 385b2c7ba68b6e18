package redox

import (
	"context"

	"github.com/zoobzio/pipz"
)

// Option configures the dispatch pipeline for a Store. Pipeline options
// wrap the reducer terminal with middleware for observation, gating, and
// enrichment.
//
// Instance configuration (clock, equality, journal size, metrics) is
// handled via chainable methods on the Store before the first Dispatch.
type Option[S any] func(pipz.Chainable[*Dispatch[S]]) pipz.Chainable[*Dispatch[S]]

// buildPipeline wraps a terminal with pipeline options.
func buildPipeline[S any](terminal pipz.Chainable[*Dispatch[S]], opts []Option[S]) pipz.Chainable[*Dispatch[S]] {
	pipeline := terminal
	for _, opt := range opts {
		pipeline = opt(pipeline)
	}
	return pipeline
}

// -----------------------------------------------------------------------------
// Pipeline Options (With*)
// -----------------------------------------------------------------------------

// WithMiddleware wraps the pipeline with a sequence of processors.
// Processors execute in order, with the wrapped pipeline (the reducer
// terminal) last.
//
// Use the Use* functions to create processors for common patterns,
// or provide custom pipz.Chainable implementations directly.
//
// Example:
//
//	redox.NewStore[int](counter,
//	    redox.WithMiddleware(
//	        redox.UseEffect[int]("audit", auditFn),
//	        redox.UseFilter[int]("gate", isAllowed, redox.UseApply[int]("enrich", enrichFn)),
//	    ),
//	)
func WithMiddleware[S any](processors ...pipz.Chainable[*Dispatch[S]]) Option[S] {
	return func(p pipz.Chainable[*Dispatch[S]]) pipz.Chainable[*Dispatch[S]] {
		all := make([]pipz.Chainable[*Dispatch[S]], 0, len(processors)+1)
		all = append(all, processors...)
		all = append(all, p)
		return pipz.NewSequence("middleware", all...)
	}
}

// WithErrorHandler adds error observation to the pipeline.
// Errors are passed to the handler for logging, metrics, or alerting,
// but the error still propagates and the dispatch is still aborted.
// Use this for observability, not recovery.
func WithErrorHandler[S any](handler pipz.Chainable[*pipz.Error[*Dispatch[S]]]) Option[S] {
	return func(p pipz.Chainable[*Dispatch[S]]) pipz.Chainable[*Dispatch[S]] {
		return pipz.NewHandle("error-handler", p, handler)
	}
}

// -----------------------------------------------------------------------------
// Middleware Processors (Use*)
// -----------------------------------------------------------------------------
// These create processors for use inside WithMiddleware.
// They transform or observe the dispatch as it flows toward the reducer.

// UseTransform creates a processor that transforms the dispatch.
// Cannot fail. Use for pure annotations that always succeed.
func UseTransform[S any](name string, fn func(context.Context, *Dispatch[S]) *Dispatch[S]) pipz.Chainable[*Dispatch[S]] {
	return pipz.Transform(pipz.Name(name), fn)
}

// UseApply creates a processor that can transform the dispatch and fail.
// A returned error aborts the dispatch; the store's state is untouched.
func UseApply[S any](name string, fn func(context.Context, *Dispatch[S]) (*Dispatch[S], error)) pipz.Chainable[*Dispatch[S]] {
	return pipz.Apply(pipz.Name(name), fn)
}

// UseEffect creates a processor that performs a side effect.
// The dispatch passes through unchanged. Use for logging, metrics,
// or notifications that should not affect the computed state.
func UseEffect[S any](name string, fn func(context.Context, *Dispatch[S]) error) pipz.Chainable[*Dispatch[S]] {
	return pipz.Effect(pipz.Name(name), fn)
}

// UseMutate creates a processor that conditionally transforms the dispatch.
// The transformer is only applied if the condition returns true.
func UseMutate[S any](name string, transformer func(context.Context, *Dispatch[S]) *Dispatch[S], condition func(context.Context, *Dispatch[S]) bool) pipz.Chainable[*Dispatch[S]] {
	return pipz.Mutate(pipz.Name(name), transformer, condition)
}

// UseFilter wraps a processor with a condition.
// If the condition returns false, the dispatch passes through unchanged.
func UseFilter[S any](name string, condition func(context.Context, *Dispatch[S]) bool, processor pipz.Chainable[*Dispatch[S]]) pipz.Chainable[*Dispatch[S]] {
	return pipz.NewFilter(pipz.Name(name), condition, processor)
}

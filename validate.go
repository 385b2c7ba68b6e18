package redox

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Chain names used in diagnostics and signal fields.
const (
	ChainBefore   = "before"
	ChainAfter    = "after"
	ChainHandlers = "handlers"
)

// Diagnostic describes one configuration entry dropped during validation.
// Diagnostics are advisory: the entry is excluded from the working
// chain or mapping and everything else proceeds normally.
type Diagnostic struct {
	// Chain identifies where the entry came from: ChainBefore, ChainAfter,
	// or ChainHandlers.
	Chain string

	// Index is the entry's position within its chain, or -1 for handler
	// mapping entries.
	Index int

	// ActionType is the mapping key for handler entries, empty for chain
	// entries.
	ActionType string
}

// settings holds construction-time configuration shared by Factory and
// NewReducer.
type settings struct {
	validate bool
	sink     func(Diagnostic)
}

func defaultSettings() settings {
	return settings{validate: true}
}

// FactoryOption configures construction-time validation behavior.
type FactoryOption func(*settings)

// WithoutValidation disables construction-time validation. Chains and
// handler mappings are used as provided, nil entries included; a nil entry
// reached during dispatch panics. Intended for production builds where
// configuration is known good and construction cost matters.
func WithoutValidation() FactoryOption {
	return func(s *settings) {
		s.validate = false
	}
}

// WithDiagnostics sets a sink that receives one Diagnostic per dropped
// entry, in addition to the capitan signal emission. Useful for asserting
// on validation behavior without hooking the global bus.
func WithDiagnostics(fn func(Diagnostic)) FactoryOption {
	return func(s *settings) {
		s.sink = fn
	}
}

// report emits a diagnostic on the capitan bus and to the sink, if any.
func (s settings) report(d Diagnostic) {
	capitan.Emit(context.Background(), EntryDropped,
		KeyChain.Field(d.Chain),
		KeyIndex.Field(d.Index),
		KeyActionType.Field(d.ActionType),
	)
	if s.sink != nil {
		s.sink(d)
	}
}

// filterBefore returns a copy of the chain with nil entries removed,
// survivors in original order. With validation off the chain is copied
// unfiltered so the reducer never aliases caller-owned slices.
func filterBefore[S any](chain []Before[S], cfg settings) []Before[S] {
	if !cfg.validate {
		return append([]Before[S](nil), chain...)
	}
	out := make([]Before[S], 0, len(chain))
	for i, e := range chain {
		if e == nil {
			cfg.report(Diagnostic{Chain: ChainBefore, Index: i})
			continue
		}
		out = append(out, e)
	}
	return out
}

// filterAfter is the after-chain counterpart of filterBefore.
func filterAfter[S any](chain []After[S], cfg settings) []After[S] {
	if !cfg.validate {
		return append([]After[S](nil), chain...)
	}
	out := make([]After[S], 0, len(chain))
	for i, e := range chain {
		if e == nil {
			cfg.report(Diagnostic{Chain: ChainAfter, Index: i})
			continue
		}
		out = append(out, e)
	}
	return out
}

// filterHandlers returns a copy of the mapping with nil-valued entries
// removed. The input map is never mutated; the reducer closes over the
// copy so later caller mutations cannot leak into dispatch.
func filterHandlers[S any](handlers Handlers[S], cfg settings) Handlers[S] {
	out := make(Handlers[S], len(handlers))
	for actionType, h := range handlers {
		if cfg.validate && h == nil {
			cfg.report(Diagnostic{Chain: ChainHandlers, Index: -1, ActionType: actionType})
			continue
		}
		out[actionType] = h
	}
	return out
}

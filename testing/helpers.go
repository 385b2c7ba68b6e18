// Package testing provides test utilities and helpers for redox reducer testing.
package testing

import (
	"sync"
	"testing"

	"github.com/zoobzio/redox"
)

// CounterHandlers returns a standard counter handler mapping for tests.
func CounterHandlers() redox.Handlers[int] {
	return redox.Handlers[int]{
		"INCREMENT": func(s int, _ redox.Action) int { return s + 1 },
		"DECREMENT": func(s int, _ redox.Action) int { return s - 1 },
		"ADD":       func(s int, a redox.Action) int { return s + a.Payload.(int) },
	}
}

// NewCounterReducer creates a plain counter reducer seeded at zero.
func NewCounterReducer() *redox.Reducer[int] {
	return redox.NewReducer(0, CounterHandlers())
}

// RecordingSink collects diagnostics emitted during construction so tests
// can assert on validation behavior without hooking the capitan bus.
type RecordingSink struct {
	mu    sync.Mutex
	diags []redox.Diagnostic
}

// Option returns a FactoryOption that routes diagnostics into the sink.
func (r *RecordingSink) Option() redox.FactoryOption {
	return redox.WithDiagnostics(func(d redox.Diagnostic) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.diags = append(r.diags, d)
	})
}

// Diagnostics returns the collected diagnostics in emission order.
func (r *RecordingSink) Diagnostics() []redox.Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]redox.Diagnostic(nil), r.diags...)
}

// RequireDiagnostics fails the test unless exactly n diagnostics were
// collected.
func (r *RecordingSink) RequireDiagnostics(t *testing.T, n int) {
	t.Helper()
	if got := len(r.Diagnostics()); got != n {
		t.Fatalf("expected %d diagnostics, got %d", n, got)
	}
}

// TagBefore returns a before-enhancer that appends "|tag" to a string
// state. Chains of tagged enhancers make fold order visible in the result.
func TagBefore(tag string) redox.Before[string] {
	return func(_ redox.Handler[string], _, state string) string {
		return state + "|" + tag
	}
}

// TagAfter is the after-phase counterpart of TagBefore.
func TagAfter(tag string) redox.After[string] {
	return func(_ redox.Handler[string], _, _, state string) string {
		return state + "|" + tag
	}
}

// CallLog records enhancer invocations in order, for asserting that
// validation dropped an entry or that chains run left to right.
type CallLog struct {
	mu    sync.Mutex
	calls []string
}

// Before returns a pass-through before-enhancer that logs name per call.
func (l *CallLog) Before(name string) redox.Before[int] {
	return func(_ redox.Handler[int], _, state int) int {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.calls = append(l.calls, name)
		return state
	}
}

// After returns a pass-through after-enhancer that logs name per call.
func (l *CallLog) After(name string) redox.After[int] {
	return func(_ redox.Handler[int], _, _, state int) int {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.calls = append(l.calls, name)
		return state
	}
}

// Calls returns the logged invocation names in order.
func (l *CallLog) Calls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

// RequireCalls fails the test unless the logged calls match want exactly.
func (l *CallLog) RequireCalls(t *testing.T, want ...string) {
	t.Helper()
	got := l.Calls()
	if len(got) != len(want) {
		t.Fatalf("expected %d calls %v, got %d calls %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("call %d: expected %q, got %q (full: %v)", i, want[i], got[i], got)
		}
	}
}

// RequireCurrent fails the test if the store's current state differs from
// want.
func RequireCurrent[S comparable](t *testing.T, store *redox.Store[S], want S) {
	t.Helper()
	if got := store.Current(); got != want {
		t.Fatalf("expected current state %v, got %v", want, got)
	}
}

// RequireJournal fails the test unless the store retained exactly the
// given action types, oldest first.
func RequireJournal[S any](t *testing.T, store *redox.Store[S], types ...string) {
	t.Helper()
	recs := store.Journal()
	if len(recs) != len(types) {
		t.Fatalf("expected %d journal records, got %d", len(types), len(recs))
	}
	for i, want := range types {
		if recs[i].Action.Type != want {
			t.Fatalf("record %d: expected %q, got %q", i, want, recs[i].Action.Type)
		}
	}
}

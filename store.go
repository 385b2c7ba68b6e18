package redox

import (
	"context"
	"fmt"
	"sync"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
	"github.com/zoobzio/pipz"
)

// reduceID names the reducer terminal in store pipelines.
const reduceID = "redox:reduce"

// Store holds the current state for one reducer and serializes dispatches
// against it. Each dispatch runs through the configured middleware
// pipeline; on success the resulting state is committed and subscribers
// are notified, on failure the state is left untouched and the error is
// returned to the caller.
type Store[S any] struct {
	reducer  StateReducer[S]
	pipeline pipz.Chainable[*Dispatch[S]]
	clock    clockz.Clock
	equal    func(a, b S) bool
	metrics  MetricsProvider
	journal  *journal

	mu      sync.Mutex
	state   S
	subs    []subscriber[S]
	nextSub int
}

type subscriber[S any] struct {
	id int
	fn func(S)
}

// NewStore creates a store seeded with the reducer's initial state.
//
// Pipeline options (With*) configure the dispatch pipeline. Instance
// configuration uses chainable methods before the first Dispatch.
//
// Example:
//
//	store := redox.NewStore[int](counter,
//	    redox.WithMiddleware(
//	        redox.UseEffect[int]("audit", auditFn),
//	    ),
//	).JournalSize(64).Clock(clock)
func NewStore[S any](reducer StateReducer[S], opts ...Option[S]) *Store[S] {
	terminal := pipz.Transform(pipz.Name(reduceID), func(_ context.Context, d *Dispatch[S]) *Dispatch[S] {
		d.Next = reducer.Reduce(d.Previous, d.Action)
		return d
	})
	pipeline := buildPipeline(terminal, opts)

	return &Store[S]{
		reducer:  reducer,
		pipeline: pipeline,
		clock:    clockz.RealClock,
		state:    reducer.Initial(),
	}
}

// -----------------------------------------------------------------------------
// Chainable Instance Configuration
// -----------------------------------------------------------------------------

// Clock sets a custom clock for journal timestamps and durations.
// Use this with clockz.FakeClock for deterministic tests.
// Must be called before the first Dispatch.
func (s *Store[S]) Clock(clock clockz.Clock) *Store[S] {
	s.clock = clock
	return s
}

// Equal sets an equality function used to suppress subscriber
// notifications for commits that did not change the state. Without it,
// subscribers run after every successful dispatch.
// Must be called before the first Dispatch.
func (s *Store[S]) Equal(fn func(a, b S) bool) *Store[S] {
	s.equal = fn
	return s
}

// JournalSize sets the number of recent dispatch records to retain.
// Use 0 (default) to disable the journal.
// Must be called before the first Dispatch.
func (s *Store[S]) JournalSize(n int) *Store[S] {
	s.journal = newJournal(n)
	return s
}

// Metrics sets a metrics provider for observability integration.
// Must be called before the first Dispatch.
func (s *Store[S]) Metrics(provider MetricsProvider) *Store[S] {
	s.metrics = provider
	return s
}

// Current returns the store's current state.
func (s *Store[S]) Current() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Journal returns the retained dispatch records, oldest first.
// Returns nil if the journal is not enabled (see JournalSize).
func (s *Store[S]) Journal() []DispatchRecord {
	return s.journal.all()
}

// Subscribe registers a function invoked with the new state after each
// commit, in registration order. The returned function cancels the
// subscription. Subscribers run with the store's lock held and receive the
// committed state as their argument; they must not call back into the
// store.
func (s *Store[S]) Subscribe(fn func(S)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber[S]{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Dispatch runs one action through the middleware pipeline and the
// reducer. On success the next state is committed, journaled, and
// announced to subscribers. On failure the previous state is returned
// along with the error and nothing is committed; the whole call is
// discarded, including any state middleware had accumulated.
func (s *Store[S]) Dispatch(ctx context.Context, action Action) (S, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.clock.Now()
	req := &Dispatch[S]{Action: action, Previous: s.state, Next: s.state}

	processed, err := s.pipeline.Process(ctx, req)
	duration := s.clock.Since(start)

	if err != nil {
		s.journal.push(DispatchRecord{Action: action, Err: err, At: start, Duration: duration})
		capitan.Emit(ctx, StoreDispatchFailed,
			KeyActionType.Field(action.Type),
			KeyError.Field(err.Error()),
			KeyDuration.Field(duration),
		)
		if s.metrics != nil {
			s.metrics.OnDispatchFailure(action.Type, duration)
		}
		return s.state, fmt.Errorf("dispatch %s: %w", action.Type, err)
	}

	prev := s.state
	s.state = processed.Next
	s.journal.push(DispatchRecord{Action: action, At: start, Duration: duration})
	capitan.Emit(ctx, StoreDispatched,
		KeyActionType.Field(action.Type),
		KeyDuration.Field(duration),
	)
	if s.metrics != nil {
		s.metrics.OnDispatch(action.Type, duration)
	}

	if s.equal == nil || !s.equal(prev, s.state) {
		for _, sub := range s.subs {
			sub.fn(s.state)
		}
		if s.metrics != nil {
			s.metrics.OnNotify(len(s.subs))
		}
	}

	return s.state, nil
}

package redox

import (
	"reflect"
	"testing"
)

type session struct {
	user string
}

func sessionReducer() *Reducer[session] {
	return NewReducer(session{}, Handlers[session]{
		"LOGIN": func(_ session, a Action) session {
			return session{user: a.Payload.(string)}
		},
		"LOGOUT": func(session, Action) session {
			return session{}
		},
	})
}

func rootReducer() *Combined {
	return Combine(map[string]DomainReducer{
		"counter": AsDomain[int](NewReducer(0, counterHandlers())),
		"session": AsDomain[session](sessionReducer()),
	})
}

func TestCombine_InitialSeedsEveryDomain(t *testing.T) {
	root := rootReducer()

	initial := root.Initial()
	if len(initial) != 2 {
		t.Fatalf("expected 2 domains, got %d", len(initial))
	}
	if initial["counter"] != 0 {
		t.Errorf("expected counter 0, got %v", initial["counter"])
	}
	if initial["session"] != (session{}) {
		t.Errorf("expected zero session, got %v", initial["session"])
	}
}

func TestCombine_InitialReturnsFreshMap(t *testing.T) {
	root := rootReducer()

	first := root.Initial()
	first["counter"] = 99

	if got := root.Initial()["counter"]; got != 0 {
		t.Errorf("expected a fresh seed map, got counter %v", got)
	}
}

func TestCombine_RoutesActionToEveryDomain(t *testing.T) {
	root := rootReducer()

	next := root.Reduce(root.Initial(), Action{Type: "INCREMENT"})
	if next["counter"] != 1 {
		t.Errorf("expected counter 1, got %v", next["counter"])
	}
	if next["session"] != (session{}) {
		t.Errorf("expected session untouched, got %v", next["session"])
	}

	next = root.Reduce(next, Action{Type: "LOGIN", Payload: "ada"})
	if next["counter"] != 1 {
		t.Errorf("expected counter untouched, got %v", next["counter"])
	}
	if next["session"] != (session{user: "ada"}) {
		t.Errorf("expected session for ada, got %v", next["session"])
	}
}

func TestCombine_UnknownActionPreservesMapIdentity(t *testing.T) {
	root := rootReducer()

	prev := root.Initial()
	next := root.Reduce(prev, Action{Type: "UNKNOWN"})

	if reflect.ValueOf(next).Pointer() != reflect.ValueOf(prev).Pointer() {
		t.Error("expected the same map back when no domain changed")
	}
}

func TestCombine_ChangedDomainProducesNewMap(t *testing.T) {
	root := rootReducer()

	prev := root.Initial()
	next := root.Reduce(prev, Action{Type: "INCREMENT"})

	if reflect.ValueOf(next).Pointer() == reflect.ValueOf(prev).Pointer() {
		t.Error("expected a new map when a domain changed")
	}
	if prev["counter"] != 0 {
		t.Errorf("expected previous map untouched, got %v", prev["counter"])
	}
}

func TestCombine_SeedsMissingDomainKeys(t *testing.T) {
	root := rootReducer()

	next := root.Reduce(map[string]any{"counter": 5}, Action{Type: "UNKNOWN"})
	if next["counter"] != 5 {
		t.Errorf("expected counter 5, got %v", next["counter"])
	}
	if next["session"] != (session{}) {
		t.Errorf("expected session seeded from initial, got %v", next["session"])
	}
}

func TestCombine_Nests(t *testing.T) {
	inner := Combine(map[string]DomainReducer{
		"counter": AsDomain[int](NewReducer(0, counterHandlers())),
	})
	outer := Combine(map[string]DomainReducer{
		"nested":  AsDomain[map[string]any](inner),
		"session": AsDomain[session](sessionReducer()),
	})

	next := outer.Reduce(outer.Initial(), Action{Type: "INCREMENT"})
	nested := next["nested"].(map[string]any)
	if nested["counter"] != 1 {
		t.Errorf("expected nested counter 1, got %v", nested["counter"])
	}
}

func TestCombine_MappingCopied(t *testing.T) {
	domains := map[string]DomainReducer{
		"counter": AsDomain[int](NewReducer(0, counterHandlers())),
	}
	root := Combine(domains)

	delete(domains, "counter")

	next := root.Reduce(root.Initial(), Action{Type: "INCREMENT"})
	if next["counter"] != 1 {
		t.Errorf("expected captured domain to survive, got %v", next["counter"])
	}
}

func TestCombine_EnhancedDomain(t *testing.T) {
	before := []Before[int]{
		func(_ Handler[int], _, state int) int { return state * 2 },
	}
	counter := New(before, nil).Reducer(0, counterHandlers())

	root := Combine(map[string]DomainReducer{
		"counter": AsDomain[int](counter),
	})

	next := root.Reduce(map[string]any{"counter": 3}, Action{Type: "INCREMENT"})
	if next["counter"] != 7 {
		t.Errorf("expected (3*2)+1=7, got %v", next["counter"])
	}
}

func TestSameValue_Nils(t *testing.T) {
	if !sameValue(nil, nil) {
		t.Error("expected nil == nil")
	}
	if sameValue(nil, 1) || sameValue(1, nil) {
		t.Error("expected nil != value")
	}
}

func TestSameValue_Comparable(t *testing.T) {
	if !sameValue(3, 3) {
		t.Error("expected equal ints to match")
	}
	if sameValue(3, 4) {
		t.Error("expected different ints to differ")
	}
	if sameValue(3, "3") {
		t.Error("expected different types to differ")
	}
}

func TestSameValue_Pointers(t *testing.T) {
	a := &session{user: "ada"}
	b := &session{user: "ada"}

	if !sameValue(a, a) {
		t.Error("expected same pointer to match")
	}
	if sameValue(a, b) {
		t.Error("expected distinct pointers to differ")
	}
}

func TestSameValue_Maps(t *testing.T) {
	m := map[string]int{"x": 1}

	if !sameValue(m, m) {
		t.Error("expected same map to match")
	}
	if sameValue(m, map[string]int{"x": 1}) {
		t.Error("expected distinct maps to differ")
	}
}

func TestSameValue_Slices(t *testing.T) {
	s := []int{1, 2}

	if !sameValue(s, s) {
		t.Error("expected same slice to match")
	}
	if sameValue(s, s[:1]) {
		t.Error("expected different lengths to differ")
	}
	if sameValue(s, []int{1, 2}) {
		t.Error("expected distinct backing arrays to differ")
	}
}

func TestSameValue_NonComparableTreatedAsChanged(t *testing.T) {
	type holder struct{ xs []int }

	if sameValue(holder{xs: nil}, holder{xs: nil}) {
		t.Error("expected non-comparable structs to be treated as changed")
	}
}

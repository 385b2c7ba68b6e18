package redox

import (
	"reflect"
	"sort"
)

// DomainReducer is the type-erased form of a reducer, used to compose
// independently typed state domains under one tree. Obtain one with
// AsDomain.
type DomainReducer interface {
	domainInitial() any
	domainReduce(prev any, action Action) any
}

// AsDomain erases a reducer's state type so it can participate in Combine.
// The domain's slot in the combined map always holds an S; a foreign value
// planted there by the caller panics at dispatch, like any other runtime
// fault.
func AsDomain[S any](r StateReducer[S]) DomainReducer {
	return domain[S]{r: r}
}

type domain[S any] struct {
	r StateReducer[S]
}

func (d domain[S]) domainInitial() any {
	return d.r.Initial()
}

func (d domain[S]) domainReduce(prev any, action Action) any {
	return d.r.Reduce(prev.(S), action)
}

// Combined merges independent state domains into one map-shaped state
// tree. Every action is dispatched to every domain in sorted key order;
// each domain decides for itself whether to act. It satisfies
// StateReducer[map[string]any], so combined trees nest and feed a Store
// directly.
type Combined struct {
	keys    []string
	domains map[string]DomainReducer
}

// Combine builds a Combined from a mapping of domain key to reducer.
// The mapping is copied; later caller mutations have no effect.
//
// Example:
//
//	root := redox.Combine(map[string]redox.DomainReducer{
//	    "counter": redox.AsDomain[int](counter),
//	    "session": redox.AsDomain[Session](session),
//	})
//	store := redox.NewStore[map[string]any](root)
func Combine(domains map[string]DomainReducer) *Combined {
	keys := make([]string, 0, len(domains))
	owned := make(map[string]DomainReducer, len(domains))
	for k, d := range domains {
		keys = append(keys, k)
		owned[k] = d
	}
	sort.Strings(keys)

	return &Combined{keys: keys, domains: owned}
}

// Initial returns a fresh map seeded with every domain's initial state.
func (c *Combined) Initial() map[string]any {
	initial := make(map[string]any, len(c.keys))
	for _, k := range c.keys {
		initial[k] = c.domains[k].domainInitial()
	}
	return initial
}

// Reduce dispatches the action to every domain. Keys missing from prev are
// seeded from the domain's initial state before reducing. When no domain's
// value changes and prev covers exactly the configured keys, prev itself is
// returned, preserving identity across the whole tree.
func (c *Combined) Reduce(prev map[string]any, action Action) map[string]any {
	changed := len(prev) != len(c.keys)

	next := make(map[string]any, len(c.keys))
	for _, k := range c.keys {
		prevDomain, ok := prev[k]
		if !ok {
			prevDomain = c.domains[k].domainInitial()
			changed = true
		}
		nextDomain := c.domains[k].domainReduce(prevDomain, action)
		next[k] = nextDomain
		if !sameValue(prevDomain, nextDomain) {
			changed = true
		}
	}

	if !changed {
		return prev
	}
	return next
}

// sameValue reports whether a domain value survived a dispatch untouched.
// Reference-shaped kinds compare by identity, comparable kinds by value;
// anything else is conservatively treated as changed, since interface
// equality on non-comparable values panics.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Len() == vb.Len() && (va.Len() == 0 || va.Pointer() == vb.Pointer())
	default:
		if va.Type().Comparable() {
			return a == b
		}
		return false
	}
}

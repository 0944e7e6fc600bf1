// Package kindset implements a generic, deterministically-ordered set of
// token kinds. It is adapted from the Set[E] family in tunaq's internal/util
// package (github.com/dekarrin/tunaq), trading tunaq's bare map[E]bool
// backing store for github.com/emirpasic/gods' treeset, so that iteration
// order (used for rendering FIRST/SHOULD-NOT-FOLLOW tables and for
// deterministic trail enumeration) doesn't depend on Go's randomized map
// order.
package kindset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Set is a deterministically-ordered set of comparable kind values. The zero
// value is not usable; construct one with New or Of.
type Set[K comparable] struct {
	t *treeset.Set
}

func comparator() utils.Comparator {
	return func(a, b interface{}) int {
		sa, sb := fmt.Sprintf("%v", a), fmt.Sprintf("%v", b)
		return strings.Compare(sa, sb)
	}
}

// New returns an empty Set.
func New[K comparable]() Set[K] {
	return Set[K]{t: treeset.NewWith(comparator())}
}

// Of returns a Set containing the given elements.
func Of[K comparable](elements ...K) Set[K] {
	s := New[K]()
	for _, e := range elements {
		s.Add(e)
	}
	return s
}

// Add adds the given kind to the set. No effect if already present.
func (s Set[K]) Add(k K) {
	s.t.Add(k)
}

// Has returns whether k is in the set.
func (s Set[K]) Has(k K) bool {
	return s.t.Contains(k)
}

// Remove removes k from the set. No effect if not present.
func (s Set[K]) Remove(k K) {
	s.t.Remove(k)
}

// Len returns the number of elements in the set.
func (s Set[K]) Len() int {
	return s.t.Size()
}

// Empty returns whether the set has no elements.
func (s Set[K]) Empty() bool {
	return s.t.Empty()
}

// Elements returns the set's elements in deterministic (string-rendered)
// order.
func (s Set[K]) Elements() []K {
	vals := s.t.Values()
	out := make([]K, len(vals))
	for i, v := range vals {
		out[i] = v.(K)
	}
	return out
}

// Copy returns a shallow copy of the set.
func (s Set[K]) Copy() Set[K] {
	cp := New[K]()
	cp.AddAll(s)
	return cp
}

// AddAll adds every element of o to s.
func (s Set[K]) AddAll(o Set[K]) {
	for _, k := range o.Elements() {
		s.Add(k)
	}
}

// Union returns a new Set containing every element of s and o.
func (s Set[K]) Union(o Set[K]) Set[K] {
	u := s.Copy()
	u.AddAll(o)
	return u
}

// Intersection returns a new Set containing the elements present in both s
// and o.
func (s Set[K]) Intersection(o Set[K]) Set[K] {
	r := New[K]()
	for _, k := range s.Elements() {
		if o.Has(k) {
			r.Add(k)
		}
	}
	return r
}

// Difference returns a new Set containing the elements of s that are not in
// o.
func (s Set[K]) Difference(o Set[K]) Set[K] {
	r := New[K]()
	for _, k := range s.Elements() {
		if !o.Has(k) {
			r.Add(k)
		}
	}
	return r
}

// DisjointWith returns whether s and o share no elements.
func (s Set[K]) DisjointWith(o Set[K]) bool {
	for _, k := range s.Elements() {
		if o.Has(k) {
			return false
		}
	}
	return true
}

// Any returns whether any element of s satisfies predicate.
func (s Set[K]) Any(predicate func(K) bool) bool {
	for _, k := range s.Elements() {
		if predicate(k) {
			return true
		}
	}
	return false
}

// String renders the set's contents in deterministic order, e.g. "{A, B}".
func (s Set[K]) String() string {
	elems := s.Elements()
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = fmt.Sprintf("%v", e)
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}

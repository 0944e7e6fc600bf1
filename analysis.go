package scallion

import (
	"github.com/dekarrin/scallion/internal/kindset"
	"github.com/dekarrin/scallion/internal/producer"
	"github.com/dekarrin/scallion/internal/term"
)

// Nullable reports whether p accepts the empty input, and the value it
// would produce if so.
func (p Parser[K, A]) Nullable() (A, bool) {
	props := term.Props(p.node)
	if !props.Nullable.HasValue {
		var zero A
		return zero, false
	}
	return props.Nullable.Value.(A), true
}

// IsProductive reports whether p accepts any input at all.
func (p Parser[K, A]) IsProductive() bool {
	return term.Props(p.node).Productive
}

// First returns the set of kinds that may legally start an input p accepts.
func (p Parser[K, A]) First() kindset.Set[K] {
	return term.Props(p.node).First
}

// Kinds returns every kind mentioned anywhere in p's term graph.
func (p Parser[K, A]) Kinds() kindset.Set[K] {
	return term.Props(p.node).Kinds
}

// ShouldNotFollow returns, for each kind that must not immediately follow p
// when p may finish here, a witness prefix parser demonstrating the
// ambiguity.
func (p Parser[K, A]) ShouldNotFollow() map[K]Parser[K, any] {
	snf := term.Props(p.node).SNF
	out := make(map[K]Parser[K, any], len(snf))
	for k, w := range snf {
		out[k] = Parser[K, any]{node: w}
	}
	return out
}

// IsLL1 reports whether p (and every subterm reachable from it) satisfies
// the LL(1) conditions: equivalent to Conflicts(p) being empty.
func (p Parser[K, A]) IsLL1() bool {
	return term.IsLL1(p.node)
}

// Conflicts enumerates every LL(1) conflict reachable from p.
func (p Parser[K, A]) Conflicts() []Conflict[K] {
	raw := term.Conflicts(p.node)
	out := make([]Conflict[K], len(raw))
	for i, c := range raw {
		out[i] = fromTermConflict(c)
	}
	return out
}

// Trails enumerates every Kind trail p accepts, in non-decreasing length
// order.
func (p Parser[K, A]) Trails() *producer.Producer[[]K] {
	return term.Trails(p.node)
}

// TokensOf enumerates token sequences that would parse, via p, to a value
// equal to target, using each Map's inverse function. kindOf classifies a
// candidate token, needed to check it against Elem leaves.
func (p Parser[K, A]) TokensOf(target A, kindOf func(any) K) *producer.Producer[[]any] {
	return term.TokensOf(p.node, target, kindOf)
}

// TrailsUpTo enumerates every Kind trail p accepts with length no greater
// than maxLen, in non-decreasing length order. It bounds the otherwise
// unbounded Trails producer so callers have a named, tested helper for
// capping enumeration work instead of reimplementing the cutoff themselves.
func (p Parser[K, A]) TrailsUpTo(maxLen int) [][]K {
	return p.Trails().Enumerate(maxLen)
}

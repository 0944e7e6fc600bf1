package term

import (
	"fmt"
	"reflect"

	"github.com/dekarrin/scallion/internal/producer"
)

// Trails returns the producer enumerating every Kind trail n accepts, in
// non-decreasing length order. Recursive nodes are memoized by identity so
// every back-edge to the same node shares one producer.
func Trails[K comparable](n *Node[K]) *producer.Producer[[]K] {
	switch n.Variant {
	case Success:
		return producer.Single[[]K](0, []K{})
	case Failure:
		return producer.Empty[[]K]()
	case Elem:
		return producer.Single[[]K](1, []K{n.Kind})
	case Transform:
		return Trails(n.Inner)
	case Sequence, Concat:
		l := Trails(n.Left)
		r := Trails(n.Right)
		return producer.Product(l, r, joinTrails[K])
	case Disjunction:
		return producer.Union(Trails(n.Left), Trails(n.Right))
	case Recursive:
		return recursiveTrails(n)
	}
	return producer.Empty[[]K]()
}

func joinTrails[K comparable](a, b []K) []K {
	out := make([]K, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// recursiveTrails builds n's trail producer lazily: the gen closure defers
// calling Trails(n.Force()) until a bucket is actually requested, by which
// point n.trailsProd (set here, before Force is ever reached) is already in
// place for any back-edge to find. This gives every reference to the same
// Recursive node one shared producer instead of a fresh one per occurrence,
// since Producer itself carries no read cursor and so needs no duplication
// step to be shared safely across consumers.
func recursiveTrails[K comparable](n *Node[K]) *producer.Producer[[]K] {
	n.trailsOnce.Do(func() {
		n.trailsProd = producer.New(func(length int) [][]K {
			return Trails(n.Force()).Bucket(length)
		})
	})
	return n.trailsProd
}

// TokensOf returns the producer enumerating every token sequence that would
// parse (via n) to a value equal to target, using each Transform's inverse.
// kindOf classifies an arbitrary candidate token, needed at Elem leaves to
// check it against the node's accepted kind.
func TokensOf[K comparable](n *Node[K], target any, kindOf func(any) K) *producer.Producer[[]any] {
	switch n.Variant {
	case Success:
		if valuesEqual(n.Value, target) {
			return producer.Single[[]any](0, nil)
		}
		return producer.Empty[[]any]()
	case Failure:
		return producer.Empty[[]any]()
	case Elem:
		if kindOf(target) == n.Kind {
			return producer.Single[[]any](1, []any{target})
		}
		return producer.Empty[[]any]()
	case Transform:
		if n.Inverse == nil {
			return producer.Empty[[]any]()
		}
		result := producer.Empty[[]any]()
		for _, candidate := range n.Inverse(target) {
			result = producer.Union(result, TokensOf(n.Inner, candidate, kindOf))
		}
		return result
	case Sequence:
		pair, ok := target.(Pair)
		if !ok {
			return producer.Empty[[]any]()
		}
		l := TokensOf(n.Left, pair.First, kindOf)
		r := TokensOf(n.Right, pair.Second, kindOf)
		return producer.Product(l, r, joinTokens)
	case Concat:
		ts, ok := target.([]any)
		if !ok {
			return producer.Empty[[]any]()
		}
		result := producer.Empty[[]any]()
		for i := 0; i <= len(ts); i++ {
			l := TokensOf(n.Left, append([]any{}, ts[:i]...), kindOf)
			r := TokensOf(n.Right, append([]any{}, ts[i:]...), kindOf)
			result = producer.Union(result, producer.Product(l, r, joinTokens))
		}
		return result
	case Disjunction:
		return producer.Union(TokensOf(n.Left, target, kindOf), TokensOf(n.Right, target, kindOf))
	case Recursive:
		return recursiveTokensOf(n, target, kindOf)
	}
	return producer.Empty[[]any]()
}

func joinTokens(a, b []any) []any {
	out := make([]any, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// valuesEqual compares two parser values for the Success/target equality
// check. Parser values may be slices or structs holding slices (Pair,
// concat results), which == cannot compare; reflect.DeepEqual is the
// general-purpose fallback for opaque, caller-defined value types.
func valuesEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// recursiveTokensOf mirrors recursiveTrails, but keyed by the target value
// as well as identity: a Recursive node's reverse-token producer depends on
// which output value it's being unwound towards, so each target gets its
// own memo slot, keyed by (id, target).
func recursiveTokensOf[K comparable](n *Node[K], target any, kindOf func(any) K) *producer.Producer[[]any] {
	key := fmt.Sprintf("%v", target)

	n.tokensMu.Lock()
	if n.tokensMemo == nil {
		n.tokensMemo = make(map[string]*producer.Producer[[]any])
	}
	if p, ok := n.tokensMemo[key]; ok {
		n.tokensMu.Unlock()
		return p
	}
	p := producer.New(func(length int) [][]any {
		return TokensOf(n.Force(), target, kindOf).Bucket(length)
	})
	n.tokensMemo[key] = p
	n.tokensMu.Unlock()
	return p
}

// Package scallion builds and runs LL(1) parsers as composable combinator
// values. A parser is constructed from primitives (Elem, Epsilon, Failure)
// and combinators (Seq, Concat, Or, Map, Recursive, and the derived
// repetition/separator helpers in combinators.go), analyzed for LL(1)-ness,
// and driven token-by-token with Apply.
package scallion

import "github.com/dekarrin/scallion/internal/term"

// Parser is an LL(1) parser combinator producing values of type A from a
// stream of tokens classified by kinds of type K. Parser values are
// immutable and freely shared; combinators build new values rather than
// mutating existing ones.
type Parser[K comparable, A any] struct {
	node *term.Node[K]
}

// Pair is the value Seq produces: the paired results of its two operands,
// kept as a dedicated two-field record (rather than a tuple) so reverse
// token generation can split it apart unambiguously.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Option is the value Opt produces: either a parsed A, or absence.
type Option[A any] struct {
	Value   A
	Present bool
}

// Elem accepts exactly one token of kind k, producing that token as its
// value.
func Elem[K comparable, A any](k K) Parser[K, A] {
	return Parser[K, A]{node: term.NewElem[K](k)}
}

// Epsilon accepts the empty input, producing v without consuming anything.
func Epsilon[K comparable, A any](v A) Parser[K, A] {
	return Parser[K, A]{node: term.NewSuccess[K](v)}
}

// Failure never succeeds, on any input.
func Failure[K comparable, A any]() Parser[K, A] {
	return Parser[K, A]{node: term.NewFailure[K]()}
}

// Recursive builds a parser whose definition may refer to itself. thunk is
// called once, lazily, the first time the parser's properties or derivative
// are needed; its result should reference the Parser variable this call is
// assigned to (see Many's implementation for the idiom).
func Recursive[K comparable, A any](thunk func() Parser[K, A]) Parser[K, A] {
	return Parser[K, A]{node: term.NewRecursive[K](func() *term.Node[K] {
		return thunk().node
	})}
}

// Or accepts whichever of l, r parses, trying l first when both could.
func Or[K comparable, A any](l, r Parser[K, A]) Parser[K, A] {
	return Parser[K, A]{node: term.NewDisjunction(l.node, r.node)}
}

// Seq runs l then r, producing the pair of their values.
func Seq[K comparable, A, B any](l Parser[K, A], r Parser[K, B]) Parser[K, Pair[A, B]] {
	node := term.NewSequence(l.node, r.node)
	node = term.NewTransform(node,
		func(v any) any {
			p := v.(term.Pair)
			return Pair[A, B]{First: p.First.(A), Second: p.Second.(B)}
		},
		func(target any) []any {
			p, ok := target.(Pair[A, B])
			if !ok {
				return nil
			}
			return []any{term.Pair{First: p.First, Second: p.Second}}
		},
	)
	return Parser[K, Pair[A, B]]{node: node}
}

// Map transforms a parser's value with f. inv, if non-nil, maps a target
// value of the output type back to the candidate input values that could
// have produced it; it powers TokensOf. A nil inv means "no candidates",
// which is fine for parsers that are only ever run forward.
func Map[K comparable, A, B any](p Parser[K, A], f func(A) B, inv func(B) []A) Parser[K, B] {
	var invAny func(any) []any
	if inv != nil {
		invAny = func(target any) []any {
			bs := inv(target.(B))
			out := make([]any, len(bs))
			for i, b := range bs {
				out[i] = b
			}
			return out
		}
	}
	node := term.NewTransform(p.node, func(v any) any { return f(v.(A)) }, invAny)
	return Parser[K, B]{node: node}
}

func singletonFwd[A any](a A) []A { return []A{a} }

func singletonInv[A any](as []A) []A {
	if len(as) == 1 {
		return []A{as[0]}
	}
	return nil
}

// liftSlice adapts a Parser[K, []A] to the raw []any representation Concat
// operates on internally.
func liftSlice[K comparable, A any](p Parser[K, []A]) *term.Node[K] {
	return term.NewTransform(p.node,
		func(v any) any {
			as := v.([]A)
			out := make([]any, len(as))
			for i, a := range as {
				out[i] = a
			}
			return out
		},
		func(target any) []any {
			as, ok := target.([]any)
			if !ok {
				return nil
			}
			out := make([]A, len(as))
			for i, a := range as {
				aa, ok := a.(A)
				if !ok {
					return nil
				}
				out[i] = aa
			}
			return []any{out}
		},
	)
}

func lowerSlice[K comparable, A any](n *term.Node[K]) Parser[K, []A] {
	node := term.NewTransform(n,
		func(v any) any {
			as := v.([]any)
			out := make([]A, len(as))
			for i, a := range as {
				out[i] = a.(A)
			}
			return out
		},
		func(target any) []any {
			as, ok := target.([]A)
			if !ok {
				return nil
			}
			out := make([]any, len(as))
			for i, a := range as {
				out[i] = a
			}
			return []any{out}
		},
	)
	return Parser[K, []A]{node: node}
}

// Concat runs l then r, concatenating their slice-typed values into one.
func Concat[K comparable, A any](l, r Parser[K, []A]) Parser[K, []A] {
	node := term.NewConcat(liftSlice(l), liftSlice(r))
	return lowerSlice[K, A](node)
}

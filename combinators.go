package scallion

import "github.com/dekarrin/scallion/internal/term"

// Opt accepts p or the empty input, yielding Option.Present = false when p
// did not match.
func Opt[K comparable, A any](p Parser[K, A]) Parser[K, Option[A]] {
	some := Map(p,
		func(a A) Option[A] { return Option[A]{Value: a, Present: true} },
		func(o Option[A]) []A {
			if o.Present {
				return []A{o.Value}
			}
			return nil
		},
	)
	none := Epsilon[K, Option[A]](Option[A]{})
	return Or(none, some)
}

// Many accepts zero or more repetitions of p, left to right.
func Many[K comparable, A any](p Parser[K, A]) Parser[K, []A] {
	var self Parser[K, []A]
	self = Recursive[K, []A](func() Parser[K, []A] {
		head := Map(p, singletonFwd[A], singletonInv[A])
		rec := Concat(head, self)
		return Or(Epsilon[K, []A](nil), rec)
	})
	return self
}

// Many1 accepts one or more repetitions of p.
func Many1[K comparable, A any](p Parser[K, A]) Parser[K, []A] {
	head := Map(p, singletonFwd[A], singletonInv[A])
	return Concat(head, Many(p))
}

// DiscardLeft runs l then r, keeping only r's value. l is typically a
// separator or marker token whose own value carries no information; its
// inverse is approximated with l's type's zero value, which round-trips
// correctly for unit-like left operands (the common case for this
// combinator) but not for an l whose value genuinely varies.
func DiscardLeft[K comparable, A, B any](l Parser[K, A], r Parser[K, B]) Parser[K, B] {
	pair := Seq(l, r)
	return Map(pair,
		func(p Pair[A, B]) B { return p.Second },
		func(b B) []Pair[A, B] {
			var zero A
			return []Pair[A, B]{{First: zero, Second: b}}
		},
	)
}

// DiscardRight runs l then r, keeping only l's value. See DiscardLeft for
// the inverse caveat, mirrored here for r.
func DiscardRight[K comparable, A, B any](l Parser[K, A], r Parser[K, B]) Parser[K, A] {
	pair := Seq(l, r)
	return Map(pair,
		func(p Pair[A, B]) A { return p.First },
		func(a A) []Pair[A, B] {
			var zero B
			return []Pair[A, B]{{First: a, Second: zero}}
		},
	)
}

// RepSep accepts zero or more p separated by sep, discarding sep's values.
func RepSep[K comparable, A, S any](p Parser[K, A], sep Parser[K, S]) Parser[K, []A] {
	return Or(Rep1Sep(p, sep), Epsilon[K, []A](nil))
}

// Rep1Sep accepts one or more p separated by sep, discarding sep's values.
func Rep1Sep[K comparable, A, S any](p Parser[K, A], sep Parser[K, S]) Parser[K, []A] {
	head := Map(p, singletonFwd[A], singletonInv[A])
	tail := Many(DiscardLeft(sep, p))
	return Concat(head, tail)
}

// OneOf accepts whichever of ps parses, tried in order.
func OneOf[K comparable, A any](ps ...Parser[K, A]) Parser[K, A] {
	if len(ps) == 0 {
		return Failure[K, A]()
	}
	out := ps[0]
	for _, p := range ps[1:] {
		out = Or(out, p)
	}
	return out
}

// AppendElem runs list then elem, appending elem's value to list's.
func AppendElem[K comparable, A any](list Parser[K, []A], elem Parser[K, A]) Parser[K, []A] {
	single := Map(elem, singletonFwd[A], singletonInv[A])
	return Concat(list, single)
}

// PrependElem runs elem then list, prepending elem's value to list's.
func PrependElem[K comparable, A any](elem Parser[K, A], list Parser[K, []A]) Parser[K, []A] {
	single := Map(elem, singletonFwd[A], singletonInv[A])
	return Concat(single, list)
}

// Void discards p's value entirely, useful for separators and markers
// that exist only to be consumed.
func Void[K comparable, A any](p Parser[K, A]) Parser[K, struct{}] {
	return Map(p,
		func(A) struct{} { return struct{}{} },
		func(struct{}) []A { return nil },
	)
}

// Unit runs a void parser, producing a constant default value when it
// succeeds.
func Unit[K comparable, A any](p Parser[K, struct{}], def A) Parser[K, A] {
	return Map(p,
		func(struct{}) A { return def },
		func(A) []struct{} { return []struct{}{{}} },
	)
}

// Filter returns a parser identical to p except that any Elem(k) within it
// becomes a Failure where pred(k) is false. Two Filter calls on the same
// parser, even with an identical predicate, produce structurally distinct
// terms with distinct recursion identities -- there is no cross-call
// deduplication.
func (p Parser[K, A]) Filter(pred func(K) bool) Parser[K, A] {
	return Parser[K, A]{node: term.Filter(p.node, pred)}
}

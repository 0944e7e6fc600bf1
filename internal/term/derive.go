package term

// Derive computes the residual term after consuming one token of the given
// kind, per the per-variant derivative rules. The token itself is opaque
// (erased to any); kind is what Elem's derivative compares against its own
// kind, and what Disjunction's derivative uses to choose a side.
func Derive[K comparable](n *Node[K], token any, kind K) *Node[K] {
	switch n.Variant {
	case Success, Failure:
		return NewFailure[K]()
	case Elem:
		if n.Kind == kind {
			return NewSuccess[K](token)
		}
		return NewFailure[K]()
	case Transform:
		return NewTransform(Derive(n.Inner, token, kind), n.Forward, n.Inverse)
	case Sequence:
		return deriveSequence(n, token, kind, false)
	case Concat:
		return deriveSequence(n, token, kind, true)
	case Disjunction:
		return deriveDisjunction(n, token, kind)
	case Recursive:
		return Derive(n.Force(), token, kind)
	}
	return NewFailure[K]()
}

func deriveSequence[K comparable](n *Node[K], token any, kind K, concat bool) *Node[K] {
	lp := Props(n.Left)
	lPrime := Derive(n.Left, token, kind)
	if Props(lPrime).Productive {
		if concat {
			return NewConcat(lPrime, n.Right)
		}
		return NewSequence(lPrime, n.Right)
	}
	if lp.Nullable.HasValue {
		rPrime := Derive(n.Right, token, kind)
		if concat {
			return NewConcat(NewSuccess[K](lp.Nullable.Value), rPrime)
		}
		return NewSequence(NewSuccess[K](lp.Nullable.Value), rPrime)
	}
	return NewFailure[K]()
}

func deriveDisjunction[K comparable](n *Node[K], token any, kind K) *Node[K] {
	// Pick whichever side's FIRST set actually claims this kind; for a
	// well-formed LL(1) term the sets are disjoint so at most one side
	// matches. This is what keeps a nullable branch (which often has a
	// small or empty FIRST set) from silently shadowing the side that
	// genuinely starts with kind.
	lp := Props(n.Left)
	if lp.First.Has(kind) {
		return Derive(n.Left, token, kind)
	}
	return Derive(n.Right, token, kind)
}

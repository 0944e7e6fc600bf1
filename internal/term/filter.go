package term

// Filter returns a new term identical in structure to n, except that every
// Elem(k) becomes Failure where pred(k) is false. Recursive nodes are
// rebuilt as fresh recursive nodes (new identities) memoized per source
// identity within this one Filter call, so the filtered graph keeps the
// same cycle shape as n -- but a second, independent Filter call, even with
// an identical predicate, builds an entirely distinct set of identities.
// There is no cross-call deduplication by term or predicate.
func Filter[K comparable](n *Node[K], pred func(K) bool) *Node[K] {
	memo := make(map[RecID]*Node[K])
	return filterNode(n, pred, memo)
}

func filterNode[K comparable](n *Node[K], pred func(K) bool, memo map[RecID]*Node[K]) *Node[K] {
	switch n.Variant {
	case Success, Failure:
		return n
	case Elem:
		if pred(n.Kind) {
			return n
		}
		return NewFailure[K]()
	case Transform:
		return NewTransform(filterNode(n.Inner, pred, memo), n.Forward, n.Inverse)
	case Sequence:
		return NewSequence(filterNode(n.Left, pred, memo), filterNode(n.Right, pred, memo))
	case Concat:
		return NewConcat(filterNode(n.Left, pred, memo), filterNode(n.Right, pred, memo))
	case Disjunction:
		return NewDisjunction(filterNode(n.Left, pred, memo), filterNode(n.Right, pred, memo))
	case Recursive:
		if fn, ok := memo[n.ID]; ok {
			return fn
		}
		fresh := NewRecursive(func() *Node[K] {
			return filterNode(n.Force(), pred, memo)
		})
		memo[n.ID] = fresh
		return fresh
	}
	return n
}

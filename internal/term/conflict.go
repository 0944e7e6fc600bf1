package term

// ConflictKind distinguishes the four shapes an LL(1) conflict can take.
type ConflictKind int

const (
	NullableConflict ConflictKind = iota
	FirstConflict
	FollowConflict
	LeftRecursiveConflict
)

// Conflict is a single structured LL(1) conflict report: the prefix parser
// leading up to the ambiguity, the offending node, and (for First/Follow
// conflicts) the specific kinds responsible.
type Conflict[K comparable] struct {
	Kind           ConflictKind
	Prefix         *Node[K]
	AmbiguousKinds []K
	Disjunction    *Node[K] // set for Nullable/First conflicts
	Sequence       *Node[K] // set for Follow conflicts
	RecursiveNode  *Node[K] // set for LeftRecursive conflicts
}

// SourceNode returns the node this conflict was found on: the Disjunction
// for Nullable/First conflicts, the Sequence/Concat for Follow conflicts, or
// the Recursive node for LeftRecursive conflicts.
func (c Conflict[K]) SourceNode() *Node[K] {
	switch c.Kind {
	case NullableConflict, FirstConflict:
		return c.Disjunction
	case FollowConflict:
		return c.Sequence
	case LeftRecursiveConflict:
		return c.RecursiveNode
	}
	return nil
}

// AddPrefix returns a copy of c whose Prefix has p prepended (p ~ oldPrefix),
// used when a conflict found inside the right side of a Sequence/Concat
// propagates up through the enclosing left subterm.
func (c Conflict[K]) AddPrefix(p *Node[K]) Conflict[K] {
	c.Prefix = NewSequence(p, c.Prefix)
	return c
}

// IsLL1 reports whether n (and everything reachable from it) satisfies the
// LL(1) conditions: no subterm conflicts, no left-recursion.
func IsLL1[K comparable](n *Node[K]) bool {
	return isLL1Visited(n, nil)
}

func isLL1Visited[K comparable](n *Node[K], v visited) bool {
	switch n.Variant {
	case Success, Failure, Elem:
		return true
	case Transform:
		return isLL1Visited(n.Inner, v)
	case Sequence, Concat:
		if !isLL1Visited(n.Left, v) || !isLL1Visited(n.Right, v) {
			return false
		}
		lp := Props(n.Left)
		rp := Props(n.Right)
		for k := range lp.SNF {
			if rp.First.Has(k) {
				return false
			}
		}
		return true
	case Disjunction:
		if !isLL1Visited(n.Left, v) || !isLL1Visited(n.Right, v) {
			return false
		}
		lp := Props(n.Left)
		rp := Props(n.Right)
		if lp.Nullable.HasValue && rp.Nullable.HasValue {
			return false
		}
		return lp.First.DisjointWith(rp.First)
	case Recursive:
		if v[n.ID] {
			return true
		}
		if CalledLeft(n.Force(), n.ID, nil) {
			return false
		}
		return isLL1Visited(n.Force(), v.with(n.ID))
	}
	return true
}

// Conflicts enumerates every LL(1) conflict reachable from n, each carrying
// a witness prefix parser. Conflicts found inside the right side of a
// Sequence/Concat have the left side prepended to their prefix as they
// propagate upward (Conflict.AddPrefix).
func Conflicts[K comparable](n *Node[K]) []Conflict[K] {
	return conflictsVisited(n, nil)
}

func conflictsVisited[K comparable](n *Node[K], v visited) []Conflict[K] {
	switch n.Variant {
	case Success, Failure, Elem:
		return nil
	case Transform:
		return conflictsVisited(n.Inner, v)
	case Sequence, Concat:
		return sequenceConflicts(n, v)
	case Disjunction:
		return disjunctionConflicts(n, v)
	case Recursive:
		if v[n.ID] {
			return nil
		}
		var out []Conflict[K]
		if CalledLeft(n.Force(), n.ID, nil) {
			out = append(out, Conflict[K]{
				Kind:          LeftRecursiveConflict,
				Prefix:        NewSuccess[K](struct{}{}),
				RecursiveNode: n,
			})
		}
		out = append(out, conflictsVisited(n.Force(), v.with(n.ID))...)
		return out
	}
	return nil
}

func sequenceConflicts[K comparable](n *Node[K], v visited) []Conflict[K] {
	var out []Conflict[K]
	out = append(out, conflictsVisited(n.Left, v)...)
	for _, c := range conflictsVisited(n.Right, v) {
		out = append(out, c.AddPrefix(n.Left))
	}

	lp := Props(n.Left)
	rp := Props(n.Right)
	var ambiguous []K
	var witness *Node[K]
	for _, k := range rp.First.Elements() {
		if w, ok := lp.SNF[k]; ok {
			ambiguous = append(ambiguous, k)
			witness = mergeWitness(witness, w)
		}
	}
	if len(ambiguous) > 0 {
		out = append(out, Conflict[K]{
			Kind:           FollowConflict,
			Prefix:         witness,
			AmbiguousKinds: ambiguous,
			Sequence:       n,
		})
	}
	return out
}

func disjunctionConflicts[K comparable](n *Node[K], v visited) []Conflict[K] {
	var out []Conflict[K]
	out = append(out, conflictsVisited(n.Left, v)...)
	out = append(out, conflictsVisited(n.Right, v)...)

	lp := Props(n.Left)
	rp := Props(n.Right)

	if lp.Nullable.HasValue && rp.Nullable.HasValue {
		out = append(out, Conflict[K]{
			Kind:        NullableConflict,
			Prefix:      NewSuccess[K](struct{}{}),
			Disjunction: n,
		})
	}

	common := lp.First.Intersection(rp.First)
	if !common.Empty() {
		out = append(out, Conflict[K]{
			Kind:           FirstConflict,
			Prefix:         NewSuccess[K](struct{}{}),
			AmbiguousKinds: common.Elements(),
			Disjunction:    n,
		})
	}
	return out
}

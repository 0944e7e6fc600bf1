package term

import "github.com/dekarrin/scallion/internal/kindset"

// Nullable holds the term's nullable value, if any. HasValue is false when
// the term is not nullable.
type Nullable struct {
	HasValue bool
	Value    any
}

// SNFEntry is one should-not-follow entry: a kind that must not immediately
// follow the owning term, paired with a witness parser showing the prefix
// that leads to the ambiguity.
type SNFEntry[K comparable] struct {
	Kind    K
	Witness *Node[K]
}

// Properties bundles the four fixpoint properties plus the all-kinds
// summary, computed together in one traversal since they share recursion
// structure.
type Properties[K comparable] struct {
	Nullable   Nullable
	Productive bool
	First      kindset.Set[K]
	SNF        map[K]*Node[K]
	Kinds      kindset.Set[K]
}

func bottom[K comparable]() Properties[K] {
	return Properties[K]{
		Nullable:   Nullable{},
		Productive: false,
		First:      kindset.New[K](),
		SNF:        map[K]*Node[K]{},
		Kinds:      kindset.New[K](),
	}
}

// visited tracks the RecIDs currently being descended into on the current
// path, so a Recursive node revisited along the same path returns the
// monotone lattice bottom instead of recursing forever.
type visited map[RecID]bool

func (v visited) with(id RecID) visited {
	nv := make(visited, len(v)+1)
	for k := range v {
		nv[k] = true
	}
	nv[id] = true
	return nv
}

// Props returns n's nullable/productive/first/should-not-follow/kinds
// properties, as the least fixed point of the mutually-recursive equations
// over the term graph. A node's result is memoized only when it is computed
// for a query with an empty visited set (the Props entry point): a node
// reached inside a cycle during another node's query may see the
// lattice-bottom placeholder for a back-edge, so that partial result is
// returned to the enclosing computation but never cached.
func Props[K comparable](n *Node[K]) Properties[K] {
	return propsVisited(n, nil)
}

func propsVisited[K comparable](n *Node[K], v visited) Properties[K] {
	if n.Variant == Recursive {
		if v[n.ID] {
			return bottom[K]()
		}
		n.propsMu.Lock()
		if n.propsComputed {
			p := n.props
			n.propsMu.Unlock()
			return p
		}
		n.propsMu.Unlock()

		p := propsVisited(n.Force(), v.with(n.ID))
		if len(v) > 0 {
			return p
		}

		n.propsMu.Lock()
		if !n.propsComputed {
			n.props = p
			n.propsComputed = true
		}
		n.propsMu.Unlock()
		return p
	}

	n.propsMu.Lock()
	if n.propsComputed {
		p := n.props
		n.propsMu.Unlock()
		return p
	}
	n.propsMu.Unlock()

	p := computeOwn(n, v)
	if len(v) > 0 {
		return p
	}

	n.propsMu.Lock()
	if !n.propsComputed {
		n.props = p
		n.propsComputed = true
	}
	n.propsMu.Unlock()
	return p
}

func computeOwn[K comparable](n *Node[K], v visited) Properties[K] {
	switch n.Variant {
	case Success:
		return Properties[K]{
			Nullable:   Nullable{HasValue: true, Value: n.Value},
			Productive: true,
			First:      kindset.New[K](),
			SNF:        map[K]*Node[K]{},
			Kinds:      kindset.New[K](),
		}
	case Failure:
		return bottom[K]()
	case Elem:
		return Properties[K]{
			Nullable:   Nullable{},
			Productive: true,
			First:      kindset.Of(n.Kind),
			SNF:        map[K]*Node[K]{},
			Kinds:      kindset.Of(n.Kind),
		}
	case Transform:
		ip := propsVisited(n.Inner, v)
		out := ip
		if ip.Nullable.HasValue {
			out.Nullable = Nullable{HasValue: true, Value: n.Forward(ip.Nullable.Value)}
		}
		return out
	case Sequence:
		return sequenceProps(n, v, false)
	case Concat:
		return sequenceProps(n, v, true)
	case Disjunction:
		return disjunctionProps(n, v)
	default:
		panic("term: computeOwn called on Recursive node")
	}
}

func sequenceProps[K comparable](n *Node[K], v visited, concat bool) Properties[K] {
	lp := propsVisited(n.Left, v)
	rp := propsVisited(n.Right, v)

	var nullable Nullable
	if lp.Nullable.HasValue && rp.Nullable.HasValue {
		if concat {
			nullable = Nullable{HasValue: true, Value: concatValues(lp.Nullable.Value, rp.Nullable.Value)}
		} else {
			nullable = Nullable{HasValue: true, Value: Pair{First: lp.Nullable.Value, Second: rp.Nullable.Value}}
		}
	}

	first := lp.First.Copy()
	if lp.Nullable.HasValue {
		first.AddAll(rp.First)
	}

	snf := map[K]*Node[K]{}
	for k, w := range rp.SNF {
		snf[k] = NewSequence(n.Left, w)
	}
	if rp.Nullable.HasValue {
		for k, w := range lp.SNF {
			snf[k] = mergeWitness(snf[k], w)
		}
	}

	return Properties[K]{
		Nullable:   nullable,
		Productive: lp.Productive && rp.Productive,
		First:      first,
		SNF:        snf,
		Kinds:      lp.Kinds.Union(rp.Kinds),
	}
}

func disjunctionProps[K comparable](n *Node[K], v visited) Properties[K] {
	lp := propsVisited(n.Left, v)
	rp := propsVisited(n.Right, v)

	nullable := lp.Nullable
	if !nullable.HasValue {
		nullable = rp.Nullable
	}

	snf := map[K]*Node[K]{}
	for k, w := range lp.SNF {
		snf[k] = mergeWitness(snf[k], w)
	}
	for k, w := range rp.SNF {
		snf[k] = mergeWitness(snf[k], w)
	}
	if rp.Nullable.HasValue {
		for _, k := range lp.First.Elements() {
			snf[k] = mergeWitness(snf[k], NewSuccess[K](struct{}{}))
		}
	}
	if lp.Nullable.HasValue {
		for _, k := range rp.First.Elements() {
			snf[k] = mergeWitness(snf[k], NewSuccess[K](struct{}{}))
		}
	}

	return Properties[K]{
		Nullable:   nullable,
		Productive: lp.Productive || rp.Productive,
		First:      lp.First.Union(rp.First),
		SNF:        snf,
		Kinds:      lp.Kinds.Union(rp.Kinds),
	}
}

func mergeWitness[K comparable](existing, w *Node[K]) *Node[K] {
	if existing == nil {
		return w
	}
	return NewDisjunction(existing, w)
}

// CalledLeft reports whether n can reach the Recursive node with the given
// target identity without consuming any input first -- the defining test
// for left recursion. visited tracks RecIDs already descended into on the
// current path so a true cycle that doesn't reach target terminates instead
// of looping.
func CalledLeft[K comparable](n *Node[K], target RecID, v visited) bool {
	switch n.Variant {
	case Success, Failure, Elem:
		return false
	case Transform:
		return CalledLeft(n.Inner, target, v)
	case Sequence, Concat:
		if CalledLeft(n.Left, target, v) {
			return true
		}
		lp := Props(n.Left)
		if lp.Nullable.HasValue {
			return CalledLeft(n.Right, target, v)
		}
		return false
	case Disjunction:
		return CalledLeft(n.Left, target, v) || CalledLeft(n.Right, target, v)
	case Recursive:
		if n.ID == target {
			return true
		}
		if v[n.ID] {
			return false
		}
		return CalledLeft(n.Force(), target, v.with(n.ID))
	}
	return false
}

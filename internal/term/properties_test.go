package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type kind string

const (
	kindA  kind = "A"
	kindB  kind = "B"
	kindC  kind = "C"
	kindNum kind = "NUM"
	kindLP  kind = "LP"
	kindRP  kind = "RP"
)

func Test_Props_Elem(t *testing.T) {
	assert := assert.New(t)
	n := NewElem[kind](kindA)
	p := Props(n)

	assert.False(p.Nullable.HasValue)
	assert.True(p.Productive)
	assert.True(p.First.Has(kindA))
	assert.Equal(1, p.First.Len())
}

func Test_Props_Many_ElemA(t *testing.T) {
	// p = recursive( epsilon([]) | elem(A) ~ self ), modeling many(elem(A))
	assert := assert.New(t)

	var self *Node[kind]
	self = NewRecursive(func() *Node[kind] {
		return NewDisjunction(
			NewSuccess[kind]([]any{}),
			NewSequence(NewElem[kind](kindA), self),
		)
	})

	p := Props(self)
	assert.True(p.Nullable.HasValue)
	assert.True(p.Productive)
	assert.True(p.First.Has(kindA))
	assert.Equal(1, p.First.Len())
}

func Test_Props_Disjunction_FirstConflict(t *testing.T) {
	assert := assert.New(t)
	n := NewDisjunction(NewElem[kind](kindA), NewElem[kind](kindA))

	assert.False(IsLL1(n))
	conflicts := Conflicts(n)
	found := false
	for _, c := range conflicts {
		if c.Kind == FirstConflict {
			found = true
			assert.Contains(c.AmbiguousKinds, kindA)
		}
	}
	assert.True(found, "expected a FirstConflict to be reported")
}

func Test_Props_FollowConflict(t *testing.T) {
	assert := assert.New(t)

	// p = (epsilon(0) | elem(A).map(_ => 1)) ~ elem(A)
	left := NewDisjunction(
		NewSuccess[kind](0),
		NewTransform(NewElem[kind](kindA), func(any) any { return 1 }, nil),
	)
	p := NewSequence(left, NewElem[kind](kindA))

	assert.False(IsLL1(p))
	conflicts := Conflicts(p)
	found := false
	for _, c := range conflicts {
		if c.Kind == FollowConflict {
			found = true
			assert.Contains(c.AmbiguousKinds, kindA)
		}
	}
	assert.True(found, "expected a FollowConflict to be reported")
}

func Test_Props_LeftRecursiveConflict(t *testing.T) {
	assert := assert.New(t)

	var self *Node[kind]
	self = NewRecursive(func() *Node[kind] {
		return NewSequence(self, NewElem[kind](kindA))
	})

	assert.True(CalledLeft(self.Force(), self.ID, nil))
	assert.False(IsLL1(self))

	conflicts := Conflicts(self)
	found := false
	for _, c := range conflicts {
		if c.Kind == LeftRecursiveConflict {
			found = true
		}
	}
	assert.True(found, "expected a LeftRecursiveConflict to be reported")
}

func Test_Props_RecursiveExpr_IsLL1(t *testing.T) {
	// expr := number | "(" ~ expr ~ ")"
	assert := assert.New(t)

	var expr *Node[kind]
	expr = NewRecursive(func() *Node[kind] {
		return NewDisjunction(
			NewElem[kind](kindNum),
			NewSequence(NewElem[kind](kindLP), NewSequence(expr, NewElem[kind](kindRP))),
		)
	})

	assert.True(IsLL1(expr))
	assert.Empty(Conflicts(expr))
}

package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Filter_RejectsDisallowedKind(t *testing.T) {
	assert := assert.New(t)

	p := NewDisjunction(NewElem[kind](kindA), NewElem[kind](kindB))
	filtered := Filter(p, func(k kind) bool { return k != kindB })

	props := Props(filtered)
	assert.True(props.First.Has(kindA))
	assert.False(props.First.Has(kindB))
}

func Test_Filter_PreservesRecursiveShape(t *testing.T) {
	assert := assert.New(t)

	var self *Node[kind]
	self = NewRecursive(func() *Node[kind] {
		return NewDisjunction(
			NewSuccess[kind]([]any{}),
			NewSequence(NewElem[kind](kindA), self),
		)
	})

	filtered := Filter(self, func(k kind) bool { return k != kindA })
	props := Props(filtered)

	// every occurrence of elem(A) became Failure, collapsing the repetition
	// to just the empty alternative
	assert.True(props.Nullable.HasValue)
	assert.False(props.First.Has(kindA))
}

func Test_Filter_TwoCallsAreDistinctTerms(t *testing.T) {
	assert := assert.New(t)

	var self *Node[kind]
	self = NewRecursive(func() *Node[kind] {
		return NewDisjunction(NewSuccess[kind](0), NewSequence(NewElem[kind](kindA), self))
	})

	f1 := Filter(self, func(k kind) bool { return true })
	f2 := Filter(self, func(k kind) bool { return true })

	assert.NotEqual(f1.ID, f2.ID)
}

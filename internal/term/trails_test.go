package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Trails_SingleElem(t *testing.T) {
	assert := assert.New(t)

	p := NewElem[kind](kindA)
	trails := Trails(p).Enumerate(3)
	assert.Equal([][]kind{{kindA}}, trails)
}

func Test_Trails_Many_ElemA_FirstFive(t *testing.T) {
	assert := assert.New(t)

	var self *Node[kind]
	self = NewRecursive(func() *Node[kind] {
		return NewDisjunction(
			NewSuccess[kind]([]any{}),
			NewSequence(NewElem[kind](kindA), self),
		)
	})

	trails := Trails(self).Take(5, 4)
	assert.Equal([][]kind{
		{},
		{kindA},
		{kindA, kindA},
		{kindA, kindA, kindA},
		{kindA, kindA, kindA, kindA},
	}, trails)
}

func Test_Trails_Disjunction_Union(t *testing.T) {
	assert := assert.New(t)

	p := NewDisjunction(NewElem[kind](kindA), NewElem[kind](kindB))
	trails := Trails(p).Enumerate(2)
	assert.ElementsMatch([][]kind{{kindA}, {kindB}}, trails)
}

func Test_TokensOf_RoundTrip_Elem(t *testing.T) {
	assert := assert.New(t)

	p := NewElem[kind](kindA)
	kindOf := func(tok any) kind { return tok.(kind) }

	tokens := TokensOf(p, kindA, kindOf).Enumerate(2)
	assert.Equal([][]any{{kindA}}, tokens)
}

func Test_TokensOf_Transform_UsesInverse(t *testing.T) {
	assert := assert.New(t)

	// maps token A -> 1, with inverse 1 -> [A]
	p := NewTransform(NewElem[kind](kindA),
		func(v any) any {
			if v == kindA {
				return 1
			}
			return 0
		},
		func(target any) []any {
			if target == 1 {
				return []any{kindA}
			}
			return nil
		},
	)
	kindOf := func(tok any) kind { return tok.(kind) }

	tokens := TokensOf(p, 1, kindOf).Enumerate(2)
	assert.Equal([][]any{{kindA}}, tokens)

	none := TokensOf(p, 2, kindOf).Enumerate(2)
	assert.Empty(none)
}

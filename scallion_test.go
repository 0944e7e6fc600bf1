package scallion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tkind string

const (
	kA   tkind = "A"
	kB   tkind = "B"
	kNum tkind = "NUM"
	kLP  tkind = "LP"
	kRP  tkind = "RP"
)

func kindOfToken(tok any) tkind {
	s := tok.(string)
	switch s {
	case "(":
		return kLP
	case ")":
		return kRP
	default:
		if s == "num" {
			return kNum
		}
		return tkind(s)
	}
}

func Test_Scenario1_SingleElem(t *testing.T) {
	assert := assert.New(t)

	p := Elem[tkind, string](kA)

	assert.True(p.First().Has(kA))
	_, nullable := p.Nullable()
	assert.False(nullable)
	assert.True(p.IsLL1())

	r := p.Apply([]any{"A"}, kindOfToken)
	assert.Equal(Parsed, r.Kind)
	assert.Equal("A", r.Value)

	r = p.Apply([]any{"B"}, kindOfToken)
	assert.Equal(UnexpectedToken, r.Kind)
	assert.Equal("B", r.Token)

	r = p.Apply(nil, kindOfToken)
	assert.Equal(UnexpectedEnd, r.Kind)
}

func Test_Scenario2_ManyElemA(t *testing.T) {
	assert := assert.New(t)

	p := Many(Elem[tkind, string](kA))

	_, nullable := p.Nullable()
	assert.True(nullable)
	assert.True(p.IsLL1())

	trails := p.Trails().Take(5, 4)
	assert.Equal([][]tkind{
		{}, {kA}, {kA, kA}, {kA, kA, kA}, {kA, kA, kA, kA},
	}, trails)

	r := p.Apply([]any{"A", "A", "A"}, kindOfToken)
	assert.Equal(Parsed, r.Kind)
	assert.Equal([]string{"A", "A", "A"}, r.Value)
}

func Test_Scenario3_FirstConflict(t *testing.T) {
	assert := assert.New(t)

	p := Or(Elem[tkind, string](kA), Elem[tkind, string](kA))

	assert.False(p.IsLL1())
	conflicts := p.Conflicts()
	found := false
	for _, c := range conflicts {
		if c.Kind == FirstConflict {
			found = true
			assert.Contains(c.AmbiguousKinds, kA)
			assert.True(c.Source.First().Has(kA))
		}
	}
	assert.True(found)
}

func Test_Scenario4_FollowConflict(t *testing.T) {
	assert := assert.New(t)

	left := Or(
		Epsilon[tkind, int](0),
		Map(Elem[tkind, string](kA), func(string) int { return 1 }, nil),
	)
	p := Seq(left, Elem[tkind, string](kA))

	assert.False(p.IsLL1())
	conflicts := p.Conflicts()
	found := false
	for _, c := range conflicts {
		if c.Kind == FollowConflict {
			found = true
			assert.Contains(c.AmbiguousKinds, kA)
		}
	}
	assert.True(found)
}

func Test_Scenario5_LeftRecursiveConflict(t *testing.T) {
	assert := assert.New(t)

	var rec Parser[tkind, []string]
	rec = Recursive[tkind, []string](func() Parser[tkind, []string] {
		return Concat(rec, Map(Elem[tkind, string](kA), singletonFwd[string], singletonInv[string]))
	})

	assert.False(rec.IsLL1())
	conflicts := rec.Conflicts()
	found := false
	for _, c := range conflicts {
		if c.Kind == LeftRecursiveConflict {
			found = true
		}
	}
	assert.True(found)
}

func Test_Scenario6_RecursiveExpr(t *testing.T) {
	assert := assert.New(t)

	var expr Parser[tkind, string]
	expr = Recursive[tkind, string](func() Parser[tkind, string] {
		paren := Seq(Elem[tkind, string](kLP), Seq(expr, Elem[tkind, string](kRP)))
		nested := Map(paren,
			func(p Pair[string, Pair[string, string]]) string { return p.Second.First },
			nil,
		)
		return Or(Elem[tkind, string](kNum), nested)
	})

	assert.True(expr.IsLL1())

	r := expr.Apply(toks("(", "(", "num", ")", ")"), kindOfToken)
	assert.Equal(Parsed, r.Kind)

	r = expr.Apply(toks("(", "num"), kindOfToken)
	assert.Equal(UnexpectedEnd, r.Kind)

	r = expr.Apply(toks(")"), kindOfToken)
	assert.Equal(UnexpectedToken, r.Kind)
	assert.Equal(")", r.Token)
}

func toks(ss ...string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func Test_MustLL1(t *testing.T) {
	assert := assert.New(t)

	ok := Elem[tkind, string](kA)
	_, err := MustLL1(ok)
	assert.NoError(err)

	bad := Or(Elem[tkind, string](kA), Elem[tkind, string](kA))
	_, err = MustLL1(bad)
	assert.Error(err)
	var confErr *ConflictError[tkind]
	assert.ErrorAs(err, &confErr)
	assert.NotEmpty(confErr.Describe())
}

func Test_Grammar_ParseAndValidate(t *testing.T) {
	assert := assert.New(t)

	g := NewGrammar(Elem[tkind, string](kA), kindOfToken)
	assert.NoError(g.Validate())

	r := g.Parse(toks("A"))
	assert.Equal(Parsed, r.Kind)
	assert.Equal("A", r.Value)
}

func Test_Completions(t *testing.T) {
	assert := assert.New(t)

	p := Many(Elem[tkind, string](kA))
	samples := map[tkind][]any{kA: {"A"}}

	results := p.Completions(samples, 2)
	assert.NotEmpty(results)
	assert.Equal(Parsed, results[0].Kind)
}

func Test_Opt(t *testing.T) {
	assert := assert.New(t)

	p := Opt(Elem[tkind, string](kA))
	_, nullable := p.Nullable()
	assert.True(nullable)

	r := p.Apply(toks("A"), kindOfToken)
	assert.Equal(Parsed, r.Kind)
	assert.True(r.Value.Present)
	assert.Equal("A", r.Value.Value)

	r = p.Apply(nil, kindOfToken)
	assert.Equal(Parsed, r.Kind)
	assert.False(r.Value.Present)
}

func Test_RepSep(t *testing.T) {
	assert := assert.New(t)

	p := RepSep(Elem[tkind, string](kA), Elem[tkind, string](kB))
	r := p.Apply(toks("A", "B", "A", "B", "A"), kindOfToken)
	assert.Equal(Parsed, r.Kind)
	assert.Equal([]string{"A", "A", "A"}, r.Value)
}

func Test_TrailsUpTo(t *testing.T) {
	assert := assert.New(t)

	p := Many(Elem[tkind, string](kA))
	trails := p.TrailsUpTo(2)
	assert.Equal([][]tkind{{}, {kA}, {kA, kA}}, trails)
}

func Test_RenderFirstTable(t *testing.T) {
	assert := assert.New(t)

	p := Elem[tkind, string](kA)
	out := RenderFirstTable[tkind, string](p)
	assert.Contains(out, "A")
}

func Test_Describe(t *testing.T) {
	assert := assert.New(t)

	bad := Or(Elem[tkind, string](kA), Elem[tkind, string](kA))
	conflicts := bad.Conflicts()
	assert.NotEmpty(conflicts)
	desc := Describe(conflicts[0])
	assert.Contains(desc, conflicts[0].Kind.String())
}

func Test_GrammarString(t *testing.T) {
	assert := assert.New(t)

	g := NewGrammar(Elem[tkind, string](kA), kindOfToken)
	assert.NotEmpty(g.String())
	assert.NotEmpty(g.RenderFirstTable())
}

func Test_Filter(t *testing.T) {
	assert := assert.New(t)

	p := Or(Elem[tkind, string](kA), Elem[tkind, string](kB))
	filtered := p.Filter(func(k tkind) bool { return k != kB })

	assert.True(filtered.First().Has(kA))
	assert.False(filtered.First().Has(kB))
}

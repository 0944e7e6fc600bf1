package scallion

import "github.com/dekarrin/scallion/internal/term"

// ParseResultKind distinguishes the three shapes a parse can end in.
type ParseResultKind int

const (
	Parsed ParseResultKind = iota
	UnexpectedToken
	UnexpectedEnd
)

// ParseResult is the outcome of running a parser over a token stream. The
// residual parser is always populated, so a caller can diagnose a failure
// (ExpectedKinds = Residual.First()) or resume parsing from where it left
// off.
type ParseResult[K comparable, A any] struct {
	Kind     ParseResultKind
	Value    A
	Token    any
	Residual Parser[K, A]
}

// Apply runs p over tokens in order, deriving one token at a time, and
// classifies the outcome: Parsed if the whole stream was consumed and the
// residual is nullable, UnexpectedToken at the first token the current
// residual cannot accept, UnexpectedEnd if the stream is exhausted on a
// non-nullable residual.
func (p Parser[K, A]) Apply(tokens []any, kindOf func(any) K) ParseResult[K, A] {
	cur := p.node
	for _, t := range tokens {
		next := term.Derive(cur, t, kindOf(t))
		if !term.Props(next).Productive {
			return ParseResult[K, A]{Kind: UnexpectedToken, Token: t, Residual: Parser[K, A]{node: cur}}
		}
		cur = next
	}
	return finish[K, A](cur)
}

// ApplyStream runs p over a pull-style token source, useful when the input
// is not already materialized as a slice. next should return ok = false
// once the stream is exhausted.
func (p Parser[K, A]) ApplyStream(next func() (token any, ok bool), kindOf func(any) K) ParseResult[K, A] {
	cur := p.node
	for {
		t, ok := next()
		if !ok {
			break
		}
		residual := term.Derive(cur, t, kindOf(t))
		if !term.Props(residual).Productive {
			return ParseResult[K, A]{Kind: UnexpectedToken, Token: t, Residual: Parser[K, A]{node: cur}}
		}
		cur = residual
	}
	return finish[K, A](cur)
}

func finish[K comparable, A any](cur *term.Node[K]) ParseResult[K, A] {
	props := term.Props(cur)
	if props.Nullable.HasValue {
		return ParseResult[K, A]{Kind: Parsed, Value: props.Nullable.Value.(A), Residual: Parser[K, A]{node: cur}}
	}
	return ParseResult[K, A]{Kind: UnexpectedEnd, Residual: Parser[K, A]{node: cur}}
}

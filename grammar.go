package scallion

// Grammar bundles a root parser with the token classifier it needs to run,
// so callers don't have to thread kindOf through every call site.
type Grammar[K comparable, A any] struct {
	Root   Parser[K, A]
	KindOf func(any) K
}

// NewGrammar builds a Grammar from a root parser and its token classifier.
func NewGrammar[K comparable, A any](root Parser[K, A], kindOf func(any) K) Grammar[K, A] {
	return Grammar[K, A]{Root: root, KindOf: kindOf}
}

// Parse runs the grammar's root parser over tokens.
func (g Grammar[K, A]) Parse(tokens []any) ParseResult[K, A] {
	return g.Root.Apply(tokens, g.KindOf)
}

// Validate reports a *ConflictError if the grammar's root parser is not
// LL(1), or nil if it is.
func (g Grammar[K, A]) Validate() error {
	_, err := MustLL1(g.Root)
	return err
}

// RenderFirstTable renders the grammar's root parser's FIRST set as a
// bordered table, for inspection.
func (g Grammar[K, A]) RenderFirstTable() string {
	return RenderFirstTable[K, A](g.Root)
}

// String renders a short description of the grammar's root parser.
func (g Grammar[K, A]) String() string {
	return g.RenderFirstTable()
}

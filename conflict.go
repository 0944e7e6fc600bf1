package scallion

import (
	"fmt"

	"github.com/dekarrin/rosed"
	"github.com/dekarrin/scallion/internal/term"
	"golang.org/x/text/message"
)

// ConflictKind distinguishes the four shapes an LL(1) conflict can take.
type ConflictKind int

const (
	NullableConflict ConflictKind = iota
	FirstConflict
	FollowConflict
	LeftRecursiveConflict
)

func (k ConflictKind) String() string {
	switch k {
	case NullableConflict:
		return "NullableConflict"
	case FirstConflict:
		return "FirstConflict"
	case FollowConflict:
		return "FollowConflict"
	case LeftRecursiveConflict:
		return "LeftRecursiveConflict"
	}
	return "UnknownConflict"
}

// Conflict is a single structured LL(1) conflict report, with a witness
// prefix parser demonstrating the ambiguity and the source node the
// ambiguity was found on (the Disjunction for Nullable/First conflicts, the
// Sequence for Follow conflicts, or the Recursive parser for LeftRecursive
// conflicts).
type Conflict[K comparable] struct {
	Kind           ConflictKind
	Prefix         Parser[K, any]
	AmbiguousKinds []K
	Source         Parser[K, any]
}

func fromTermConflict[K comparable](c term.Conflict[K]) Conflict[K] {
	return Conflict[K]{
		Kind:           ConflictKind(c.Kind),
		Prefix:         Parser[K, any]{node: c.Prefix},
		AmbiguousKinds: c.AmbiguousKinds,
		Source:         Parser[K, any]{node: c.SourceNode()},
	}
}

func (c Conflict[K]) describe() string {
	switch c.Kind {
	case NullableConflict:
		return "both sides of a disjunction are nullable"
	case FirstConflict:
		return fmt.Sprintf("overlapping FIRST kinds: %v", c.AmbiguousKinds)
	case FollowConflict:
		return fmt.Sprintf("FIRST of the right side overlaps SHOULD-NOT-FOLLOW of the left for kinds: %v", c.AmbiguousKinds)
	case LeftRecursiveConflict:
		return "recursive parser calls itself without consuming input first"
	}
	return "unrecognized conflict"
}

// ConflictError reports that a grammar failed LL(1) validation, carrying
// every conflict found.
type ConflictError[K comparable] struct {
	Conflicts []Conflict[K]
}

func (e *ConflictError[K]) Error() string {
	p := message.NewPrinter(message.MatchLanguage("en"))
	msg := p.Sprintf("grammar is not LL(1): %d conflict(s) found", len(e.Conflicts))
	return rosed.Edit(msg).Wrap(80).String()
}

// Describe renders every conflict as a bordered table: kind, ambiguous
// kinds if any, description.
func (e *ConflictError[K]) Describe() string {
	data := [][]string{{"#", "kind", "detail"}}
	for i, c := range e.Conflicts {
		data = append(data, []string{fmt.Sprintf("%d", i+1), c.Kind.String(), c.describe()})
	}
	return rosed.Edit("").
		InsertTableOpts(0, data, 100, rosed.Options{TableBorders: true}).
		String()
}

// MustLL1 returns p unchanged if it is LL(1), or a *ConflictError listing
// every conflict found otherwise.
func MustLL1[K comparable, A any](p Parser[K, A]) (Parser[K, A], error) {
	conflicts := p.Conflicts()
	if len(conflicts) == 0 {
		return p, nil
	}
	return Parser[K, A]{}, &ConflictError[K]{Conflicts: conflicts}
}

// Describe renders a single conflict as a human-readable sentence, e.g.
// "FirstConflict: overlapping FIRST kinds: [A]".
func Describe[K comparable](c Conflict[K]) string {
	return fmt.Sprintf("%s: %s", c.Kind, c.describe())
}

// RenderFirstTable renders p's FIRST set as a bordered, one-column table:
// one row per kind, followed by a final row stating whether p is nullable.
func RenderFirstTable[K comparable, A any](p Parser[K, A]) string {
	data := [][]string{{"kind"}}
	for _, k := range p.First().Elements() {
		data = append(data, []string{fmt.Sprintf("%v", k)})
	}
	_, nullable := p.Nullable()
	data = append(data, []string{fmt.Sprintf("(nullable: %t)", nullable)})
	return rosed.Edit("").
		InsertTableOpts(0, data, 60, rosed.Options{TableBorders: true}).
		String()
}

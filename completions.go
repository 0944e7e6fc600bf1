package scallion

import "github.com/dekarrin/scallion/internal/term"

// Completions enumerates every parse outcome reachable from p by feeding it
// concrete token sequences built from kindToSamples: every accepted trail
// (up to maxTrailLength) whose kinds all have at least one sample is
// expanded into the Cartesian product of its samples, and each resulting
// token sequence is fed through the parse loop. Results are in non-decreasing
// trail-length order, since Trails already enumerates that way and sample
// expansion preserves a trail's length.
func (p Parser[K, A]) Completions(kindToSamples map[K][]any, maxTrailLength int) []ParseResult[K, A] {
	usable := make(map[K]bool, len(kindToSamples))
	for k, samples := range kindToSamples {
		if len(samples) > 0 {
			usable[k] = true
		}
	}

	trails := p.Trails().Enumerate(maxTrailLength)
	var out []ParseResult[K, A]
	for _, trail := range trails {
		feasible := true
		for _, k := range trail {
			if !usable[k] {
				feasible = false
				break
			}
		}
		if !feasible {
			continue
		}
		for _, tokens := range cartesianSamples(trail, kindToSamples) {
			out = append(out, p.applyWithKinds(trail, tokens))
		}
	}
	return out
}

// Complete returns the residual of the shortest completion of p after first
// consuming partial, or false if partial itself is rejected or no
// completion exists within maxTrailLength.
func (p Parser[K, A]) Complete(partial []any, kindOf func(any) K, kindToSamples map[K][]any, maxTrailLength int) (Parser[K, A], bool) {
	cur := p.node
	for _, t := range partial {
		next := term.Derive(cur, t, kindOf(t))
		if !term.Props(next).Productive {
			return Parser[K, A]{}, false
		}
		cur = next
	}
	results := (Parser[K, A]{node: cur}).Completions(kindToSamples, maxTrailLength)
	if len(results) == 0 {
		return Parser[K, A]{}, false
	}
	return results[0].Residual, true
}

func (p Parser[K, A]) applyWithKinds(trail []K, tokens []any) ParseResult[K, A] {
	cur := p.node
	for i, t := range tokens {
		next := term.Derive(cur, t, trail[i])
		if !term.Props(next).Productive {
			return ParseResult[K, A]{Kind: UnexpectedToken, Token: t, Residual: Parser[K, A]{node: cur}}
		}
		cur = next
	}
	return finish[K, A](cur)
}

func cartesianSamples[K comparable](trail []K, kindToSamples map[K][]any) [][]any {
	combos := [][]any{{}}
	for _, k := range trail {
		samples := kindToSamples[k]
		next := make([][]any, 0, len(combos)*len(samples))
		for _, prefix := range combos {
			for _, s := range samples {
				combo := make([]any, len(prefix), len(prefix)+1)
				copy(combo, prefix)
				next = append(next, append(combo, s))
			}
		}
		combos = next
	}
	return combos
}

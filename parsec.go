// Package parsec evaluates parsers built with the parser and match packages.
//
// A parser returns every way it can match a prefix of its input. Evaluate
// collapses those candidates into a single answer: it succeeds only when
// exactly one candidate was found and that candidate consumed the whole
// input. Callers that want to explore ambiguous or partial parses should call
// the parser directly and inspect its candidates instead.
package parsec

import (
	"fmt"
	"strings"

	"github.com/zostay/go-std/slices"

	"github.com/sukovanej/parsec-go/parser"
)

// Evaluate runs p against the whole of input. It returns an *AmbiguityError
// unless exactly one candidate is found, and a *TrailingInputError if that
// candidate leaves input unconsumed.
func Evaluate[A any](p parser.Parser[A], input string, opts ...Option) (A, error) {
	cfg := newConfig(opts)

	cs := p(input)
	if len(cs) != 1 {
		var zero A
		err := &AmbiguityError{
			Candidates: slices.Map(cs, func(c parser.Candidate[A]) string {
				return cfg.format(c.Value, c.Remainder)
			}),
		}
		parser.Trace(cfg.tracer, parser.StageFail, "Evaluate", input, err)
		return zero, err
	}

	c := cs[0]
	if c.Remainder != "" {
		var zero A
		err := &TrailingInputError{Remainder: c.Remainder}
		parser.Trace(cfg.tracer, parser.StageFail, "Evaluate", input, err)
		return zero, err
	}

	parser.Trace(cfg.tracer, parser.StageGot, "Evaluate", input, c.Value)
	return c.Value, nil
}

// EvalToEither returns a function that evaluates p against each input it is
// given. See Evaluate.
func EvalToEither[A any](p parser.Parser[A], opts ...Option) func(input string) (A, error) {
	return func(input string) (A, error) {
		return Evaluate(p, input, opts...)
	}
}

// formatCandidate is the default rendering of a candidate in an
// AmbiguityError.
func formatCandidate(value any, rest string) string {
	return fmt.Sprintf("[x=%v, xs=%s]", value, rest)
}

func joinCandidates(cs []string) string {
	return strings.Join(cs, ";;")
}

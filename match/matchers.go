package match

import (
	"github.com/samber/lo"

	"github.com/sukovanej/parsec-go/parser"
)

func prepend[A any](a A, as []A) []A {
	out := make([]A, 0, len(as)+1)
	return append(append(out, a), as...)
}

// First returns a Parser that tries each parser in turn and returns the
// candidates of the first one that produces any. Returns no candidates if none
// succeed.
func First[A any](ps ...parser.Parser[A]) parser.Parser[A] {
	return func(s string) []parser.Candidate[A] {
		for _, p := range ps {
			if cs := p(s); len(cs) > 0 {
				return cs
			}
		}
		return nil
	}
}

// Longest returns a Parser that tries all the given parsers against the same
// input and keeps only the candidates that consumed the most. Ties are all
// kept.
func Longest[A any](ps ...parser.Parser[A]) parser.Parser[A] {
	all := parser.CoproductAll(ps)
	return func(s string) []parser.Candidate[A] {
		cs := all(s)
		if len(cs) == 0 {
			return nil
		}

		shortest := lo.MinBy(cs, func(a, b parser.Candidate[A]) bool {
			return len(a.Remainder) < len(b.Remainder)
		})
		return lo.Filter(cs, func(c parser.Candidate[A], _ int) bool {
			return len(c.Remainder) == len(shortest.Remainder)
		})
	}
}

// Many matches p zero or more times and returns the values in order. On each
// branch the repetition is as long as possible: the empty result is only
// produced where p cannot match at all.
//
// Many and Many1 are mutually recursive. A p that can succeed without
// consuming input makes them recurse until the stack is exhausted; avoid
// repeating such parsers.
func Many[A any](p parser.Parser[A]) parser.Parser[[]A] {
	return First(Many1(p), parser.Of([]A{}))
}

// Many1 matches p one or more times. See Many.
func Many1[A any](p parser.Parser[A]) parser.Parser[[]A] {
	return parser.FlatMap(p, func(a A) parser.Parser[[]A] {
		return parser.Map(Many(p), func(as []A) []A { return prepend(a, as) })
	})
}

// ManyAll matches p zero or more times, yielding a candidate for every number
// of repetitions, longest first and ending with the empty match. The
// zero-width caveat of Many applies.
func ManyAll[A any](p parser.Parser[A]) parser.Parser[[]A] {
	return parser.Coproduct(Many1All(p), parser.Of([]A{}))
}

// Many1All is the one-or-more form of ManyAll.
func Many1All[A any](p parser.Parser[A]) parser.Parser[[]A] {
	return parser.FlatMap(p, func(a A) parser.Parser[[]A] {
		return parser.Map(ManyAll(p), func(as []A) []A { return prepend(a, as) })
	})
}

// Exactly matches p n times in a row.
func Exactly[A any](n int, p parser.Parser[A]) parser.Parser[[]A] {
	return parser.ProductAll(lo.Times(n, func(int) parser.Parser[A] { return p }))
}

// SepBy1 matches one or more p separated by sep. Only the values of p are
// kept.
func SepBy1[A, S any](p parser.Parser[A], sep parser.Parser[S]) parser.Parser[[]A] {
	return parser.FlatMap(p, func(first A) parser.Parser[[]A] {
		return parser.Map(Many(parser.AndThen(sep, p)), func(rest []A) []A {
			return prepend(first, rest)
		})
	})
}

// Option is the value of an Optional parser. Ok is false when nothing was
// matched.
type Option[A any] struct {
	Value A
	Ok    bool
}

// Optional returns a Parser that returns the value of p when p matches, but
// also succeeds with an empty Option, consuming nothing, when p does not
// match.
func Optional[A any](p parser.Parser[A]) parser.Parser[Option[A]] {
	return First(
		parser.Map(p, func(a A) Option[A] { return Option[A]{Value: a, Ok: true} }),
		parser.Of(Option[A]{}),
	)
}

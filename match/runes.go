package match

import (
	"unicode/utf8"

	"github.com/zostay/go-std/slices"

	"github.com/sukovanej/parsec-go/parser"
)

// Char is a single character of input, decoded as UTF-8.
type Char = rune

// CharsToString joins a run of characters back into a string.
func CharsToString(cs []Char) string {
	return string(cs)
}

// RunePredicate is a function that returns true if it matches a single rune or
// false if it does not.
type RunePredicate func(r rune) bool

// RunesInSet creates a RunePredicate from the set of runes given.
func RunesInSet(cs ...rune) RunePredicate {
	return func(r rune) bool {
		for _, c := range cs {
			if c == r {
				return true
			}
		}
		return false
	}
}

// RunesInRange creates a RunePredicate that matches any rune in the given
// range. The match is inclusive so runes equal to either end point are also
// matched.
func RunesInRange(cs, ce rune) RunePredicate {
	return func(r rune) bool {
		return r >= cs && r <= ce
	}
}

// AnyRunes creates a combined RunePredicate that matches a rune that matches
// any of the given predicates.
func AnyRunes(preds ...RunePredicate) RunePredicate {
	switch len(preds) {
	case 0:
		return func(rune) bool { return false }
	case 1:
		return preds[0]
	default:
		return func(r rune) bool {
			for _, pred := range preds {
				if pred(r) {
					return true
				}
			}
			return false
		}
	}
}

// NotRunes creates a combined RunePredicate that matches a rune that does not
// match any of the given predicates.
func NotRunes(preds ...RunePredicate) RunePredicate {
	return func(r rune) bool {
		for _, pred := range preds {
			if pred(r) {
				return false
			}
		}
		return true
	}
}

// ThisButNotThatRunes creates a combined RunePredicate that matches a rune that
// matches the first predicate, but does not match the second predicate.
func ThisButNotThatRunes(this, that RunePredicate) RunePredicate {
	return func(r rune) bool {
		return this(r) && !that(r)
	}
}

// IsDigit matches the ASCII digits 0 through 9.
var IsDigit = RunesInRange('0', '9')

// Item consumes exactly one character. It fails on empty input.
var Item parser.Parser[Char] = func(s string) []parser.Candidate[Char] {
	if s == "" {
		return nil
	}

	r, size := utf8.DecodeRuneInString(s)
	return []parser.Candidate[Char]{{Value: r, Remainder: s[size:]}}
}

// Satisfy returns a Parser that consumes one character if it matches any of
// the given predicates. A character matching none of them fails the parse.
func Satisfy(preds ...RunePredicate) parser.Parser[Char] {
	pred := AnyRunes(preds...)
	return parser.FlatMap(Item, func(c Char) parser.Parser[Char] {
		if pred(c) {
			return parser.Of(c)
		}
		return parser.Zero[Char]()
	})
}

// CharOf matches exactly the character c.
func CharOf(c Char) parser.Parser[Char] {
	return Satisfy(RunesInSet(c))
}

// OneOf matches any single character among cs. Each character is tried as
// its own alternative, so a repeated character yields repeated candidates.
func OneOf(cs ...Char) parser.Parser[Char] {
	return parser.CoproductAll(slices.Map(cs, CharOf))
}

// Space matches a single space character.
var Space = CharOf(' ')

package match

import (
	"strconv"
	"strings"

	"github.com/zostay/go-std/slices"

	"github.com/sukovanej/parsec-go/parser"
)

// String returns a Parser that succeeds with lit when the input starts with
// it, consuming exactly those bytes.
func String(lit string) parser.Parser[string] {
	return func(s string) []parser.Candidate[string] {
		if !strings.HasPrefix(s, lit) {
			return nil
		}
		return []parser.Candidate[string]{{Value: lit, Remainder: s[len(lit):]}}
	}
}

// Strings tries every literal against the same input. Literals that share a
// prefix of the input are all reported.
func Strings(lits ...string) parser.Parser[string] {
	return parser.CoproductAll(slices.Map(lits, String))
}

// EOF succeeds with an empty string only when the input is empty. Put it last
// in a sequence to require that everything before it consumed the whole input.
var EOF parser.Parser[string] = func(s string) []parser.Candidate[string] {
	if s != "" {
		return nil
	}
	return []parser.Candidate[string]{{Value: "", Remainder: ""}}
}

// Decimal matches one or more ASCII digits as a non-negative base 10 integer.
// Values too large for an int are clamped the way strconv.Atoi does.
var Decimal = parser.Map(Many1(Satisfy(IsDigit)), func(ds []Char) int {
	n, _ := strconv.Atoi(CharsToString(ds))
	return n
})

// Spaces matches a run of zero or more spaces.
var Spaces = parser.Map(Many(Space), CharsToString)

// Spaces1 matches a run of one or more spaces.
var Spaces1 = parser.Map(Many1(Space), CharsToString)

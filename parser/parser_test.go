package parser_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sukovanej/parsec-go/parser"
)

// next consumes a single byte.
var next parser.Parser[string] = func(s string) []parser.Candidate[string] {
	if s == "" {
		return nil
	}
	return []parser.Candidate[string]{{Value: s[:1], Remainder: s[1:]}}
}

// prefixes yields every non-empty prefix of the input, shortest first.
var prefixes parser.Parser[string] = func(s string) []parser.Candidate[string] {
	var out []parser.Candidate[string]
	for i := 1; i <= len(s); i++ {
		out = append(out, parser.Candidate[string]{Value: s[:i], Remainder: s[i:]})
	}
	return out
}

func lit(want string) parser.Parser[string] {
	return func(s string) []parser.Candidate[string] {
		if strings.HasPrefix(s, want) {
			return []parser.Candidate[string]{{Value: want, Remainder: s[len(want):]}}
		}
		return nil
	}
}

var samples = map[string]parser.Parser[string]{
	"next":     next,
	"prefixes": prefixes,
	"lit-ab":   lit("ab"),
	"zero":     parser.Zero[string](),
	"of":       parser.Of("x"),
	"either":   parser.Coproduct(lit("a"), lit("ab")),
}

var inputs = []string{"", "a", "ab", "abc", "ba", "xyz"}

func same[A any](t *testing.T, want, got []parser.Candidate[A]) {
	t.Helper()
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("candidates differ (-want +got):\n%s", diff)
	}
}

func TestOf(t *testing.T) {
	got := parser.Of(7).Parse("rest")
	assert.Equal(t, []parser.Candidate[int]{{Value: 7, Remainder: "rest"}}, got)
}

func TestZero(t *testing.T) {
	for _, in := range inputs {
		assert.Empty(t, parser.Zero[int]().Parse(in), "input %q", in)
	}
}

func TestMap(t *testing.T) {
	p := parser.Map(prefixes, func(s string) int { return len(s) })
	want := []parser.Candidate[int]{
		{Value: 1, Remainder: "bc"},
		{Value: 2, Remainder: "c"},
		{Value: 3, Remainder: ""},
	}
	same(t, want, p.Parse("abc"))
	assert.Empty(t, p.Parse(""))
}

func TestImap(t *testing.T) {
	p := parser.Imap(lit("12"),
		func(s string) int {
			n, _ := strconv.Atoi(s)
			return n
		},
		strconv.Itoa,
	)
	same(t, []parser.Candidate[int]{{Value: 12, Remainder: "3"}}, p.Parse("123"))
}

func TestFlatMap(t *testing.T) {
	// a length prefix followed by that many bytes
	counted := parser.FlatMap(next, func(n string) parser.Parser[string] {
		size, err := strconv.Atoi(n)
		if err != nil {
			return parser.Zero[string]()
		}
		return func(s string) []parser.Candidate[string] {
			if len(s) < size {
				return nil
			}
			return []parser.Candidate[string]{{Value: s[:size], Remainder: s[size:]}}
		}
	})

	same(t, []parser.Candidate[string]{{Value: "abc", Remainder: "de"}}, counted.Parse("3abcde"))
	assert.Empty(t, counted.Parse("9ab"))
	assert.Empty(t, counted.Parse("xab"))
}

func TestFlatMapKeepsOrder(t *testing.T) {
	p := parser.FlatMap(prefixes, func(s string) parser.Parser[string] {
		return parser.Coproduct(parser.Of(s+"1"), parser.Of(s+"2"))
	})
	want := []parser.Candidate[string]{
		{Value: "a1", Remainder: "b"},
		{Value: "a2", Remainder: "b"},
		{Value: "ab1", Remainder: ""},
		{Value: "ab2", Remainder: ""},
	}
	same(t, want, p.Parse("ab"))
}

func TestProduct(t *testing.T) {
	p := parser.Product(lit("a"), parser.Map(next, func(s string) byte { return s[0] }))
	want := []parser.Candidate[parser.Pair[string, byte]]{
		{Value: parser.Pair[string, byte]{First: "a", Second: 'b'}, Remainder: "c"},
	}
	same(t, want, p.Parse("abc"))
	assert.Empty(t, p.Parse("a"), "right side fails")
	assert.Empty(t, p.Parse("bc"), "left side fails")
}

func TestProductAll(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got := parser.ProductAll[string](nil).Parse("abc")
		same(t, []parser.Candidate[[]string]{{Value: []string{}, Remainder: "abc"}}, got)
	})

	t.Run("in order", func(t *testing.T) {
		p := parser.ProductAll([]parser.Parser[string]{lit("a"), lit("b"), next})
		same(t, []parser.Candidate[[]string]{{Value: []string{"a", "b", "c"}, Remainder: "d"}}, p.Parse("abcd"))
		assert.Empty(t, p.Parse("acb"))
	})

	t.Run("branches", func(t *testing.T) {
		p := parser.ProductMany(prefixes, lit("c"))
		same(t, []parser.Candidate[[]string]{{Value: []string{"ab", "c"}, Remainder: ""}}, p.Parse("abc"))
	})
}

func TestCoproduct(t *testing.T) {
	p := parser.Coproduct(lit("a"), lit("ab"))
	want := []parser.Candidate[string]{
		{Value: "a", Remainder: "bc"},
		{Value: "ab", Remainder: "c"},
	}
	same(t, want, p.Parse("abc"))
	same(t, []parser.Candidate[string]{{Value: "a", Remainder: "c"}}, p.Parse("ac"))
	assert.Empty(t, p.Parse("c"))
}

func TestCoproductAllOrder(t *testing.T) {
	p := parser.CoproductAll([]parser.Parser[string]{parser.Of("1"), parser.Of("2"), parser.Of("3")})
	got := p.Parse("z")
	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].Value)
	assert.Equal(t, "2", got[1].Value)
	assert.Equal(t, "3", got[2].Value)

	assert.Empty(t, parser.CoproductAll[string](nil).Parse("z"))

	many := parser.CoproductMany(parser.Of("0"), parser.Of("1"))
	got = many.Parse("")
	require.Len(t, got, 2)
	assert.Equal(t, "0", got[0].Value)
}

func TestApplicative(t *testing.T) {
	upper := parser.Of(strings.ToUpper)
	same(t, []parser.Candidate[string]{{Value: "A", Remainder: "b"}}, parser.Ap(upper, next).Parse("ab"))

	same(t, []parser.Candidate[string]{{Value: "b", Remainder: "c"}}, parser.AndThen(lit("a"), next).Parse("abc"))
	same(t, []parser.Candidate[string]{{Value: "a", Remainder: "c"}}, parser.AndThenDiscard(lit("a"), next).Parse("abc"))
	assert.Empty(t, parser.AndThenDiscard(lit("a"), next).Parse("a"))
}

func TestMonadLaws(t *testing.T) {
	f := func(s string) parser.Parser[string] {
		return parser.Coproduct(parser.Of(s+"!"), parser.Map(next, func(n string) string { return s + n }))
	}
	g := func(s string) parser.Parser[string] {
		if len(s)%2 == 0 {
			return parser.Zero[string]()
		}
		return lit("c")
	}

	for name, p := range samples {
		for _, in := range inputs {
			t.Run(name+"/"+in, func(t *testing.T) {
				// right identity
				same(t, p.Parse(in), parser.FlatMap(p, parser.Of[string]).Parse(in))

				// left identity
				same(t, f(in).Parse(in), parser.FlatMap(parser.Of(in), f).Parse(in))

				// associativity
				left := parser.FlatMap(parser.FlatMap(p, f), g)
				right := parser.FlatMap(p, func(x string) parser.Parser[string] {
					return parser.FlatMap(f(x), g)
				})
				same(t, left.Parse(in), right.Parse(in))

				// map in terms of flatMap
				h := func(s string) string { return "<" + s + ">" }
				same(t,
					parser.FlatMap(p, func(x string) parser.Parser[string] { return parser.Of(h(x)) }).Parse(in),
					parser.Map(p, h).Parse(in),
				)
			})
		}
	}
}

func TestAlternativeLaws(t *testing.T) {
	zero := parser.Zero[string]()
	for name, p := range samples {
		for _, in := range inputs {
			t.Run(name+"/"+in, func(t *testing.T) {
				same(t, p.Parse(in), parser.Coproduct(p, zero).Parse(in))
				same(t, p.Parse(in), parser.Coproduct(zero, p).Parse(in))

				q, r := lit("a"), prefixes
				same(t,
					parser.Coproduct(parser.Coproduct(p, q), r).Parse(in),
					parser.Coproduct(p, parser.Coproduct(q, r)).Parse(in),
				)

				// product distributes over coproduct on the right
				same(t,
					parser.Product(parser.Coproduct(p, q), next).Parse(in),
					parser.Coproduct(parser.Product(p, next), parser.Product(q, next)).Parse(in),
				)
			})
		}
	}
}

func TestConsumptionMonotonic(t *testing.T) {
	combined := map[string]parser.Parser[string]{
		"then":  parser.AndThen(prefixes, prefixes),
		"all":   parser.CoproductAll([]parser.Parser[string]{next, prefixes, lit("ab")}),
		"bound": parser.FlatMap(next, func(string) parser.Parser[string] { return prefixes }),
	}
	for name, p := range samples {
		combined[name] = p
	}

	for name, p := range combined {
		for _, in := range inputs {
			for _, c := range p.Parse(in) {
				assert.Truef(t, strings.HasSuffix(in, c.Remainder),
					"%s: remainder %q is not a suffix of %q", name, c.Remainder, in)
			}
		}
	}
}

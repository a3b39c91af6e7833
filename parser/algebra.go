package parser

import "github.com/samber/lo"

// Map returns a Parser that applies f to the value of every candidate of p.
// Remainders and the number of candidates are left alone.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(s string) []Candidate[B] {
		cs := p(s)
		if len(cs) == 0 {
			return nil
		}

		out := make([]Candidate[B], len(cs))
		for i, c := range cs {
			out[i] = Candidate[B]{Value: f(c.Value), Remainder: c.Remainder}
		}
		return out
	}
}

// Imap is the invariant form of Map. Only the forward function is used when
// parsing.
func Imap[A, B any](p Parser[A], to func(A) B, _ func(B) A) Parser[B] {
	return Map(p, to)
}

// FlatMap runs p and then, for each candidate, runs the parser returned by f
// on that candidate's remainder. The results are concatenated in the order
// p produced its candidates.
func FlatMap[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(s string) []Candidate[B] {
		var out []Candidate[B]
		for _, c := range p(s) {
			out = append(out, f(c.Value)(c.Remainder)...)
		}
		return out
	}
}

// Product runs self and then that on each remainder self leaves, pairing the
// two values. A branch fails when either side fails.
func Product[A, B any](self Parser[A], that Parser[B]) Parser[Pair[A, B]] {
	return FlatMap(self, func(a A) Parser[Pair[A, B]] {
		return Map(that, func(b B) Pair[A, B] {
			return Pair[A, B]{First: a, Second: b}
		})
	})
}

// ProductMany runs self followed by each of rest in turn and collects all the
// values.
func ProductMany[A any](self Parser[A], rest ...Parser[A]) Parser[[]A] {
	start := Map(self, func(a A) []A { return []A{a} })
	return lo.Reduce(rest, func(acc Parser[[]A], next Parser[A], _ int) Parser[[]A] {
		return Map(Product(acc, next), func(pr Pair[[]A, A]) []A {
			out := make([]A, 0, len(pr.First)+1)
			return append(append(out, pr.First...), pr.Second)
		})
	}, start)
}

// ProductAll runs every parser in ps in order. An empty list always succeeds
// with an empty slice.
func ProductAll[A any](ps []Parser[A]) Parser[[]A] {
	if len(ps) == 0 {
		return Of([]A{})
	}
	return ProductMany(ps[0], ps[1:]...)
}

// Coproduct tries self and that against the same input and returns the
// candidates of both, those of self first. Both branches always run; an
// input matching both is reported as ambiguous rather than resolved.
func Coproduct[A any](self, that Parser[A]) Parser[A] {
	return func(s string) []Candidate[A] {
		left := self(s)
		right := that(s)
		if len(left) == 0 {
			return right
		}

		out := make([]Candidate[A], 0, len(left)+len(right))
		return append(append(out, left...), right...)
	}
}

// CoproductAll tries every parser in ps against the same input and
// concatenates their candidates in list order. An empty list is Zero.
func CoproductAll[A any](ps []Parser[A]) Parser[A] {
	return lo.Reduce(ps, func(acc Parser[A], p Parser[A], _ int) Parser[A] {
		return Coproduct(acc, p)
	}, Zero[A]())
}

// CoproductMany is CoproductAll with self placed ahead of rest.
func CoproductMany[A any](self Parser[A], rest ...Parser[A]) Parser[A] {
	return CoproductAll(append([]Parser[A]{self}, rest...))
}

// Ap runs pf then pa and applies the parsed function to the parsed value.
func Ap[A, B any](pf Parser[func(A) B], pa Parser[A]) Parser[B] {
	return Map(Product(pf, pa), func(pr Pair[func(A) B, A]) B {
		return pr.First(pr.Second)
	})
}

// AndThen runs self then that, keeping only the value of that.
func AndThen[A, B any](self Parser[A], that Parser[B]) Parser[B] {
	return Map(Product(self, that), func(pr Pair[A, B]) B { return pr.Second })
}

// AndThenDiscard runs self then that, keeping only the value of self.
func AndThenDiscard[A, B any](self Parser[A], that Parser[B]) Parser[A] {
	return Map(Product(self, that), func(pr Pair[A, B]) A { return pr.First })
}

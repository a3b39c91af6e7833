// Package parser holds the core representation of a parser and the algebra
// used to combine parsers. Grammars are assembled from these operations by the
// match package and evaluated by the root parsec package.
package parser

// Candidate is one way a parser matched a prefix of its input. Value is what
// was produced and Remainder is the unconsumed suffix of the input.
type Candidate[A any] struct {
	Value     A
	Remainder string
}

// Parser is the type for parsing functions. A parser accepts an input string
// and returns every candidate it found, in order.
//
// An empty result means the parser could not produce a value at this
// position. A parser that succeeds without consuming anything returns a
// candidate whose Remainder equals the input. Every Remainder returned must be
// a suffix of the input.
//
// Parsers hold no state. The same Parser may be used on any number of inputs,
// including from several goroutines at once.
type Parser[A any] func(input string) []Candidate[A]

// Parse runs the parser against input.
func (p Parser[A]) Parse(input string) []Candidate[A] {
	return p(input)
}

// Of returns a Parser that always succeeds with a, consuming nothing.
func Of[A any](a A) Parser[A] {
	return func(s string) []Candidate[A] {
		return []Candidate[A]{{Value: a, Remainder: s}}
	}
}

// Zero returns a Parser that never succeeds. It is the identity for
// Coproduct.
func Zero[A any]() Parser[A] {
	return func(string) []Candidate[A] {
		return nil
	}
}

// Pair holds the values of two parsers run one after the other.
type Pair[A, B any] struct {
	First  A
	Second B
}

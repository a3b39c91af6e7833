package parsec

import (
	"errors"
	"fmt"
)

var (
	// ErrNoParse is matched by an AmbiguityError with no candidates.
	ErrNoParse = errors.New("no parse")

	// ErrAmbiguous is matched by an AmbiguityError with several candidates.
	ErrAmbiguous = errors.New("ambiguous parse")

	// ErrTrailingInput is matched by a TrailingInputError.
	ErrTrailingInput = errors.New("trailing input")
)

// AmbiguityError reports that a parser did not produce exactly one candidate.
// Candidates holds a rendering of each candidate found, in order.
type AmbiguityError struct {
	Candidates []string
}

// Error implements the error interface
func (e *AmbiguityError) Error() string {
	if len(e.Candidates) == 0 {
		return "0 results returned"
	}
	return fmt.Sprintf("%d results returned: %s", len(e.Candidates), joinCandidates(e.Candidates))
}

// Unwrap returns ErrNoParse or ErrAmbiguous depending on the number of
// candidates.
func (e *AmbiguityError) Unwrap() error {
	if len(e.Candidates) == 0 {
		return ErrNoParse
	}
	return ErrAmbiguous
}

// TrailingInputError reports that the only candidate did not consume all of
// the input. Remainder is what was left.
type TrailingInputError struct {
	Remainder string
}

// Error implements the error interface
func (e *TrailingInputError) Error() string {
	return fmt.Sprintf("remaining input after parse: %q", e.Remainder)
}

func (e *TrailingInputError) Unwrap() error {
	return ErrTrailingInput
}

package parser

import (
	"fmt"
	"strings"
)

// Tracer is a function that is used to log or report parser traces. This
// function signature was chosen because it is commonly available, such as
// fmt.Print or log.Println, etc.
type Tracer func(v ...any)

// Stage identifies which point of a traced parse a trace line reports.
type Stage int

const (
	StageTry Stage = iota
	StageGot
	StageFail
)

// peekSize is how much of the input is shown in a trace line.
const peekSize = 10

// Trace formats a single trace line and hands it to t. Nothing happens when t
// is nil.
func Trace(t Tracer, stage Stage, name, input string, args ...any) {
	if t == nil {
		return
	}

	out := &strings.Builder{}
	switch stage {
	case StageFail:
		fmt.Fprint(out, "ERR ")
	case StageGot:
		fmt.Fprint(out, "GOT ")
	case StageTry:
		fmt.Fprint(out, "TRY ")
	}

	fmt.Fprint(out, name)
	fmt.Fprint(out, "(")

	peek := input
	if len(peek) > peekSize {
		peek = peek[:peekSize]
	}
	fmt.Fprint(out, peek)
	fmt.Fprint(out, "…")

	for i, arg := range args {
		if i == len(args)-1 && stage == StageGot {
			fmt.Fprintf(out, ") = %v", arg)
			t(out.String())
			return
		}

		fmt.Fprint(out, ", ")
		fmt.Fprint(out, arg)
	}

	fmt.Fprint(out, ")")

	t(out.String())
}

// Traced wraps p so that every run reports to t. A TRY line is written before
// p runs. Afterwards a GOT line carries the number of candidates, or an ERR
// line is written when there were none. With a nil Tracer, p is returned as
// is.
func Traced[A any](name string, t Tracer, p Parser[A]) Parser[A] {
	if t == nil {
		return p
	}

	return func(s string) []Candidate[A] {
		Trace(t, StageTry, name, s)
		cs := p(s)
		if len(cs) == 0 {
			Trace(t, StageFail, name, s)
			return cs
		}

		Trace(t, StageGot, name, s, fmt.Sprintf("%d candidates", len(cs)))
		return cs
	}
}

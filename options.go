package parsec

import (
	"go.uber.org/zap"

	"github.com/sukovanej/parsec-go/parser"
)

type config struct {
	tracer parser.Tracer
	format func(value any, rest string) string
}

// Option configures Evaluate.
type Option func(*config)

func newConfig(opts []Option) *config {
	cfg := &config{format: formatCandidate}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithTracer reports the outcome of each evaluation to t.
func WithTracer(t parser.Tracer) Option {
	return func(c *config) {
		c.tracer = t
	}
}

// WithLogger reports the outcome of each evaluation at debug level on l.
func WithLogger(l *zap.Logger) Option {
	return WithTracer(ZapTracer(l))
}

// ZapTracer adapts a zap logger to a parser.Tracer. Trace lines are written at
// debug level.
func ZapTracer(l *zap.Logger) parser.Tracer {
	return l.Sugar().Debug
}

// WithCandidateFormatter replaces how candidates are rendered in an
// AmbiguityError. The function receives the candidate value and its
// unconsumed remainder.
func WithCandidateFormatter(f func(value any, rest string) string) Option {
	return func(c *config) {
		if f != nil {
			c.format = f
		}
	}
}

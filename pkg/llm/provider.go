package llm

import (
	"context"
	"errors"
)

// ErrNoCandidates signals a protocol-level success that carried no generated
// candidates. Callers translate it into a user-visible sentinel; it is kept
// distinct from transport failures on purpose.
var ErrNoCandidates = errors.New("llm: response contained no candidates")

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Generate sends a single prompt to the model and returns the response text
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}

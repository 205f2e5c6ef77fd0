package strmanip

import (
	"github.com/erraggy/strmanip/internal/options"
	"github.com/erraggy/strmanip/splitter"
	"github.com/erraggy/strmanip/strerrors"
	"github.com/erraggy/strmanip/stripper"
	"github.com/erraggy/strmanip/transformer"
)

// Option is a function that configures an Apply call
type Option func(*applyConfig) error

// applyConfig holds the arguments of a single Apply call. It is local to
// the call: nothing is shared between invocations.
type applyConfig struct {
	// Operation (exactly one must be set)
	split           *string
	startCaseString *string
	startCaseTokens []string
	hasTokens       bool
	strip           *string
}

// Result contains the outcome of an Apply call. Tokens is set by the split
// and token-sequence operations; Output is set by the string operations.
type Result struct {
	Tokens []string
	Output string
}

// Apply runs exactly one string operation, selected by an operation option.
// Supplying no operation, or more than one, fails with an
// *strerrors.ArgumentError: ambiguous calls are rejected rather than
// resolved by a silent priority order.
//
// Example:
//
//	result, err := strmanip.Apply(strmanip.WithStartCaseString("foo_bar"))
//	// result.Output == "FooBar"
func Apply(opts ...Option) (*Result, error) {
	cfg := &applyConfig{}

	for _, opt := range opts {
		if opt == nil {
			return nil, &strerrors.ArgumentError{Message: "unrecognized nil option"}
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleSource(
		"operation",
		"strmanip: must specify an operation (use WithSplit, WithStartCaseString, WithStartCaseTokens, or WithStripInterfaces)",
		"strmanip: must specify exactly one operation",
		cfg.split != nil, cfg.startCaseString != nil, cfg.hasTokens, cfg.strip != nil,
	); err != nil {
		return nil, err
	}

	switch {
	case cfg.split != nil:
		return &Result{Tokens: splitter.Split(*cfg.split)}, nil
	case cfg.startCaseString != nil:
		return &Result{Output: transformer.StartCase(*cfg.startCaseString)}, nil
	case cfg.hasTokens:
		return &Result{Tokens: transformer.StartCaseTokens(cfg.startCaseTokens)}, nil
	default:
		return &Result{Output: stripper.StripInterfaces(*cfg.strip)}, nil
	}
}

// WithSplit selects the split operation for the given input string
func WithSplit(input string) Option {
	return func(cfg *applyConfig) error {
		cfg.split = &input
		return nil
	}
}

// WithStartCaseString selects the start-case operation for a string input
func WithStartCaseString(input string) Option {
	return func(cfg *applyConfig) error {
		cfg.startCaseString = &input
		return nil
	}
}

// WithStartCaseTokens selects the start-case operation for a token sequence.
// An empty slice is valid; nil is not.
func WithStartCaseTokens(tokens []string) Option {
	return func(cfg *applyConfig) error {
		if tokens == nil {
			return &strerrors.ArgumentError{Argument: "WithStartCaseTokens", Message: "tokens cannot be nil"}
		}
		cfg.startCaseTokens = tokens
		cfg.hasTokens = true
		return nil
	}
}

// WithStripInterfaces selects the strip-interfaces operation for the given
// input string
func WithStripInterfaces(input string) Option {
	return func(cfg *applyConfig) error {
		cfg.strip = &input
		return nil
	}
}

package splitter

import (
	"io"

	"github.com/erraggy/strmanip/internal/options"
	"github.com/erraggy/strmanip/strerrors"
)

// Option is a function that configures a split operation
type Option func(*splitConfig) error

// splitConfig holds configuration for a single split call. It is local to
// the call: nothing is shared between invocations.
type splitConfig struct {
	// Input source (exactly one must be set)
	input  *string
	reader io.Reader
	bytes  []byte
}

// SplitResult contains the outcome of a split operation.
type SplitResult struct {
	// Tokens is the ordered word-token sequence; nil for empty input.
	Tokens []string
	// Sanitized is the C-identifier-safe form the tokens were derived from.
	Sanitized string
}

// SplitWithOptions splits an identifier-like string using functional options.
// Exactly one input source must be provided; anything else fails with an
// *strerrors.ArgumentError before any work is done.
//
// Example:
//
//	result, err := splitter.SplitWithOptions(
//	    splitter.WithString("fooBarBaz"),
//	)
func SplitWithOptions(opts ...Option) (*SplitResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	var input string
	switch {
	case cfg.input != nil:
		input = *cfg.input
	case cfg.bytes != nil:
		input = string(cfg.bytes)
	default:
		data, err := io.ReadAll(cfg.reader)
		if err != nil {
			return nil, &strerrors.ArgumentError{
				Argument: "WithReader",
				Message:  "reading input",
				Cause:    err,
			}
		}
		input = string(data)
	}

	return &SplitResult{
		Tokens:    Split(input),
		Sanitized: Sanitize(input),
	}, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*splitConfig, error) {
	cfg := &splitConfig{}

	for _, opt := range opts {
		if opt == nil {
			return nil, &strerrors.ArgumentError{Message: "unrecognized nil option"}
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleSource(
		"input",
		"splitter: must specify an input source (use WithString, WithReader, or WithBytes)",
		"splitter: must specify exactly one input source",
		cfg.input != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithString specifies a string as the input source
func WithString(s string) Option {
	return func(cfg *splitConfig) error {
		cfg.input = &s
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *splitConfig) error {
		if r == nil {
			return &strerrors.ArgumentError{Argument: "WithReader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *splitConfig) error {
		if data == nil {
			return &strerrors.ArgumentError{Argument: "WithBytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

package transformer

import (
	"golang.org/x/text/language"

	"github.com/erraggy/strmanip/internal/options"
	"github.com/erraggy/strmanip/strerrors"
)

// Option is a function that configures a transform operation
type Option func(*transformConfig) error

// transformConfig holds configuration for a single transform call. It is
// local to the call: nothing is shared between invocations.
type transformConfig struct {
	// Input source (exactly one must be set)
	input     *string
	tokens    []string
	hasTokens bool

	// startCase is the transform modifier; it is required.
	startCase bool

	language language.Tag
}

// TransformResult contains the outcome of a transform operation. Output is
// set for string input; Tokens is set for sequence input.
type TransformResult struct {
	Output string
	Tokens []string
}

// TransformWithOptions transforms a string or token sequence using
// functional options. Exactly one input source must be provided and the
// start-case modifier is required; anything else fails with an
// *strerrors.ArgumentError before any work is done.
//
// Example:
//
//	result, err := transformer.TransformWithOptions(
//	    transformer.WithString("foo_bar"),
//	    transformer.WithStartCase(),
//	)
func TransformWithOptions(opts ...Option) (*TransformResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	t := &Transformer{Language: cfg.language}
	if cfg.input != nil {
		return &TransformResult{Output: t.StartCase(*cfg.input)}, nil
	}
	return &TransformResult{Tokens: t.StartCaseTokens(cfg.tokens)}, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*transformConfig, error) {
	cfg := &transformConfig{language: language.Und}

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
		"transformer: must specify an input source (use WithString or WithTokens)",
		"transformer: must specify exactly one input source",
		cfg.input != nil, cfg.hasTokens,
	); err != nil {
		return nil, err
	}

	if !cfg.startCase {
		return nil, &strerrors.ArgumentError{
			Argument: "WithStartCase",
			Message:  "transformer: a transform modifier is required (use WithStartCase)",
		}
	}

	return cfg, nil
}

// WithString specifies a string as the input source
func WithString(s string) Option {
	return func(cfg *transformConfig) error {
		cfg.input = &s
		return nil
	}
}

// WithTokens specifies a token sequence as the input source.
// An empty slice is valid (the result is an empty sequence); nil is not.
func WithTokens(tokens []string) Option {
	return func(cfg *transformConfig) error {
		if tokens == nil {
			return &strerrors.ArgumentError{Argument: "WithTokens", Message: "tokens cannot be nil"}
		}
		cfg.tokens = tokens
		cfg.hasTokens = true
		return nil
	}
}

// WithStartCase selects the start-case transform. It is required: the
// operation has no default transform.
func WithStartCase() Option {
	return func(cfg *transformConfig) error {
		cfg.startCase = true
		return nil
	}
}

// WithLanguage selects the Unicode case mappings used for word casing.
// Default: language.Und (the default mappings).
func WithLanguage(tag language.Tag) Option {
	return func(cfg *transformConfig) error {
		cfg.language = tag
		return nil
	}
}

package stripper

import (
	"io"

	"github.com/erraggy/strmanip/internal/options"
	"github.com/erraggy/strmanip/strerrors"
)

// Option is a function that configures a strip operation
type Option func(*stripConfig) error

// stripConfig holds configuration for a single strip call. It is local to
// the call: nothing is shared between invocations.
type stripConfig struct {
	// Input source (exactly one must be set)
	input  *string
	reader io.Reader
	bytes  []byte

	separator string
	markers   []string
}

// StripResult contains the outcome of a strip operation.
type StripResult struct {
	// Output is the input with all marker occurrences removed.
	Output string
	// Removed is the number of marker occurrences that were removed.
	Removed int
}

// StripWithOptions strips generator-expression markers using functional
// options. Exactly one input source must be provided; anything else fails
// with an *strerrors.ArgumentError before any work is done.
//
// Example:
//
//	result, err := stripper.StripWithOptions(
//	    stripper.WithString("$<BUILD_INTERFACE:/usr/include>;/opt/lib"),
//	)
func StripWithOptions(opts ...Option) (*StripResult, error) {
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

	pattern := defaultPattern
	if cfg.separator != DefaultSeparator || cfg.markers != nil {
		markers := cfg.markers
		if markers == nil {
			markers = []string{MarkerBuildInterface, MarkerInstallInterface}
		}
		pattern, err = buildPattern(cfg.separator, markers)
		if err != nil {
			return nil, &strerrors.ArgumentError{
				Argument: "WithSeparator",
				Message:  "building marker pattern",
				Cause:    err,
			}
		}
	}

	result := &StripResult{}
	result.Output = pattern.ReplaceAllStringFunc(input, func(string) string {
		result.Removed++
		return ""
	})
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*stripConfig, error) {
	cfg := &stripConfig{separator: DefaultSeparator}

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
		"stripper: must specify an input source (use WithString, WithReader, or WithBytes)",
		"stripper: must specify exactly one input source",
		cfg.input != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithString specifies a string as the input source
func WithString(s string) Option {
	return func(cfg *stripConfig) error {
		cfg.input = &s
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *stripConfig) error {
		if r == nil {
			return &strerrors.ArgumentError{Argument: "WithReader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *stripConfig) error {
		if data == nil {
			return &strerrors.ArgumentError{Argument: "WithBytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithSeparator sets the list separator collapsed around removed markers.
// Default: ";"
func WithSeparator(sep string) Option {
	return func(cfg *stripConfig) error {
		if sep == "" {
			return &strerrors.ArgumentError{Argument: "WithSeparator", Message: "separator cannot be empty"}
		}
		cfg.separator = sep
		return nil
	}
}

// WithMarkers replaces the default marker set. Each marker must be a valid
// identifier ([A-Za-z_][A-Za-z0-9_]*).
// Default: BUILD_INTERFACE and INSTALL_INTERFACE.
func WithMarkers(markers ...string) Option {
	return func(cfg *stripConfig) error {
		if len(markers) == 0 {
			return &strerrors.ArgumentError{Argument: "WithMarkers", Message: "at least one marker is required"}
		}
		for _, marker := range markers {
			if !identRegex.MatchString(marker) {
				return &strerrors.ArgumentError{
					Argument: "WithMarkers",
					Value:    marker,
					Message:  "marker must be a valid identifier",
				}
			}
		}
		cfg.markers = markers
		return nil
	}
}

// Package strerrors provides structured error types for strmanip.
//
// Every validation failure in strmanip is an argument error: a malformed,
// missing, extra, or ambiguous argument to one of the string operations.
// The typed error enables programmatic handling via errors.Is() and
// errors.As(), allowing callers to distinguish argument problems from
// incidental failures (such as reading an input source).
//
// # Usage with errors.Is
//
//	result, err := splitter.SplitWithOptions()
//	if errors.Is(err, strerrors.ErrArgument) {
//	    // The call itself was malformed; fix the arguments.
//	}
//
// # Usage with errors.As
//
//	var argErr *strerrors.ArgumentError
//	if errors.As(err, &argErr) {
//	    fmt.Println("offending argument:", argErr.Argument)
//	}
package strerrors

import (
	"errors"
	"fmt"
)

// ErrArgument indicates a malformed, missing, extra, or ambiguous argument.
// Use with errors.Is() for quick checks without type assertions.
var ErrArgument = errors.New("argument error")

// ArgumentError represents a malformed call to a strmanip operation.
// It is the only error category the operations produce: any validation
// failure aborts the call immediately with no partial result.
type ArgumentError struct {
	// Argument is the name of the offending argument or option
	// (e.g., "WithString", "WithMarkers")
	Argument string
	// Value is the problematic value that was provided (may be nil)
	Value any
	// Message describes what was wrong with the argument
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message naming the offending argument.
func (e *ArgumentError) Error() string {
	msg := "argument error"
	if e.Argument != "" {
		msg += " for " + e.Argument
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ArgumentError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrArgument
}

// Package options provides shared utilities for option validation across packages.
package options

import "github.com/erraggy/strmanip/strerrors"

// ValidateSingleSource ensures exactly one input source or operation is specified.
// set is a variadic list of booleans indicating whether each candidate is set.
// noneMsg is the error message when nothing is specified.
// multiMsg is the error message when more than one is specified.
// Returns an *strerrors.ArgumentError if zero or more than one candidate is set.
func ValidateSingleSource(argument, noneMsg, multiMsg string, set ...bool) error {
	count := 0
	for _, isSet := range set {
		if isSet {
			count++
		}
	}

	if count == 0 {
		return &strerrors.ArgumentError{Argument: argument, Message: noneMsg}
	}
	if count > 1 {
		return &strerrors.ArgumentError{Argument: argument, Message: multiMsg}
	}

	return nil
}

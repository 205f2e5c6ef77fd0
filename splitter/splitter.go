package splitter

import (
	"strings"
	"unicode"
)

// Splitter tokenizes identifier-like strings. The zero value is ready to
// use; New is provided for symmetry with the other operation packages.
// A Splitter holds no state, so a single instance is safe for concurrent use.
type Splitter struct{}

// New creates a new Splitter.
func New() *Splitter {
	return &Splitter{}
}

// Sanitize normalizes input into a C-identifier-safe form: every rune that
// is not an ASCII letter, digit, or underscore becomes a single underscore.
func Sanitize(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if isIdentRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Split breaks input into ordered word tokens after sanitizing it.
// Underscores separate tokens and are dropped. An uppercase letter begins a
// new token unless it extends a run of uppercase letters, so every token is
// a (possibly empty) run of uppercase letters followed by a run of
// non-uppercase characters: "fooBarBaz" → [foo Bar Baz], "HELLO" → [HELLO],
// "ABc" → [ABc]. An input with no boundary yields a single token containing
// the whole sanitized string. Empty input (or input that sanitizes to
// underscores only) yields nil.
func (s *Splitter) Split(input string) []string {
	sanitized := Sanitize(input)
	if sanitized == "" {
		return nil
	}

	var tokens []string
	var current strings.Builder
	var prev rune

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
		prev = 0
	}

	for _, r := range sanitized {
		if r == '_' {
			flush()
			continue
		}
		if unicode.IsUpper(r) && current.Len() > 0 && !unicode.IsUpper(prev) {
			flush()
		}
		current.WriteRune(r)
		prev = r
	}
	flush()

	return tokens
}

// Split breaks input into ordered word tokens using a default Splitter.
// See Splitter.Split for the tokenization rules.
func Split(input string) []string {
	return defaultSplitter.Split(input)
}

var defaultSplitter = New()

// isIdentRune reports whether r is allowed in a C identifier.
func isIdentRune(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '_'
}

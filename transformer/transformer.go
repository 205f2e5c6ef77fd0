package transformer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/strmanip/splitter"
)

// Transformer applies word-case transformations using the case mappings of
// a given language. The zero value uses the Unicode default mappings
// (language.Und). A Transformer holds no other state; cases.Caser values
// are created per call because they are stateful, so a single Transformer
// is safe for concurrent use.
type Transformer struct {
	// Language selects the Unicode case mappings. language.Und (the zero
	// value) uses the default mappings, which reproduce plain ASCII
	// behavior exactly.
	Language language.Tag
}

// New creates a new Transformer with the default (und) case mappings.
func New() *Transformer {
	return &Transformer{Language: language.Und}
}

// StartCaseWord start-cases a single word: the whole word is lowercased and
// exactly its first character is uppercased. The empty word is a no-op; a
// one-character word is fully uppercased.
func (t *Transformer) StartCaseWord(word string) string {
	if word == "" {
		return ""
	}
	lowered := cases.Lower(t.Language).String(word)
	r, size := utf8.DecodeRuneInString(lowered)
	return cases.Upper(t.Language).String(string(r)) + lowered[size:]
}

// StartCase start-cases a string. The input is split into word tokens
// first; each token is start-cased and the results are concatenated with
// no separator, preserving order. A single-token input is start-cased
// directly, and an empty input returns the empty string.
func (t *Transformer) StartCase(s string) string {
	tokens := splitter.Split(s)
	switch len(tokens) {
	case 0:
		return ""
	case 1:
		return t.StartCaseWord(tokens[0])
	default:
		var b strings.Builder
		b.Grow(len(s))
		for _, token := range tokens {
			b.WriteString(t.StartCaseWord(token))
		}
		return b.String()
	}
}

// StartCaseTokens start-cases each token of a sequence, returning a new
// slice of the same length and order. The input slice is not modified;
// a nil input returns nil.
func (t *Transformer) StartCaseTokens(tokens []string) []string {
	if tokens == nil {
		return nil
	}
	out := make([]string, len(tokens))
	for i, token := range tokens {
		out[i] = t.StartCaseWord(token)
	}
	return out
}

// StartCaseTokensInPlace start-cases each token of a sequence, overwriting
// the slice the caller passed in. This is the only mutating entry point in
// the package.
func (t *Transformer) StartCaseTokensInPlace(tokens []string) {
	for i, token := range tokens {
		tokens[i] = t.StartCaseWord(token)
	}
}

// defaultTransformer backs the package-level convenience functions.
var defaultTransformer = New()

// StartCaseWord start-cases a single word using the default case mappings.
func StartCaseWord(word string) string {
	return defaultTransformer.StartCaseWord(word)
}

// StartCase start-cases a string using the default case mappings.
// See Transformer.StartCase.
func StartCase(s string) string {
	return defaultTransformer.StartCase(s)
}

// StartCaseTokens start-cases a token sequence using the default case
// mappings. See Transformer.StartCaseTokens.
func StartCaseTokens(tokens []string) []string {
	return defaultTransformer.StartCaseTokens(tokens)
}

// StartCaseTokensInPlace start-cases a token sequence in place using the
// default case mappings. See Transformer.StartCaseTokensInPlace.
func StartCaseTokensInPlace(tokens []string) {
	defaultTransformer.StartCaseTokensInPlace(tokens)
}

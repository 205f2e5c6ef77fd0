package transformer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/erraggy/strmanip/splitter"
)

// PascalCase converts a string to PascalCase. This is the start-case
// concatenation under its conventional name: "user_profile" → "UserProfile",
// "api-client" → "ApiClient".
func (t *Transformer) PascalCase(s string) string {
	return t.StartCase(s)
}

// CamelCase converts a string to camelCase. Like PascalCase but with the
// first letter lowercase: "user_profile" → "userProfile".
func (t *Transformer) CamelCase(s string) string {
	pascal := t.StartCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// SnakeCase converts a string to snake_case by lowercasing each word token
// and joining with underscores: "UserProfile" → "user_profile".
func (t *Transformer) SnakeCase(s string) string {
	return t.joinLowered(s, "_")
}

// KebabCase converts a string to kebab-case. Like snake_case but with
// hyphens instead of underscores: "UserProfile" → "user-profile".
func (t *Transformer) KebabCase(s string) string {
	return t.joinLowered(s, "-")
}

func (t *Transformer) joinLowered(s, sep string) string {
	tokens := splitter.Split(s)
	if len(tokens) == 0 {
		return ""
	}
	lower := cases.Lower(t.Language)
	for i, token := range tokens {
		tokens[i] = lower.String(token)
	}
	return strings.Join(tokens, sep)
}

// PascalCase converts a string to PascalCase using the default case mappings.
func PascalCase(s string) string {
	return defaultTransformer.PascalCase(s)
}

// CamelCase converts a string to camelCase using the default case mappings.
func CamelCase(s string) string {
	return defaultTransformer.CamelCase(s)
}

// SnakeCase converts a string to snake_case using the default case mappings.
func SnakeCase(s string) string {
	return defaultTransformer.SnakeCase(s)
}

// KebabCase converts a string to kebab-case using the default case mappings.
func KebabCase(s string) string {
	return defaultTransformer.KebabCase(s)
}

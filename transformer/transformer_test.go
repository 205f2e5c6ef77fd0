package transformer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/erraggy/strmanip/splitter"
	"github.com/erraggy/strmanip/strerrors"
)

func TestStartCaseWord(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Empty and single characters
		{name: "empty word is a no-op", input: "", want: ""},
		{name: "single lowercase letter", input: "h", want: "H"},
		{name: "single uppercase letter", input: "H", want: "H"},
		{name: "single digit", input: "1", want: "1"},

		// Whole words
		{name: "lowercase word", input: "hello", want: "Hello"},
		{name: "all caps word", input: "HELLO", want: "Hello"},
		{name: "mixed case word", input: "hElLo", want: "Hello"},
		{name: "already start-cased", input: "Hello", want: "Hello"},
		{name: "word with digits", input: "api2", want: "Api2"},
		{name: "leading digit", input: "2fa", want: "2fa"},

		// Unicode
		{name: "unicode lowercase", input: "über", want: "Über"},
		{name: "unicode uppercase", input: "ÜBER", want: "Über"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartCaseWord(tt.input)
			assert.Equal(t, tt.want, got, "StartCaseWord(%q)", tt.input)
		})
	}
}

func TestStartCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Empty and single tokens
		{name: "empty string", input: "", want: ""},
		{name: "single letter", input: "h", want: "H"},
		{name: "single word", input: "simple", want: "Simple"},
		{name: "all caps is one word", input: "HELLO", want: "Hello"},

		// Multi-token strings: start-case each token, concatenate
		{name: "camelCase", input: "fooBarBaz", want: "FooBarBaz"},
		{name: "snake_case", input: "foo_bar_baz", want: "FooBarBaz"},
		{name: "kebab-case", input: "foo-bar", want: "FooBar"},
		{name: "spaces", input: "foo bar", want: "FooBar"},
		{name: "screaming snake", input: "FOO_BAR", want: "FooBar"},
		{name: "acronym prefix", input: "XMLHttpRequest", want: "XmlhttpRequest"},
		{name: "digits stay attached", input: "api2_client", want: "Api2Client"},

		// Boundary-only inputs
		{name: "underscores only", input: "___", want: ""},
		{name: "punctuation only", input: "?!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartCase(tt.input)
			assert.Equal(t, tt.want, got, "StartCase(%q)", tt.input)
		})
	}
}

func TestStartCaseTokens(t *testing.T) {
	t.Run("transforms out of place", func(t *testing.T) {
		in := []string{"foo", "BAR", "bAz"}
		got := StartCaseTokens(in)
		assert.Equal(t, []string{"Foo", "Bar", "Baz"}, got)
		assert.Equal(t, []string{"foo", "BAR", "bAz"}, in, "input slice must not be modified")
	})

	t.Run("preserves order and length", func(t *testing.T) {
		in := []string{"c", "a", "b", ""}
		got := StartCaseTokens(in)
		assert.Equal(t, []string{"C", "A", "B", ""}, got)
	})

	t.Run("nil input returns nil", func(t *testing.T) {
		assert.Nil(t, StartCaseTokens(nil))
	})

	t.Run("empty input returns empty", func(t *testing.T) {
		assert.Equal(t, []string{}, StartCaseTokens([]string{}))
	})
}

func TestStartCaseTokensInPlace(t *testing.T) {
	tokens := []string{"foo", "BAR"}
	StartCaseTokensInPlace(tokens)
	assert.Equal(t, []string{"Foo", "Bar"}, tokens)
}

func TestStartCaseIdempotence(t *testing.T) {
	inputs := []string{"", "h", "simple", "fooBarBaz", "foo_bar_baz", "HELLO", "api2Client", "a b c"}
	for _, input := range inputs {
		once := StartCase(input)
		assert.Equal(t, once, StartCase(once), "StartCase not idempotent for %q", input)
	}

	tokenSets := [][]string{nil, {}, {"foo"}, {"foo", "BAR", "bAz"}}
	for _, tokens := range tokenSets {
		once := StartCaseTokens(tokens)
		assert.Equal(t, once, StartCaseTokens(once), "StartCaseTokens not idempotent for %v", tokens)
	}
}

func TestStartCaseRoundTrip(t *testing.T) {
	// String form and sequence form agree: concatenating the start-cased
	// tokens of an input equals start-casing the input directly.
	inputs := []string{"fooBarBaz", "foo_bar_baz", "simple", "HELLO", "a b c", "api2Client", ""}
	for _, input := range inputs {
		viaTokens := strings.Join(StartCaseTokens(splitter.Split(input)), "")
		assert.Equal(t, StartCase(input), viaTokens, "forms disagree for %q", input)
	}
}

func TestTransformerLanguage(t *testing.T) {
	t.Run("und matches package defaults", func(t *testing.T) {
		tr := New()
		assert.Equal(t, StartCase("foo_bar"), tr.StartCase("foo_bar"))
	})

	t.Run("turkish dotted i", func(t *testing.T) {
		tr := &Transformer{Language: language.Turkish}
		assert.Equal(t, "İstanbul", tr.StartCaseWord("istanbul"))
	})
}

func TestTransformWithOptions(t *testing.T) {
	t.Run("string input", func(t *testing.T) {
		result, err := TransformWithOptions(WithString("foo_bar"), WithStartCase())
		require.NoError(t, err)
		assert.Equal(t, "FooBar", result.Output)
		assert.Nil(t, result.Tokens)
	})

	t.Run("token input", func(t *testing.T) {
		result, err := TransformWithOptions(WithTokens([]string{"foo", "BAR"}), WithStartCase())
		require.NoError(t, err)
		assert.Equal(t, []string{"Foo", "Bar"}, result.Tokens)
		assert.Empty(t, result.Output)
	})

	t.Run("language option", func(t *testing.T) {
		result, err := TransformWithOptions(
			WithString("istanbul"),
			WithStartCase(),
			WithLanguage(language.Turkish),
		)
		require.NoError(t, err)
		assert.Equal(t, "İstanbul", result.Output)
	})

	t.Run("missing start-case modifier fails", func(t *testing.T) {
		result, err := TransformWithOptions(WithString("foo"))
		assert.Nil(t, result)
		require.Error(t, err)
		assert.ErrorIs(t, err, strerrors.ErrArgument)
		assert.Contains(t, err.Error(), "WithStartCase")
	})

	t.Run("no input source fails", func(t *testing.T) {
		_, err := TransformWithOptions(WithStartCase())
		require.Error(t, err)
		assert.ErrorIs(t, err, strerrors.ErrArgument)
		assert.Contains(t, err.Error(), "must specify an input source")
	})

	t.Run("multiple input sources fail", func(t *testing.T) {
		_, err := TransformWithOptions(
			WithString("foo"),
			WithTokens([]string{"bar"}),
			WithStartCase(),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, strerrors.ErrArgument)
		assert.Contains(t, err.Error(), "exactly one input source")
	})

	t.Run("nil tokens fail", func(t *testing.T) {
		_, err := TransformWithOptions(WithTokens(nil), WithStartCase())
		require.Error(t, err)
		assert.ErrorIs(t, err, strerrors.ErrArgument)
	})

	t.Run("empty token slice is valid", func(t *testing.T) {
		result, err := TransformWithOptions(WithTokens([]string{}), WithStartCase())
		require.NoError(t, err)
		assert.Empty(t, result.Tokens)
	})
}

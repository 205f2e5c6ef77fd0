package splitter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/strmanip/strerrors"
)

func TestSplitWithOptions(t *testing.T) {
	t.Run("with string", func(t *testing.T) {
		result, err := SplitWithOptions(WithString("fooBarBaz"))
		require.NoError(t, err)
		assert.Equal(t, []string{"foo", "Bar", "Baz"}, result.Tokens)
		assert.Equal(t, "fooBarBaz", result.Sanitized)
	})

	t.Run("with reader", func(t *testing.T) {
		result, err := SplitWithOptions(WithReader(strings.NewReader("foo_bar")))
		require.NoError(t, err)
		assert.Equal(t, []string{"foo", "bar"}, result.Tokens)
	})

	t.Run("with bytes", func(t *testing.T) {
		result, err := SplitWithOptions(WithBytes([]byte("a-b")))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, result.Tokens)
		assert.Equal(t, "a_b", result.Sanitized)
	})

	t.Run("empty string yields nil tokens", func(t *testing.T) {
		result, err := SplitWithOptions(WithString(""))
		require.NoError(t, err)
		assert.Nil(t, result.Tokens)
		assert.Empty(t, result.Sanitized)
	})

	t.Run("no input source fails", func(t *testing.T) {
		result, err := SplitWithOptions()
		assert.Nil(t, result)
		require.Error(t, err)
		assert.ErrorIs(t, err, strerrors.ErrArgument)
		assert.Contains(t, err.Error(), "must specify an input source")
	})

	t.Run("multiple input sources fail", func(t *testing.T) {
		result, err := SplitWithOptions(
			WithString("foo"),
			WithBytes([]byte("bar")),
		)
		assert.Nil(t, result)
		require.Error(t, err)
		assert.ErrorIs(t, err, strerrors.ErrArgument)
		assert.Contains(t, err.Error(), "exactly one input source")
	})

	t.Run("nil reader fails", func(t *testing.T) {
		_, err := SplitWithOptions(WithReader(nil))
		require.Error(t, err)
		assert.ErrorIs(t, err, strerrors.ErrArgument)
	})

	t.Run("nil bytes fail", func(t *testing.T) {
		_, err := SplitWithOptions(WithBytes(nil))
		require.Error(t, err)
		assert.ErrorIs(t, err, strerrors.ErrArgument)
	})

	t.Run("nil option fails", func(t *testing.T) {
		_, err := SplitWithOptions(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, strerrors.ErrArgument)
	})
}

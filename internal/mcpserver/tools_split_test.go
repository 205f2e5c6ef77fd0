package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTool(t *testing.T) {
	input := splitInput{Input: textInput{Text: strPtr("XMLHttpRequest")}}
	result, output, err := handleSplit(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, []string{"XMLHttp", "Request"}, output.Tokens)
	assert.Equal(t, 2, output.Count)
	assert.Equal(t, "XMLHttpRequest", output.Sanitized)
}

func TestSplitTool_Sanitizes(t *testing.T) {
	input := splitInput{Input: textInput{Text: strPtr("foo-bar.baz")}}
	result, output, err := handleSplit(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, []string{"foo", "bar", "baz"}, output.Tokens)
	assert.Equal(t, "foo_bar_baz", output.Sanitized)
}

func TestSplitTool_EmptyInput(t *testing.T) {
	input := splitInput{Input: textInput{Text: strPtr("")}}
	result, output, err := handleSplit(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Empty(t, output.Tokens)
	assert.Equal(t, 0, output.Count)
}

func TestSplitTool_BadInput(t *testing.T) {
	result, _, err := handleSplit(context.Background(), &mcp.CallToolRequest{}, splitInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

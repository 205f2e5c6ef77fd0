package mcpserver

import (
	"context"

	"github.com/erraggy/strmanip/splitter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type splitInput struct {
	Input textInput `json:"input" jsonschema:"The identifier string to split"`
}

type splitOutput struct {
	Tokens    []string `json:"tokens,omitempty"`
	Count     int      `json:"count"`
	Sanitized string   `json:"sanitized"`
}

func handleSplit(_ context.Context, _ *mcp.CallToolRequest, input splitInput) (*mcp.CallToolResult, splitOutput, error) {
	text, err := input.Input.resolve()
	if err != nil {
		return errResult(err), splitOutput{}, nil
	}

	result, err := splitter.SplitWithOptions(splitter.WithString(text))
	if err != nil {
		return errResult(err), splitOutput{}, nil
	}

	output := splitOutput{
		Count:     len(result.Tokens),
		Sanitized: result.Sanitized,
	}
	output.Tokens = makeSlice[string](len(result.Tokens))
	output.Tokens = append(output.Tokens, result.Tokens...)
	return nil, output, nil
}

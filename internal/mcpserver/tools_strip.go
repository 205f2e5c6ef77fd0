package mcpserver

import (
	"context"

	"github.com/erraggy/strmanip/stripper"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type stripInput struct {
	Input     textInput `json:"input"               jsonschema:"The separator-delimited list to strip"`
	Separator string    `json:"separator,omitempty" jsonschema:"List separator (default ;)"`
	Markers   []string  `json:"markers,omitempty"   jsonschema:"Generator expression marker names to strip (default BUILD_INTERFACE and INSTALL_INTERFACE)"`
}

type stripOutput struct {
	Output  string `json:"output"`
	Removed int    `json:"removed"`
}

func handleStripInterfaces(_ context.Context, _ *mcp.CallToolRequest, input stripInput) (*mcp.CallToolResult, stripOutput, error) {
	text, err := input.Input.resolve()
	if err != nil {
		return errResult(err), stripOutput{}, nil
	}

	opts := []stripper.Option{stripper.WithString(text)}
	if input.Separator != "" {
		opts = append(opts, stripper.WithSeparator(input.Separator))
	}
	if len(input.Markers) > 0 {
		opts = append(opts, stripper.WithMarkers(input.Markers...))
	}

	result, err := stripper.StripWithOptions(opts...)
	if err != nil {
		return errResult(err), stripOutput{}, nil
	}

	return nil, stripOutput{Output: result.Output, Removed: result.Removed}, nil
}

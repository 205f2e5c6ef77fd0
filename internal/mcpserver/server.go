// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes strmanip capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/strmanip"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `strmanip MCP server — splits, start-cases, and strips generator expressions from identifier strings.

Configuration: All defaults are configurable via STRMANIP_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- STRMANIP_MAX_INPUT_SIZE (default: 1048576) — maximum input size in bytes for inline text and files
- STRMANIP_CASE_LANGUAGE (default: und) — BCP 47 language tag governing start_case casing rules

Inputs: every tool accepts text inline (text) or from a local file (file). Exactly one must be provided.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "strmanip", Version: strmanip.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "split",
		Description: "Split an identifier string into word tokens. Sanitizes the input first (characters outside [A-Za-z0-9_] become underscores), then splits at underscores and lowercase-to-uppercase case changes. Returns the token list along with the sanitized form of the input. Example: XMLHttpRequest is split into XMLHttp and Request.",
	}, handleSplit)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "start_case",
		Description: "Convert an identifier string or a pre-split token list to start case (each word capitalized, remainder lowercased, all words concatenated). Provide input to split-then-case a raw identifier, or tokens to case an existing token list. Casing rules follow the language tag given in language (BCP 47), defaulting to STRMANIP_CASE_LANGUAGE.",
	}, handleStartCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "strip_interfaces",
		Description: "Remove $<BUILD_INTERFACE:...> and $<INSTALL_INTERFACE:...> generator expressions from a separator-delimited list, collapsing the separator left behind by each removal. Custom separators and marker names are supported via separator and markers. Returns the cleaned list and the number of expressions removed.",
	}, handleStripInterfaces)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

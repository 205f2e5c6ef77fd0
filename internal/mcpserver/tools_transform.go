package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/strmanip/transformer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/text/language"
)

type startCaseInput struct {
	Input    *textInput `json:"input,omitempty"    jsonschema:"The identifier string to split and start-case"`
	Tokens   []string   `json:"tokens,omitempty"   jsonschema:"A pre-split token list to start-case word by word"`
	Language string     `json:"language,omitempty" jsonschema:"BCP 47 language tag governing casing rules (default from STRMANIP_CASE_LANGUAGE)"`
}

type startCaseOutput struct {
	Output string   `json:"output,omitempty"`
	Tokens []string `json:"tokens,omitempty"`
}

func handleStartCase(_ context.Context, _ *mcp.CallToolRequest, input startCaseInput) (*mcp.CallToolResult, startCaseOutput, error) {
	if (input.Input == nil) == (input.Tokens == nil) {
		return errResult(fmt.Errorf("exactly one of input or tokens must be provided")), startCaseOutput{}, nil
	}

	// Apply config defaults when input fields are omitted.
	tag := cfg.CaseLanguage
	if input.Language != "" {
		parsed, err := language.Parse(input.Language)
		if err != nil {
			return errResult(fmt.Errorf("invalid language tag %q: %w", input.Language, err)), startCaseOutput{}, nil
		}
		tag = parsed
	}

	opts := []transformer.Option{
		transformer.WithStartCase(),
		transformer.WithLanguage(tag),
	}
	if input.Input != nil {
		text, err := input.Input.resolve()
		if err != nil {
			return errResult(err), startCaseOutput{}, nil
		}
		opts = append(opts, transformer.WithString(text))
	} else {
		opts = append(opts, transformer.WithTokens(input.Tokens))
	}

	result, err := transformer.TransformWithOptions(opts...)
	if err != nil {
		return errResult(err), startCaseOutput{}, nil
	}

	output := startCaseOutput{Output: result.Output}
	output.Tokens = makeSlice[string](len(result.Tokens))
	output.Tokens = append(output.Tokens, result.Tokens...)
	return nil, output, nil
}

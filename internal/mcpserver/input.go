package mcpserver

import (
	"fmt"
	"os"
)

// textInput identifies text by inline content or file path.
// Exactly one field must be set.
type textInput struct {
	Text *string `json:"text,omitempty" jsonschema:"Inline text to process"`
	File string  `json:"file,omitempty" jsonschema:"Path to a local file containing the text"`
}

// resolve returns the text from whichever input was provided, enforcing
// the configured size limit.
func (in textInput) resolve() (string, error) {
	count := 0
	if in.Text != nil {
		count++
	}
	if in.File != "" {
		count++
	}
	if count != 1 {
		return "", fmt.Errorf("exactly one of text or file must be provided (got %d)", count)
	}

	if in.Text != nil {
		if len(*in.Text) > cfg.MaxInputSize {
			return "", fmt.Errorf("inline text exceeds size limit (%d bytes > %d)", len(*in.Text), cfg.MaxInputSize)
		}
		return *in.Text, nil
	}

	info, err := os.Stat(in.File)
	if err != nil {
		return "", fmt.Errorf("failed to stat input file: %w", err)
	}
	if info.Size() > int64(cfg.MaxInputSize) {
		return "", fmt.Errorf("input file exceeds size limit (%d bytes > %d)", info.Size(), cfg.MaxInputSize)
	}
	data, err := os.ReadFile(in.File)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

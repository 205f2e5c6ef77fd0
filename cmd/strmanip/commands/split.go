package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/strmanip/internal/cliutil"
	"github.com/erraggy/strmanip/splitter"
)

// SplitFlags contains flags for the split command
type SplitFlags struct {
	Format string
}

// splitReport is the structured output for the split command.
type splitReport struct {
	Tokens    []string `json:"tokens" yaml:"tokens"`
	Count     int      `json:"count" yaml:"count"`
	Sanitized string   `json:"sanitized" yaml:"sanitized"`
}

// SetupSplitFlags creates and configures a FlagSet for the split command.
// Returns the FlagSet and a SplitFlags struct with bound flag variables.
func SetupSplitFlags() (*flag.FlagSet, *SplitFlags) {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	flags := &SplitFlags{}

	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: strmanip split [flags] <string|->\n\n")
		cliutil.Writef(fs.Output(), "Split an identifier string into word tokens.\n\n")
		cliutil.Writef(fs.Output(), "The input is sanitized first (characters outside [A-Za-z0-9_] become\n")
		cliutil.Writef(fs.Output(), "underscores), then split at underscores and at lowercase-to-uppercase\n")
		cliutil.Writef(fs.Output(), "case changes. Pass '-' to read the string from stdin.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  strmanip split XMLHttpRequest\n")
		cliutil.Writef(fs.Output(), "  strmanip split my_target_name\n")
		cliutil.Writef(fs.Output(), "  strmanip split --format json fooBarBaz\n")
		cliutil.Writef(fs.Output(), "  echo some-lib.name | strmanip split -\n")
	}

	return fs, flags
}

// HandleSplit executes the split command
func HandleSplit(args []string) error {
	fs, flags := SetupSplitFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("split command requires exactly one string or '-' for stdin")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	input, err := ReadInputArg(fs.Arg(0))
	if err != nil {
		return err
	}

	result, err := splitter.SplitWithOptions(splitter.WithString(input))
	if err != nil {
		return fmt.Errorf("splitting input: %w", err)
	}

	if flags.Format != FormatText {
		return OutputStructured(splitReport{
			Tokens:    result.Tokens,
			Count:     len(result.Tokens),
			Sanitized: result.Sanitized,
		}, flags.Format)
	}

	for _, token := range result.Tokens {
		fmt.Println(token)
	}
	return nil
}

package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/erraggy/strmanip/internal/cliutil"
	"github.com/erraggy/strmanip/transformer"
)

// StartCaseFlags contains flags for the start-case command
type StartCaseFlags struct {
	Tokens bool
	Lang   string
	Format string
}

// startCaseReport is the structured output for the start-case command.
type startCaseReport struct {
	Output string   `json:"output,omitempty" yaml:"output,omitempty"`
	Tokens []string `json:"tokens,omitempty" yaml:"tokens,omitempty"`
}

// SetupStartCaseFlags creates and configures a FlagSet for the start-case command.
// Returns the FlagSet and a StartCaseFlags struct with bound flag variables.
func SetupStartCaseFlags() (*flag.FlagSet, *StartCaseFlags) {
	fs := flag.NewFlagSet("start-case", flag.ContinueOnError)
	flags := &StartCaseFlags{}

	fs.BoolVar(&flags.Tokens, "tokens", false, "treat the arguments as a pre-split token list instead of a raw identifier")
	fs.StringVar(&flags.Lang, "lang", "", "BCP 47 language tag governing casing rules (default: language-neutral)")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: strmanip start-case [flags] <string|->\n")
		cliutil.Writef(fs.Output(), "       strmanip start-case --tokens [flags] <token> [token...]\n\n")
		cliutil.Writef(fs.Output(), "Convert an identifier string to start case: the string is split into\n")
		cliutil.Writef(fs.Output(), "word tokens, each token is capitalized with the remainder lowercased,\n")
		cliutil.Writef(fs.Output(), "and the cased words are concatenated. Pass '-' to read from stdin.\n\n")
		cliutil.Writef(fs.Output(), "With --tokens, each argument is treated as one already-split token and\n")
		cliutil.Writef(fs.Output(), "the cased tokens are printed one per line instead of concatenated.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  strmanip start-case my_target_name\n")
		cliutil.Writef(fs.Output(), "  strmanip start-case --lang tr istanbul\n")
		cliutil.Writef(fs.Output(), "  strmanip start-case --tokens HTTP client\n")
		cliutil.Writef(fs.Output(), "  echo fooBarBaz | strmanip start-case -\n")
	}

	return fs, flags
}

// HandleStartCase executes the start-case command
func HandleStartCase(args []string) error {
	fs, flags := SetupStartCaseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	tag := language.Und
	if flags.Lang != "" {
		parsed, err := language.Parse(flags.Lang)
		if err != nil {
			return fmt.Errorf("invalid language tag '%s': %w", flags.Lang, err)
		}
		tag = parsed
	}

	opts := []transformer.Option{
		transformer.WithStartCase(),
		transformer.WithLanguage(tag),
	}

	if flags.Tokens {
		if fs.NArg() < 1 {
			fs.Usage()
			return fmt.Errorf("start-case --tokens requires at least one token argument")
		}
		opts = append(opts, transformer.WithTokens(fs.Args()))
	} else {
		if fs.NArg() != 1 {
			fs.Usage()
			return fmt.Errorf("start-case command requires exactly one string or '-' for stdin")
		}
		input, err := ReadInputArg(fs.Arg(0))
		if err != nil {
			return err
		}
		opts = append(opts, transformer.WithString(input))
	}

	result, err := transformer.TransformWithOptions(opts...)
	if err != nil {
		return fmt.Errorf("transforming input: %w", err)
	}

	if flags.Format != FormatText {
		return OutputStructured(startCaseReport{
			Output: result.Output,
			Tokens: result.Tokens,
		}, flags.Format)
	}

	if flags.Tokens {
		fmt.Println(strings.Join(result.Tokens, "\n"))
		return nil
	}
	fmt.Println(result.Output)
	return nil
}

package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/strmanip/internal/cliutil"
	"github.com/erraggy/strmanip/stripper"
)

// StripFlags contains flags for the strip-interfaces command
type StripFlags struct {
	Separator string
	Markers   stringSliceFlag
	Format    string
}

// stripReport is the structured output for the strip-interfaces command.
type stripReport struct {
	Output  string `json:"output" yaml:"output"`
	Removed int    `json:"removed" yaml:"removed"`
}

// SetupStripFlags creates and configures a FlagSet for the strip-interfaces command.
// Returns the FlagSet and a StripFlags struct with bound flag variables.
func SetupStripFlags() (*flag.FlagSet, *StripFlags) {
	fs := flag.NewFlagSet("strip-interfaces", flag.ContinueOnError)
	flags := &StripFlags{}

	fs.StringVar(&flags.Separator, "separator", "", "list separator (default ;)")
	fs.Var(&flags.Markers, "marker", "generator expression marker name to strip; repeatable (default BUILD_INTERFACE, INSTALL_INTERFACE)")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: strmanip strip-interfaces [flags] <list|->\n\n")
		cliutil.Writef(fs.Output(), "Remove $<BUILD_INTERFACE:...> and $<INSTALL_INTERFACE:...> generator\n")
		cliutil.Writef(fs.Output(), "expressions from a separator-delimited list. Each removal collapses the\n")
		cliutil.Writef(fs.Output(), "separator it leaves behind, so the list stays well formed.\n")
		cliutil.Writef(fs.Output(), "Pass '-' to read the list from stdin.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  strmanip strip-interfaces 'a;$<BUILD_INTERFACE:include>;b'\n")
		cliutil.Writef(fs.Output(), "  strmanip strip-interfaces --separator : 'a:$<INSTALL_INTERFACE:lib>:b'\n")
		cliutil.Writef(fs.Output(), "  strmanip strip-interfaces --marker LINK_ONLY 'a;$<LINK_ONLY:z>;b'\n")
		cliutil.Writef(fs.Output(), "  echo 'a;$<BUILD_INTERFACE:x>' | strmanip strip-interfaces --format json -\n")
	}

	return fs, flags
}

// HandleStrip executes the strip-interfaces command
func HandleStrip(args []string) error {
	fs, flags := SetupStripFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("strip-interfaces command requires exactly one list or '-' for stdin")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	input, err := ReadInputArg(fs.Arg(0))
	if err != nil {
		return err
	}

	opts := []stripper.Option{stripper.WithString(input)}
	if flags.Separator != "" {
		opts = append(opts, stripper.WithSeparator(flags.Separator))
	}
	if len(flags.Markers) > 0 {
		opts = append(opts, stripper.WithMarkers(flags.Markers...))
	}

	result, err := stripper.StripWithOptions(opts...)
	if err != nil {
		return fmt.Errorf("stripping input: %w", err)
	}

	if flags.Format != FormatText {
		return OutputStructured(stripReport{
			Output:  result.Output,
			Removed: result.Removed,
		}, flags.Format)
	}

	fmt.Println(result.Output)
	return nil
}

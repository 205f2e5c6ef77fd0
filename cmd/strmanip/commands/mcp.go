package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/strmanip/internal/cliutil"
	"github.com/erraggy/strmanip/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: strmanip mcp\n\n")
		cliutil.Writef(fs.Output(), "Run an MCP (Model Context Protocol) server over stdio, exposing the\n")
		cliutil.Writef(fs.Output(), "split, start_case, and strip_interfaces tools to MCP clients.\n\n")
		cliutil.Writef(fs.Output(), "Configuration (environment variables):\n")
		cliutil.Writef(fs.Output(), "  STRMANIP_MAX_INPUT_SIZE   maximum input size in bytes (default 1048576)\n")
		cliutil.Writef(fs.Output(), "  STRMANIP_CASE_LANGUAGE    BCP 47 tag for start_case casing (default und)\n")
	}

	return fs
}

// HandleMCP executes the mcp command, blocking until the client disconnects.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	return mcpserver.Run(context.Background())
}

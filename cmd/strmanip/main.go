package main

import (
	"fmt"
	"os"

	"github.com/erraggy/strmanip"
	"github.com/erraggy/strmanip/cmd/strmanip/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("strmanip v%s\n", strmanip.Version())
	case "help", "-h", "--help":
		printUsage()
	case "split":
		if err := commands.HandleSplit(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "start-case":
		if err := commands.HandleStartCase(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "strip-interfaces":
		if err := commands.HandleStrip(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// knownCommands lists the commands eligible for typo suggestions.
var knownCommands = []string{"split", "start-case", "strip-interfaces", "mcp", "version", "help"}

// suggestCommand returns the known command closest to input, or "" when
// nothing is within edit distance 2.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`strmanip - Identifier String Manipulation Tools

Usage:
  strmanip <command> [options]

Commands:
  split             Split an identifier string into word tokens
  start-case        Convert an identifier or token list to start case
  strip-interfaces  Remove generator expressions from a delimited list
  mcp               Run an MCP server over stdio
  version           Show version information
  help              Show this help message

Examples:
  strmanip split XMLHttpRequest
  strmanip start-case my_target_name
  strmanip start-case --tokens HTTP client
  strmanip strip-interfaces 'a;$<BUILD_INTERFACE:include>;b'
  echo fooBarBaz | strmanip split -

Run 'strmanip <command> --help' for more information on a command.`)
}

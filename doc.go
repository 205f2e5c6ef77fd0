// Package strmanip provides string-manipulation tools for identifier-like
// strings: word splitting, start-case conversion, and generator-expression
// marker stripping.
//
// The library consists of three operation packages plus a unified entry
// point in this package:
//
//   - splitter: break identifier-like strings into ordered word tokens
//   - transformer: start-case strings and token sequences (plus the sibling
//     Pascal, camel, snake, and kebab conversions)
//   - stripper: remove build- and install-interface generator-expression
//     markers from interface strings
//
// Every operation is a pure function from input to output: no state is
// retained between calls, nothing is overwritten implicitly, and all
// operations are safe to call concurrently.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/strmanip
//
// # Quick Start
//
// Split an identifier into word tokens:
//
//	import "github.com/erraggy/strmanip/splitter"
//
//	tokens := splitter.Split("fooBarBaz") // [foo Bar Baz]
//
// Start-case a string:
//
//	import "github.com/erraggy/strmanip/transformer"
//
//	transformer.StartCase("foo_bar_baz") // "FooBarBaz"
//
// Strip generator-expression markers:
//
//	import "github.com/erraggy/strmanip/stripper"
//
//	stripper.StripInterfaces("$<BUILD_INTERFACE:/usr/include>;/opt/lib") // "/opt/lib"
//
// # Unified Entry Point
//
// Apply dispatches to exactly one operation per call, selected by a
// functional option. Zero or multiple operation options fail with an
// argument error rather than being resolved silently:
//
//	result, err := strmanip.Apply(strmanip.WithSplit("fooBarBaz"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Tokens) // [foo Bar Baz]
//
// # Error Handling
//
// Malformed calls (a missing operation, multiple operations, or an
// invalid option value) fail immediately with an
// *strerrors.ArgumentError; there are no partial results. Use errors.Is
// with strerrors.ErrArgument or errors.As to inspect failures
// programmatically.
//
// # Command Line
//
// The strmanip command exposes the same operations as CLI subcommands
// (split, start-case, strip-interfaces) with text, JSON, and YAML output,
// and as MCP tools over stdio via the mcp subcommand.
package strmanip

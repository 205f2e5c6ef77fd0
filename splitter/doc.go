// Package splitter breaks identifier-like strings into ordered word tokens.
//
// The splitter first normalizes its input into a C-identifier-safe form:
// every character outside [A-Za-z0-9_] is replaced by an underscore, the
// same sanitizing convention build systems apply to target names. The
// normalized string is then tokenized on two kinds of word boundaries:
// underscores (which separate tokens and are dropped) and uppercase letters
// (which begin a new token and are kept).
//
// # Quick Start
//
// Split a string directly:
//
//	tokens := splitter.Split("fooBarBaz") // [foo Bar Baz]
//	tokens  = splitter.Split("foo_bar")   // [foo bar]
//	tokens  = splitter.Split("simple")    // [simple]
//
// Or use functional options when the input comes from a reader or byte
// slice:
//
//	result, err := splitter.SplitWithOptions(
//		splitter.WithReader(os.Stdin),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Tokens)
//
// # Tokenization Rules
//
// A token starts immediately after an underscore or at an uppercase letter
// that does not extend a run of uppercase letters, and extends until the
// next boundary. Every token is therefore a run of uppercase letters
// followed by a run of non-uppercase characters. Consequences:
//
//   - "fooBarBaz" → [foo Bar Baz]
//   - "foo_bar_baz" → [foo bar baz]
//   - "HELLO" → [HELLO] (an all-caps run is one token)
//   - "XMLHttpRequest" → [XMLHttp Request]
//   - "_foo_" → [foo] (leading/trailing underscores contribute no empty tokens)
//   - "simple" → [simple] (no boundary: the whole normalized string)
//   - "" → nil (empty input yields an empty token sequence)
//
// Concatenating the tokens of an underscore-free input reconstructs the
// normalized string; token order is always meaningful.
//
// All operations are pure functions with no retained state, so they are
// safe to call concurrently.
package splitter

// Package transformer converts identifier-like strings and token sequences
// between word-case forms, with start case as the primary operation.
//
// Start case lowercases each word and uppercases exactly its first
// character. The string form splits its input first (see the splitter
// package) and concatenates the start-cased tokens with no separator; the
// sequence form transforms each token independently, preserving order and
// length.
//
// # Quick Start
//
//	transformer.StartCase("fooBarBaz")                  // "FooBarBaz"
//	transformer.StartCase("HELLO")                      // "Hello"
//	transformer.StartCaseTokens([]string{"foo", "BAR"}) // [Foo Bar]
//
// Or use functional options, mirroring the other operation packages:
//
//	result, err := transformer.TransformWithOptions(
//		transformer.WithString("foo_bar"),
//		transformer.WithStartCase(),
//	)
//
// # Output Destination
//
// All transformations return new values. The only mutating entry point is
// the explicitly named StartCaseTokensInPlace, which overwrites a token
// slice the caller already owns; nothing is ever overwritten implicitly.
//
// # Case Mappings
//
// By default the package uses the Unicode default case mappings
// (language.Und), which reproduce plain ASCII behavior. A Transformer can
// be given another language tag for locale-aware mappings (for example
// Turkish dotless i):
//
//	tr := &transformer.Transformer{Language: language.Turkish}
//	tr.StartCase("istanbul")
//
// Idempotence holds for every form: applying start case to an already
// start-cased value returns it unchanged.
package transformer

// Package stripper removes generator-expression markers from interface
// strings.
//
// Build systems wrap compiler flags and include paths in generator
// expressions such as $<BUILD_INTERFACE:/usr/include> and
// $<INSTALL_INTERFACE:include> to scope them to build-time or install-time
// contexts. Before such a list can be used outside that system, the
// markers have to be stripped, together with the list separator they
// would otherwise leave dangling.
//
// # Quick Start
//
//	stripper.StripInterfaces("$<BUILD_INTERFACE:/usr/include>;/opt/lib") // "/opt/lib"
//	stripper.StripInterfaces("/opt/lib;$<INSTALL_INTERFACE:/usr/local>") // "/opt/lib"
//
// Or use functional options to change the separator or the marker set:
//
//	result, err := stripper.StripWithOptions(
//		stripper.WithString(flags),
//		stripper.WithMarkers("BUILD_INTERFACE", "LINK_ONLY"),
//	)
//
// # Separator Collapsing
//
// Removing a marker never leaves a dangling empty list element: a
// separator immediately preceding the marker is removed with it, and when
// no separator precedes the marker (for example at the start of the
// string), one separator immediately following it is consumed instead.
//
// The whole substitution is a single regular-expression pass; markers
// cannot nest or overlap in valid input, so no iteration is needed.
package stripper

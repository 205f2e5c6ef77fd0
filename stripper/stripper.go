package stripper

import (
	"regexp"
	"strings"
)

// Default marker names recognized by StripInterfaces.
const (
	MarkerBuildInterface   = "BUILD_INTERFACE"
	MarkerInstallInterface = "INSTALL_INTERFACE"
)

// DefaultSeparator is the list separator collapsed around removed markers.
const DefaultSeparator = ";"

// defaultPattern matches the two default markers with their surrounding
// separator, so the common path pays no regexp construction cost.
var defaultPattern = mustBuildPattern(DefaultSeparator, []string{MarkerBuildInterface, MarkerInstallInterface})

// identRegex validates configurable marker names.
var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// StripInterfaces removes every $<BUILD_INTERFACE:payload> and
// $<INSTALL_INTERFACE:payload> occurrence from s, where payload is any run
// of characters excluding '>'. A ';' immediately preceding a marker is
// removed with it; when none precedes, one ';' immediately following the
// marker is consumed instead, so removal never leaves a dangling empty
// list element.
func StripInterfaces(s string) string {
	return defaultPattern.ReplaceAllString(s, "")
}

// buildPattern assembles the single-pass substitution regex for the given
// separator and marker names. The leading-separator alternative comes
// first so a separated marker in mid-list consumes only its own separator.
func buildPattern(separator string, markers []string) (*regexp.Regexp, error) {
	quoted := make([]string, len(markers))
	for i, marker := range markers {
		quoted[i] = regexp.QuoteMeta(marker)
	}
	marker := `\$<(?:` + strings.Join(quoted, "|") + `):[^>]*>`
	sep := regexp.QuoteMeta(separator)
	return regexp.Compile(`(?:` + sep + marker + `|` + marker + sep + `?)`)
}

func mustBuildPattern(separator string, markers []string) *regexp.Regexp {
	re, err := buildPattern(separator, markers)
	if err != nil {
		panic(err)
	}
	return re
}

package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"golang.org/x/text/language"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxInputSize caps the byte length of inline text and file inputs.
	MaxInputSize int

	// CaseLanguage is the default language tag for start_case casing rules.
	CaseLanguage language.Tag
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from STRMANIP_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxInputSize: envInt("STRMANIP_MAX_INPUT_SIZE", 1<<20),
		CaseLanguage: envLanguage("STRMANIP_CASE_LANGUAGE", language.Und),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envLanguage(key string, fallback language.Tag) language.Tag {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	tag, err := language.Parse(v)
	if err != nil {
		slog.Warn("invalid language env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return tag
}

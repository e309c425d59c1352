// ABOUTME: Structured logger construction shared by the store, CLI, and MCP server.
// ABOUTME: Wraps charmbracelet/log with level parsing and a quiet default.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// New returns a logger writing to w at the given level.
// An empty level means DefaultLevel.
func New(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          prefix,
		ReportTimestamp: true,
	}), nil
}

// ParseLevel accepts debug, info, warn, or error (case-insensitive).
func ParseLevel(level string) (log.Level, error) {
	if strings.TrimSpace(level) == "" {
		level = DefaultLevel
	}
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", level, err)
	}
	return lvl, nil
}

// Default returns a stderr logger at DefaultLevel.
func Default(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.WarnLevel,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

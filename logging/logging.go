// Package logging builds the slog loggers used by every quackshot binary.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a logger tagged with the component name.
// format is "json" or "text"; level is debug, info, warn or error.
func New(component, format, level string) *slog.Logger {
	return NewWithWriter(os.Stderr, component, format, level)
}

// NewWithWriter is New with an explicit destination
func NewWithWriter(w io.Writer, component, format, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("component", component)
}

// ParseLevel maps a level name to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Package util provides helper functions for logging events
package util

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel maps a config level name to a slog level. Unknown names fall
// back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// NewLogger builds a logger writing to w. format "json" selects the JSON
// handler; anything else uses the colored console handler.
func NewLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

// SetupLogger installs the process-wide logger on stderr.
func SetupLogger(level, format string) *slog.Logger {
	logger := NewLogger(os.Stderr, ParseLevel(level), format)
	slog.SetDefault(logger)
	slog.Debug("logger initialized", "level", level, "format", format)
	return logger
}

// Error prints error messages.
func Error(msg string, args ...any) {
	slog.Error(fmt.Sprintf(msg, args...))
}

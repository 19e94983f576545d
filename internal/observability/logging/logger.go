// Package logging provides structured logging utilities using the standard
// library's log/slog package, configured consistently across the analytics
// services.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger creates a structured logger with JSON output. The log level is
// controlled via the LOG_LEVEL environment variable (debug, info, warn,
// error; default info).
func NewLogger() *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelWarn,
	})
	return slog.New(handler)
}

// NewTextLogger creates a structured logger with human-readable text output,
// useful for local development.
func NewTextLogger() *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelWarn,
	})
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

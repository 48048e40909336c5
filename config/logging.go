package config

import (
	"io"
	"log/slog"
)

// NewLogger builds the process logger: JSON at info level in production,
// human-readable text otherwise, with debug output in development
func NewLogger(env Environment, w io.Writer) *slog.Logger {
	switch env {
	case Production:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case Development:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// Package logging builds the diagnostic logger.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w.
// Debug records are emitted only when debug is set; otherwise only warnings and errors.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// NewLogger returns a structured slog.Logger with the given level. Every
// record carries a session id so logs from overlapping runs can be told
// apart.
func NewLogger(level slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("session", uuid.NewString())
}

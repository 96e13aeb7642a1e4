// Package logger builds the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
)

// New returns a JSON slog logger writing to w. The dev environment logs
// at Debug, everything else at Info.
func New(w io.Writer, env string) *slog.Logger {
	level := slog.LevelInfo
	if env == "dev" {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

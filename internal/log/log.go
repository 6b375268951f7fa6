// Package log builds the slog logger the CLI uses for its own
// diagnostics. Demo output itself goes through the tprint package; this
// logger only reports on what the tool is doing, to stderr.
package log

import (
	"io"
	"log/slog"
	"os"
)

func NewLogger(cfg Config) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case LevelDebug:
		level = slog.LevelDebug
	case LevelInfo:
		level = slog.LevelInfo
	case LevelWarn:
		level = slog.LevelWarn
	case LevelError:
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	outputWriter := io.Writer(os.Stderr)

	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(outputWriter, opts)
	case FormatText:
		fallthrough
	default:
		handler = slog.NewTextHandler(outputWriter, opts)
	}

	return slog.New(handler)
}

package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options configure the JSON logger built by New.
type Options struct {
	// Writer receives the JSON records. Defaults to os.Stdout.
	Writer io.Writer
	// Level is the textual minimum level: debug, info, warn or error.
	Level string
	// DebugPrompts lowers the level to debug so assembled-prompt records
	// are not dropped when prompt payload logging is enabled.
	DebugPrompts bool
}

// New builds a JSON slog.Logger tagged with the service name.
func New(service string, opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	level := parseLevel(opts.Level)
	if opts.DebugPrompts && level > slog.LevelDebug {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler).With("service", service)
}

// NewJSONLogger is the stdout convenience used by the entrypoints.
func NewJSONLogger(service, level string) *slog.Logger {
	return New(service, Options{Level: level})
}

func parseLevel(level string) slog.Level {
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

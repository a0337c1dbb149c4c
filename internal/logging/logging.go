package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Config holds what is needed to build a logger.
type Config struct {
	Name   string
	Level  string // debug, info, warn, error
	Format string // "text" (default) or "json"
	Output io.Writer
}

// New builds a logger tagged with the component name.
func New(cfg Config) *slog.Logger {
	hopts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(cfg.Output, hopts)
	} else {
		h = slog.NewTextHandler(cfg.Output, hopts)
	}
	logger := slog.New(h)
	if cfg.Name != "" {
		logger = logger.With("component", cfg.Name)
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name to a slog level; unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

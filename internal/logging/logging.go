package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/config"
)

// New builds the service logger and installs it as the slog default
func New(cfg config.LoggingConfig, service string) *slog.Logger {
	return newLogger(os.Stdout, cfg, service)
}

func newLogger(w io.Writer, cfg config.LoggingConfig, service string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler).With("service", service)
	slog.SetDefault(logger)

	return logger
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

// Discard returns a logger that drops everything, for tests
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

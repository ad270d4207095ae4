package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/phsym/console-slog"
)

// InitLogger installs a console handler on stderr as the default logger.
func InitLogger(level slog.Level) *slog.Logger {
	logger := slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// parseLevel maps a log_level config value to a slog level. Empty means info.
func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", name)
	}
}

// Package bootstrap wires up process-wide concerns shared by the CLIs:
// structured logging and environment configuration.
package bootstrap

import (
	"log/slog"
	"os"
	"strings"
)

// Config holds standard configuration for all commands.
type Config struct {
	LogLevel slog.Level
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		LogLevel: parseLogLevel(os.Getenv("LOG_LEVEL")),
	}
}

func parseLogLevel(s string) slog.Level {
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

// NewLogger creates a configured logger instance.
func NewLogger(serviceName string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: LoadConfig().LogLevel}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler).With("service", serviceName)
}

// InitLogger configures the default logger for commands that log through
// the slog package-level functions.
func InitLogger(serviceName string) {
	slog.SetDefault(NewLogger(serviceName))
}

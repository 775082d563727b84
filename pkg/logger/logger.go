package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New constructs the JSON slog logger shared by the server binaries.
func New() *slog.Logger {
	return NewTo(os.Stdout, slog.LevelInfo)
}

// NewTo builds the same logger over w. LOG_LEVEL, when set, overrides fallback.
func NewTo(w io.Writer, fallback slog.Level) *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"), fallback)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("service", serviceName())
}

func serviceName() string {
	if name := strings.TrimSpace(os.Getenv("SERVICE_NAME")); name != "" {
		return name
	}
	return "weather-dashboard"
}

func parseLevel(level string, fallback slog.Level) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}

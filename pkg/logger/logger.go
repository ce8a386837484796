// Package logger configures the process-wide slog logger.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"
)

var Module = fx.Module("logger",
	fx.Provide(
		NewLogger,
		provideHTTPLogger,
	),
)

func provideHTTPLogger(lc fx.Lifecycle, log *slog.Logger) *HTTPLogger {
	l := NewHTTPLogger(log)
	lc.Append(fx.StopHook(l.Close))
	return l
}

// NewLogger builds a logger from LOG_LEVEL and GO_ENV.
// Production uses JSON output, everything else uses text.
func NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(os.Getenv("LOG_LEVEL"))}

	var handler slog.Handler
	if os.Getenv("GO_ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// Scope tags log records with the component that emitted them.
func Scope(scope string) slog.Attr {
	return slog.String("scope", scope)
}

// Error attaches an error under the "error" key.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

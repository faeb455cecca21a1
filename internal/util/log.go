package util

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github/chapool/mobile-wallet/internal/config"
)

type contextKey string

const (
	CTXKeyRequestID contextKey = "request_id"
	CTXKeyLogger    contextKey = "logger"
)

// ConfigureLogger sets the global zerolog level and output according to the
// logger section of the server config.
func ConfigureLogger(cfg config.LoggerServer) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(cfg.Level)

	if cfg.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.TimeFormat = "15:04:05"
			w.Out = os.Stderr
		}))
	}
}

// LogFromContext returns a request-specific zerolog instance using the provided context.
// The returned logger will have the request ID as well as some other value predefined.
// If no logger is associated with the context provided, the global zerolog instance
// will be returned instead - this function will _always_ return a valid (enabled) logger.
// Should you ever need to force a disabled logger for a context, use `zerolog.Nop()` and
// `LogWithContext` to associate it with the context.
func LogFromContext(ctx context.Context) *zerolog.Logger {
	l := log.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		if ShouldDisableLogger(ctx) {
			return l
		}
		l = &log.Logger
	}
	return l
}

// LogWithContext associates the provided logger with the context.
func LogWithContext(ctx context.Context, l zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

type disableLoggerKey struct{}

// DisableLogger marks the context so LogFromContext keeps returning a disabled logger.
func DisableLogger(ctx context.Context, shouldDisable bool) context.Context {
	return context.WithValue(ctx, disableLoggerKey{}, shouldDisable)
}

func ShouldDisableLogger(ctx context.Context) bool {
	s, ok := ctx.Value(disableLoggerKey{}).(bool)
	return ok && s
}

// RequestIDFromContext returns the ID of the (HTTP) request, returning an error if it is not present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CTXKeyRequestID).(string)
	return id, ok && id != ""
}

package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github/chapool/mobile-wallet/internal/util"
)

type LoggerConfig struct {
	Skipper echoMiddleware.Skipper
	Level   zerolog.Level
}

// LoggerWithConfig attaches a request scoped zerolog logger carrying the
// request ID to the request context and logs every finished request.
func LoggerWithConfig(config LoggerConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = echoMiddleware.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			res := c.Response()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = res.Header().Get(echo.HeaderXRequestID)
			}

			l := log.With().
				Str("id", id).
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Logger()

			ctx := context.WithValue(req.Context(), util.CTXKeyRequestID, id)
			ctx = util.LogWithContext(ctx, l)
			c.SetRequest(req.WithContext(ctx))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			l.WithLevel(config.Level).
				Int("status", res.Status).
				Int64("bytes_out", res.Size).
				Dur("duration_ms", time.Since(start)).
				Msg("Request handled")

			return nil
		}
	}
}

package router

import (
	"strings"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/api/handlers"
	"github/chapool/mobile-wallet/internal/api/httperrors"
	"github/chapool/mobile-wallet/internal/api/middleware"
)

func Init(s *api.Server) {
	s.Echo = echo.New()

	s.Echo.Debug = s.Config.Echo.Debug
	s.Echo.HideBanner = true
	s.Echo.HTTPErrorHandler = httperrors.HTTPErrorHandler

	// ---
	// General middleware
	if s.Config.Echo.EnableRecoverMiddleware {
		s.Echo.Use(echoMiddleware.Recover())
	} else {
		log.Warn().Msg("Disabling recover middleware due to environment config")
	}

	if s.Config.Echo.EnableRequestIDMiddleware {
		s.Echo.Use(echoMiddleware.RequestID())
	} else {
		log.Warn().Msg("Disabling request ID middleware due to environment config")
	}

	s.Echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Level: s.Config.Logger.RequestLevel,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Path(), "/-/")
		},
	}))

	s.Router = &api.Router{
		Routes:     nil, // will be populated by handlers.AttachAllRoutes(s)
		Root:       s.Echo.Group(""),
		Management: s.Echo.Group("/-"),
		APIV1:      s.Echo.Group("/api/v1"),
		APIV1Send:  s.Echo.Group("/api/v1/send"),
	}

	handlers.AttachAllRoutes(s)
}

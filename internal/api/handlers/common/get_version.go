package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/config"
)

func GetVersionRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/version", getVersionHandler())
}

func getVersionHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, config.GetFormattedBuildArgs())
	}
}

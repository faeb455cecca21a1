package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mobile-wallet/internal/api"
)

// statusNotReady is the non standard status of the management probes.
const statusNotReady = 521

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// Readiness check
// This endpoint returns 200 when our Service is ready to serve traffic (i.e. respond to queries).
// Does NOT contact the RPC nodes, see /-/healthy for that.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(statusNotReady, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}

package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mobile-wallet/internal/api"
)

func GetReceiveRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1.GET("/receive", getReceiveHandler(s))
}

func getReceiveHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.Receive.View())
	}
}

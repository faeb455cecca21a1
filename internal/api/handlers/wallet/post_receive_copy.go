package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mobile-wallet/internal/api"
)

func PostReceiveCopyRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1.POST("/receive/copy", postReceiveCopyHandler(s))
}

func postReceiveCopyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := s.Receive.Copy(c.Request().Context()); err != nil {
			return err
		}

		return c.JSON(http.StatusOK, s.Receive.View())
	}
}

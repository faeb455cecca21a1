package send

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mobile-wallet/internal/api"
)

func GetSendRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Send.GET("/:id", getSendHandler(s))
}

func getSendHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctrl, err := flowFromParam(s, c)
		if err != nil {
			return err
		}

		return respondView(c, http.StatusOK, ctrl)
	}
}

package send

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mobile-wallet/internal/api"
)

func PostRefreshRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Send.POST("/:id/refresh", postRefreshHandler(s))
}

func postRefreshHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctrl, err := flowFromParam(s, c)
		if err != nil {
			return err
		}

		ctrl.Refresh()

		return respondView(c, http.StatusOK, ctrl)
	}
}

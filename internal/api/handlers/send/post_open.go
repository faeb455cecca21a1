package send

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mobile-wallet/internal/api"
)

func PostOpenRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Send.POST("/:id/open", postOpenHandler(s))
}

// postOpenHandler resets the flow as if it was shown again.
func postOpenHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctrl, err := flowFromParam(s, c)
		if err != nil {
			return err
		}

		ctrl.Open()

		return respondView(c, http.StatusOK, ctrl)
	}
}

package send

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/util"
)

func PostSubmitRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Send.POST("/:id/submit", postSubmitHandler(s))
}

// postSubmitHandler starts the submission and answers 202 with the pending view.
// The outcome is read with GET /api/v1/send/:id.
func postSubmitHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctrl, err := flowFromParam(s, c)
		if err != nil {
			return err
		}

		if err := ctrl.Submit(); err != nil {
			util.LogFromContext(c.Request().Context()).Debug().Err(err).Str("flow_id", ctrl.ID()).Msg("Submit rejected")
			return submitError(err)
		}

		return respondView(c, http.StatusAccepted, ctrl)
	}
}

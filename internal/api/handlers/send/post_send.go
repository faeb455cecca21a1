package send

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/api/httperrors"
	"github/chapool/mobile-wallet/internal/util"
)

const headerAcceptLanguage = "Accept-Language"

func PostSendRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Send.POST("", postSendHandler(s))
}

// postSendHandler creates and opens a send flow for the selected network.
func postSendHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		// the flow outlives the request
		ctrl, err := s.NewFlow(context.WithoutCancel(ctx), c.Request().Header.Get(headerAcceptLanguage))
		if err != nil {
			log.Error().Err(err).Msg("Failed to create send flow")
			return httperrors.ErrServiceUnavailableRPC
		}

		s.Sessions.Add(ctrl)
		ctrl.Open()

		log.Debug().Str("flow_id", ctrl.ID()).Msg("Send flow created")

		return respondView(c, http.StatusCreated, ctrl)
	}
}

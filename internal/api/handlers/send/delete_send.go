package send

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/api/httperrors"
)

func DeleteSendRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Send.DELETE("/:id", deleteSendHandler(s))
}

func deleteSendHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := s.Sessions.Remove(c.Param("id")); err != nil {
			return httperrors.ErrNotFoundSession
		}

		return c.NoContent(http.StatusNoContent)
	}
}

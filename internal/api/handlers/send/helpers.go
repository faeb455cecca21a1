package send

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/api/httperrors"
	sendflow "github/chapool/mobile-wallet/internal/wallet/send"
)

// flowFromParam returns the flow addressed by the :id path parameter.
func flowFromParam(s *api.Server, c echo.Context) (*sendflow.Controller, error) {
	ctrl, err := s.Sessions.Get(c.Param("id"))
	if err != nil {
		return nil, httperrors.ErrNotFoundSession
	}

	return ctrl, nil
}

func respondView(c echo.Context, status int, ctrl *sendflow.Controller) error {
	return c.JSON(status, ctrl.View())
}

// submitError maps controller submit errors to HTTP errors.
func submitError(err error) error {
	switch {
	case errors.Is(err, sendflow.ErrClosed):
		return httperrors.ErrGoneFlowClosed
	case errors.Is(err, sendflow.ErrSubmitNotAllowed):
		return httperrors.NewHTTPErrorWithDetail(http.StatusConflict, httperrors.PublicHTTPErrorTypeSUBMITNOTALLOWED,
			"The transfer cannot be submitted in the current state.", err.Error())
	default:
		return err
	}
}

package send

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/api/httperrors"
)

// PutAmountPayload carries the amount as typed, e.g. "1.5".
type PutAmountPayload struct {
	Amount *string `json:"amount"`
}

func PutAmountRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Send.PUT("/:id/amount", putAmountHandler(s))
}

func putAmountHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctrl, err := flowFromParam(s, c)
		if err != nil {
			return err
		}

		var body PutAmountPayload
		if err := c.Bind(&body); err != nil || body.Amount == nil {
			return httperrors.ErrBadRequestBody
		}

		ctrl.SetAmount(swag.StringValue(body.Amount))

		return respondView(c, http.StatusOK, ctrl)
	}
}

package send

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/api/httperrors"
)

type PutRecipientPayload struct {
	Recipient *string `json:"recipient"`
}

func PutRecipientRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Send.PUT("/:id/recipient", putRecipientHandler(s))
}

func putRecipientHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctrl, err := flowFromParam(s, c)
		if err != nil {
			return err
		}

		var body PutRecipientPayload
		if err := c.Bind(&body); err != nil || body.Recipient == nil {
			return httperrors.ErrBadRequestBody
		}

		ctrl.SetRecipient(swag.StringValue(body.Recipient))

		return respondView(c, http.StatusOK, ctrl)
	}
}

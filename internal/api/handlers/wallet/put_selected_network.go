package wallet

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/api/httperrors"
	"github/chapool/mobile-wallet/internal/util"
	"github/chapool/mobile-wallet/internal/wallet/chain"
)

func PutSelectedNetworkRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1.PUT("/networks/selected", putSelectedNetworkHandler(s))
}

// putSelectedNetworkHandler switches the network used by new send flows and the token list.
func putSelectedNetworkHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body PutSelectedNetworkPayload
		if err := c.Bind(&body); err != nil || swag.StringValue(body.Name) == "" {
			return httperrors.ErrBadRequestBody
		}

		if err := s.Networks.Select(swag.StringValue(body.Name)); err != nil {
			switch {
			case errors.Is(err, chain.ErrUnknownNetwork):
				return httperrors.ErrNotFoundNetwork
			case errors.Is(err, chain.ErrUnsupportedNetwork):
				return httperrors.ErrBadRequestNetwork
			default:
				return err
			}
		}

		selected := s.Networks.Selected()
		util.LogFromContext(c.Request().Context()).Info().Str("network", selected.Name).Msg("Network selected")

		return c.JSON(http.StatusOK, networkToItem(selected, selected))
	}
}

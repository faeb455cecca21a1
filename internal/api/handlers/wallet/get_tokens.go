package wallet

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/api/httperrors"
	"github/chapool/mobile-wallet/internal/util"
)

func GetTokensRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1.GET("/tokens", getTokensHandler(s))
}

func getTokensHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		rows, err := s.TokenRows(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Failed to list tokens")
			return httperrors.ErrServiceUnavailableRPC
		}

		items := make([]*TokenItem, 0, len(rows))
		for _, row := range rows {
			item := &TokenItem{
				Symbol:   swag.String(row.Token.Symbol),
				Name:     swag.String(row.Token.Name),
				ChainID:  swag.Int64(row.Token.ChainID),
				Address:  swag.String(row.Token.Address),
				Decimals: swag.Int64(int64(row.Token.Decimals)),
			}
			if row.Token.Icon != "" {
				item.Icon = swag.String(row.Token.Icon)
			}
			if row.Token.Value != "" {
				item.Value = swag.String(row.Token.Value)
			}
			if row.Err != nil {
				item.Error = swag.String(row.Err.Error())
			} else {
				item.Balance = swag.String(row.Balance)
			}
			items = append(items, item)
		}

		return c.JSON(http.StatusOK, &GetTokensResponse{
			ChainID: swag.Int64(s.Networks.Selected().ChainID),
			Tokens:  items,
		})
	}
}

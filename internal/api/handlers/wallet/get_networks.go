package wallet

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/wallet/chain"
)

func GetNetworksRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1.GET("/networks", getNetworksHandler(s))
}

func getNetworksHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		selected := s.Networks.Selected()

		networks := s.Chains.ListChains()
		items := make([]*NetworkItem, 0, len(networks))
		for _, n := range networks {
			items = append(items, networkToItem(n, selected))
		}

		return c.JSON(http.StatusOK, &GetNetworksResponse{Networks: items})
	}
}

func networkToItem(n *chain.Network, selected *chain.Network) *NetworkItem {
	item := &NetworkItem{
		Name:         swag.String(n.Name),
		DisplayName:  swag.String(n.DisplayName),
		ChainType:    swag.String(n.ChainType),
		NativeSymbol: swag.String(n.NativeSymbol),
		Active:       swag.Bool(n.IsActive()),
		Selected:     swag.Bool(selected != nil && selected.Name == n.Name),
		SponsorGas:   swag.Bool(n.SponsorGas),
	}
	if n.ChainType == chain.ChainTypeEVM {
		item.ChainID = swag.Int64(n.ChainID)
	}

	return item
}

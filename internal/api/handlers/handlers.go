package handlers

import (
	"github.com/labstack/echo/v4"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/api/handlers/common"
	"github/chapool/mobile-wallet/internal/api/handlers/send"
	"github/chapool/mobile-wallet/internal/api/handlers/wallet"
)

func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetMetricsRoute(s),
		common.GetReadyRoute(s),
		common.GetVersionRoute(s),
		send.DeleteSendRoute(s),
		send.GetSendRoute(s),
		send.PostOpenRoute(s),
		send.PostRefreshRoute(s),
		send.PostSendRoute(s),
		send.PostSubmitRoute(s),
		send.PutAmountRoute(s),
		send.PutRecipientRoute(s),
		wallet.GetNetworksRoute(s),
		wallet.GetReceiveRoute(s),
		wallet.GetTokensRoute(s),
		wallet.PostReceiveCopyRoute(s),
		wallet.PutSelectedNetworkRoute(s),
	}
}

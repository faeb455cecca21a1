//go:build wireinject

package api

import (
	"github.com/google/wire"
	"github/chapool/mobile-wallet/internal/config"
	"github/chapool/mobile-wallet/internal/metrics"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	NewI18N,
	metrics.New,
	NewChains,
	NewNetworkSelector,
	NewTokenRegistry,
	NewAccount,
	NewSigner,
	NewReceiveScreen,
	NewSessions,
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet, NewRPCBackends)
	return new(Server), nil
}

// InitNewServerWithBackends returns a new Server instance using the given chain backends.
// All the other components are initialized via go wire according to the configuration.
func InitNewServerWithBackends(
	_ config.Server,
	_ Backends,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}

package chain_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mobile-wallet/internal/config"
	"github/chapool/mobile-wallet/internal/wallet/chain"
)

func newTestService() chain.Service {
	return chain.NewService(config.RPCServer{
		Sonic:       "https://rpc.soniclabs.com, https://backup.example ,",
		BaseSepolia: "https://sepolia.base.org",
	})
}

func TestListChainsOrder(t *testing.T) {
	svc := newTestService()

	names := make([]string, 0)
	for _, n := range svc.ListChains() {
		names = append(names, n.DisplayName)
	}

	assert.Equal(t, []string{"Sonic", "Solana", "Base", "Ethereum"}, names)
}

func TestGetActiveChains(t *testing.T) {
	active := newTestService().GetActiveChains()

	require.Len(t, active, 2)
	assert.Equal(t, chain.NetworkSonic, active[0].Name)
	assert.Equal(t, chain.NetworkBaseSepolia, active[1].Name)
	assert.Equal(t, []string{"https://rpc.soniclabs.com", "https://backup.example"}, active[0].RPCURLs)
}

func TestGetChain(t *testing.T) {
	svc := newTestService()

	sonic, err := svc.GetChain(146)
	require.NoError(t, err)
	assert.Equal(t, "S", sonic.NativeSymbol)

	_, err = svc.GetChain(999)
	assert.True(t, errors.Is(err, chain.ErrUnknownNetwork))

	base, err := svc.GetChainByName("BASE-SEPOLIA")
	require.NoError(t, err)
	assert.True(t, base.SponsorGas)
}

func TestParseRPCURLs(t *testing.T) {
	svc := newTestService()

	assert.Nil(t, svc.ParseRPCURLs(""))
	assert.Equal(t, []string{"a", "b"}, svc.ParseRPCURLs(" a ,, b"))
}

func TestSelector(t *testing.T) {
	sel, err := chain.NewSelector(newTestService(), chain.NetworkSonic)
	require.NoError(t, err)
	assert.Equal(t, int64(146), sel.Selected().ChainID)

	require.NoError(t, sel.Select(chain.NetworkBaseSepolia))
	assert.Equal(t, int64(84532), sel.Selected().ChainID)

	err = sel.Select(chain.NetworkSolana)
	assert.True(t, errors.Is(err, chain.ErrUnsupportedNetwork))

	err = sel.Select(chain.NetworkEthereum)
	assert.True(t, errors.Is(err, chain.ErrUnsupportedNetwork), "ethereum has no RPC configured")

	err = sel.Select("dogechain")
	assert.True(t, errors.Is(err, chain.ErrUnknownNetwork))
	assert.Equal(t, chain.NetworkBaseSepolia, sel.Selected().Name)
}

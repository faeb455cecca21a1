package balance_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mobile-wallet/internal/wallet/balance"
	"github/chapool/mobile-wallet/internal/wallet/token"
)

const (
	owner = "0x1111111111111111111111111111111111111111"
	usdc  = "0x29219dd400f2Bf60E5a23d13Be72B486D4038894"
)

type fakeBackend struct {
	native    *big.Int
	tokens    map[common.Address]*big.Int
	err       error
	lastOwner common.Address
}

func (f *fakeBackend) BalanceAt(_ context.Context, address common.Address) (*big.Int, error) {
	f.lastOwner = address
	return f.native, f.err
}

func (f *fakeBackend) TokenBalance(_ context.Context, tokenAddress, account common.Address) (*big.Int, error) {
	f.lastOwner = account
	return f.tokens[tokenAddress], f.err
}

func newRegistry() *token.Registry {
	return token.NewRegistry([]*token.Token{
		{Symbol: "S", Name: "Sonic", ChainID: 146, Address: token.NativeAddress, Decimals: 18},
		{Symbol: "USDC.e", Name: "Bridged USDC", ChainID: 146, Address: usdc, Decimals: 6},
	})
}

func TestFetchNativeBalance(t *testing.T) {
	tenS, _ := new(big.Int).SetString("10000000000000000000", 10)
	backend := &fakeBackend{native: tenS}
	provider := balance.NewRPCProvider(backend, newRegistry(), 146)

	snap, err := provider.FetchBalance(t.Context(), owner, token.NativeAddress)
	require.NoError(t, err)
	assert.Equal(t, &balance.Snapshot{DisplayValue: "10", Symbol: "S"}, snap)
	assert.Equal(t, common.HexToAddress(owner), backend.lastOwner)
}

func TestFetchTokenBalance(t *testing.T) {
	backend := &fakeBackend{tokens: map[common.Address]*big.Int{
		common.HexToAddress(usdc): big.NewInt(1_234_500),
	}}
	provider := balance.NewRPCProvider(backend, newRegistry(), 146)

	snap, err := provider.FetchBalance(t.Context(), owner, usdc)
	require.NoError(t, err)
	assert.Equal(t, "1.2345", snap.DisplayValue)
	assert.Equal(t, "USDC.e", snap.Symbol)
}

func TestFetchBalanceErrors(t *testing.T) {
	provider := balance.NewRPCProvider(&fakeBackend{err: errors.New("rpc down")}, newRegistry(), 146)

	_, err := provider.FetchBalance(t.Context(), "nope", token.NativeAddress)
	assert.True(t, errors.Is(err, balance.ErrInvalidAddress))

	_, err = provider.FetchBalance(t.Context(), owner, "0x2222222222222222222222222222222222222222")
	assert.True(t, errors.Is(err, token.ErrTokenNotFound))

	_, err = provider.FetchBalance(t.Context(), owner, token.NativeAddress)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rpc down")
}

package test

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github/chapool/mobile-wallet/internal/api"
)

// FakeChain is an in-memory chain backend. Balances are in base units.
type FakeChain struct {
	mu sync.Mutex

	ID            int64
	Balances      map[common.Address]*big.Int
	TokenBalances map[common.Address]map[common.Address]*big.Int
	Gas           uint64
	BaseFee       *big.Int
	TipCap        *big.Int
	// Err is returned by every call when set.
	Err     error
	SendErr error

	Sent []*types.Transaction
}

func NewFakeChain(chainID int64) *FakeChain {
	return &FakeChain{
		ID:            chainID,
		Balances:      make(map[common.Address]*big.Int),
		TokenBalances: make(map[common.Address]map[common.Address]*big.Int),
		Gas:           21000,
		BaseFee:       big.NewInt(1_000_000_000),
		TipCap:        big.NewInt(1_000_000),
	}
}

func (f *FakeChain) SetBalance(address common.Address, wei *big.Int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Balances[address] = wei
}

func (f *FakeChain) SetErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Err = err
}

func (f *FakeChain) SentTransactions() []*types.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*types.Transaction(nil), f.Sent...)
}

func (f *FakeChain) ChainID(context.Context) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return big.NewInt(f.ID), nil
}

func (f *FakeChain) BalanceAt(_ context.Context, address common.Address) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	if b, ok := f.Balances[address]; ok {
		return new(big.Int).Set(b), nil
	}
	return big.NewInt(0), nil
}

func (f *FakeChain) TokenBalance(_ context.Context, tokenAddress, account common.Address) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	if b, ok := f.TokenBalances[tokenAddress][account]; ok {
		return new(big.Int).Set(b), nil
	}
	return big.NewInt(0), nil
}

func (f *FakeChain) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return 0, f.Err
	}
	return f.Gas, nil
}

func (f *FakeChain) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return 0, f.Err
	}
	return uint64(len(f.Sent)), nil
}

func (f *FakeChain) SuggestGasTipCap(context.Context) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return new(big.Int).Set(f.TipCap), nil
}

func (f *FakeChain) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return &types.Header{BaseFee: f.BaseFee}, nil
}

func (f *FakeChain) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	if f.SendErr != nil {
		return f.SendErr
	}
	f.Sent = append(f.Sent, tx)
	return nil
}

// FakeBackends serves FakeChains by chain ID.
type FakeBackends struct {
	Chains map[int64]*FakeChain
	Closed bool
}

func NewFakeBackends(chains ...*FakeChain) *FakeBackends {
	b := &FakeBackends{Chains: make(map[int64]*FakeChain)}
	for _, c := range chains {
		b.Chains[c.ID] = c
	}
	return b
}

//nolint:ireturn
func (b *FakeBackends) Backend(chainID int64) (api.ChainBackend, error) {
	c, ok := b.Chains[chainID]
	if !ok {
		return nil, errors.Errorf("no fake chain %d", chainID)
	}
	return c, nil
}

func (b *FakeBackends) Close() {
	b.Closed = true
}

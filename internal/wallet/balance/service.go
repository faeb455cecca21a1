//nolint:ireturn // 返回接口类型是预期的设计
package balance

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github/chapool/mobile-wallet/internal/wallet/token"
	"github/chapool/mobile-wallet/internal/wallet/units"
)

// rpcProvider 基于 RPC 的余额查询实现
type rpcProvider struct {
	backend  Backend
	registry *token.Registry
	chainID  int64
}

// NewRPCProvider 创建余额服务
//
//nolint:ireturn // 返回接口类型是预期的设计
func NewRPCProvider(backend Backend, registry *token.Registry, chainID int64) Provider {
	return &rpcProvider{
		backend:  backend,
		registry: registry,
		chainID:  chainID,
	}
}

// FetchBalance 查询余额并按代币精度转换为十进制字符串
func (p *rpcProvider) FetchBalance(ctx context.Context, address string, tokenID string) (*Snapshot, error) {
	if !common.IsHexAddress(address) {
		return nil, errors.Wrapf(ErrInvalidAddress, "address=%q", address)
	}
	account := common.HexToAddress(address)

	tok, err := p.registry.Lookup(p.chainID, tokenID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve token")
	}

	var raw *big.Int
	if tok.IsNative() {
		raw, err = p.backend.BalanceAt(ctx, account)
	} else {
		raw, err = p.backend.TokenBalance(ctx, tok.ContractAddress(), account)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %s balance", tok.Symbol)
	}

	return &Snapshot{
		DisplayValue: units.FromBaseUnits(raw, tok.Decimals).String(),
		Symbol:       tok.Symbol,
	}, nil
}

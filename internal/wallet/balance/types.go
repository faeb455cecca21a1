package balance

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

var ErrInvalidAddress = errors.New("invalid account address")

// Snapshot 余额快照（人类可读的十进制字符串 + 代币符号）
type Snapshot struct {
	DisplayValue string
	Symbol       string
}

// Provider 余额查询接口
type Provider interface {
	// FetchBalance 查询 address 持有的 tokenID 余额；tokenID 为原生代币占位地址时查询原生余额
	FetchBalance(ctx context.Context, address string, tokenID string) (*Snapshot, error)
}

// Backend 余额查询所需的链上接口（由 rpcclient.Client 实现）
type Backend interface {
	BalanceAt(ctx context.Context, address common.Address) (*big.Int, error)
	TokenBalance(ctx context.Context, tokenAddress, account common.Address) (*big.Int, error)
}

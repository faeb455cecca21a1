package transfer

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

var ErrChainMismatch = errors.New("chain id mismatch")

// Receipt 已广播交易的回执
type Receipt struct {
	TxHash  string
	ChainID int64
	Nonce   uint64
}

// Submitter 转账提交接口
type Submitter interface {
	// SubmitTransfer 向 recipient 转账 amount（人类可读单位），广播成功后返回
	SubmitTransfer(ctx context.Context, recipient string, amount string, chainID int64) (*Receipt, error)
}

// Backend 构建并广播交易所需的链上接口（由 rpcclient.Client 实现）
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, address common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

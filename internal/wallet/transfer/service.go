//nolint:ireturn
package transfer

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/mobile-wallet/internal/wallet/gas"
	"github/chapool/mobile-wallet/internal/wallet/signer"
	"github/chapool/mobile-wallet/internal/wallet/token"
)

const (
	defaultERC20GasLimit = 100000
	defaultETHGasLimit   = 21000
	eip1559FeeMultiplier = 2
)

type service struct {
	backend       Backend
	signerService signer.Service
	from          common.Address
	token         *token.Token
}

// NewService 创建转账服务
//
//nolint:ireturn // 返回接口类型是预期的设计
func NewService(backend Backend, signerService signer.Service, from common.Address, tok *token.Token) Submitter {
	return &service{
		backend:       backend,
		signerService: signerService,
		from:          from,
		token:         tok,
	}
}

// SubmitTransfer 构建、签名并广播转账交易
func (s *service) SubmitTransfer(ctx context.Context, recipient string, amount string, chainID int64) (*Receipt, error) {
	// 1. 校验链 ID（请求、代币配置、节点三者一致）
	if chainID != s.token.ChainID {
		return nil, errors.Wrapf(ErrChainMismatch, "token is on chain %d, requested %d", s.token.ChainID, chainID)
	}

	nodeChainID, err := s.backend.ChainID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get chain id")
	}
	if nodeChainID.Int64() != chainID {
		return nil, errors.Wrapf(ErrChainMismatch, "node is on chain %s, requested %d", nodeChainID, chainID)
	}

	// 2. 构建调用消息（原生转账或 ERC20 transfer）
	msg, err := gas.CallMsg(s.from, s.token, recipient, amount)
	if err != nil {
		return nil, err
	}

	// 3. 获取 Nonce
	nonce, err := s.backend.PendingNonceAt(ctx, s.from)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get nonce")
	}

	// 4. 计算 EIP-1559 费用：MaxFee = BaseFee * 2 + TipCap
	tipCap, err := s.backend.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest gas tip cap")
	}

	header, err := s.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get latest header")
	}
	if header.BaseFee == nil {
		return nil, errors.New("chain does not support EIP-1559 (baseFee is nil)")
	}
	maxFee := new(big.Int).Add(new(big.Int).Mul(header.BaseFee, big.NewInt(eip1559FeeMultiplier)), tipCap)

	// 5. 估算 Gas，失败时使用默认值
	gasLimit, err := s.backend.EstimateGas(ctx, msg)
	if err != nil {
		gasLimit = defaultETHGasLimit
		if !s.token.IsNative() {
			gasLimit = defaultERC20GasLimit
		}
		log.Warn().
			Err(err).
			Uint64("gas_limit", gasLimit).
			Msg("Gas estimation failed, using default gas limit")
	}

	value := msg.Value
	if value == nil {
		value = big.NewInt(0)
	}

	// 6. 签名
	signResp, err := s.signerService.SignEVMTransaction(ctx, &signer.SignEVMRequest{
		ChainID:              chainID,
		To:                   msg.To.Hex(),
		Value:                value.String(),
		GasLimit:             gasLimit,
		MaxFeePerGas:         maxFee.String(),
		MaxPriorityFeePerGas: tipCap.String(),
		Nonce:                nonce,
		Data:                 msg.Data,
		FromAddress:          s.from.Hex(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign transaction")
	}

	// 7. 广播
	txObj := new(types.Transaction)
	if err := txObj.UnmarshalBinary(signResp.RawTransaction); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal signed transaction")
	}

	if err := s.backend.SendTransaction(ctx, txObj); err != nil {
		return nil, errors.Wrap(err, "failed to broadcast transaction")
	}

	log.Info().
		Str("tx_hash", signResp.TxHash).
		Int64("chain_id", chainID).
		Uint64("nonce", nonce).
		Str("symbol", s.token.Symbol).
		Msg("Transfer broadcasted")

	return &Receipt{
		TxHash:  signResp.TxHash,
		ChainID: chainID,
		Nonce:   nonce,
	}, nil
}

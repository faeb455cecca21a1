// Package gas estimates the gas a transfer will consume.
package gas

import (
	"context"
	"strconv"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github/chapool/mobile-wallet/internal/wallet/rpcclient"
	"github/chapool/mobile-wallet/internal/wallet/token"
	"github/chapool/mobile-wallet/internal/wallet/units"
)

var ErrInvalidRecipient = errors.New("invalid recipient address")

// Estimator estimates the gas units of a transfer of amount to recipient.
type Estimator interface {
	EstimateGas(ctx context.Context, recipient string, amount string) (string, error)
}

// Backend is the chain access the RPC estimator needs; implemented by rpcclient.Client.
type Backend interface {
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
}

// RPCEstimator estimates transfers of one token sent from one account.
type RPCEstimator struct {
	backend Backend
	from    common.Address
	token   *token.Token
}

func NewRPCEstimator(backend Backend, from common.Address, tok *token.Token) *RPCEstimator {
	return &RPCEstimator{backend: backend, from: from, token: tok}
}

func (e *RPCEstimator) EstimateGas(ctx context.Context, recipient string, amount string) (string, error) {
	msg, err := CallMsg(e.from, e.token, recipient, amount)
	if err != nil {
		return "", err
	}

	gas, err := e.backend.EstimateGas(ctx, msg)
	if err != nil {
		return "", errors.Wrap(err, "failed to estimate gas")
	}

	return strconv.FormatUint(gas, 10), nil
}

// CallMsg builds the call message of a transfer: a plain value transfer for
// the native token, an ERC20 transfer call otherwise.
func CallMsg(from common.Address, tok *token.Token, recipient string, amount string) (ethereum.CallMsg, error) {
	if !common.IsHexAddress(recipient) {
		return ethereum.CallMsg{}, errors.Wrapf(ErrInvalidRecipient, "recipient=%q", recipient)
	}
	to := common.HexToAddress(recipient)

	parsed, err := units.ParseAmount(amount)
	if err != nil {
		return ethereum.CallMsg{}, err
	}
	value, err := units.ToBaseUnits(parsed, tok.Decimals)
	if err != nil {
		return ethereum.CallMsg{}, err
	}

	if tok.IsNative() {
		return ethereum.CallMsg{From: from, To: &to, Value: value}, nil
	}

	contract := tok.ContractAddress()
	return ethereum.CallMsg{
		From: from,
		To:   &contract,
		Data: rpcclient.TransferCallData(to, value),
	}, nil
}

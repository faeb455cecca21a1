package signer

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

const base10 = 10

// signEIP1559Transaction builds a DynamicFeeTx from req and signs it with key.
// The from address of req must be the address of key.
func (s *service) signEIP1559Transaction(_ context.Context, req *SignEVMRequest, key *ecdsa.PrivateKey) (*SignEVMResponse, error) {
	if !common.IsHexAddress(req.To) {
		return nil, errors.Errorf("invalid to address %q", req.To)
	}
	toAddress := common.HexToAddress(req.To)

	if crypto.PubkeyToAddress(key.PublicKey) != common.HexToAddress(req.FromAddress) {
		return nil, errors.New("from address does not match private key")
	}

	value, err := parseWei("value", req.Value)
	if err != nil {
		return nil, err
	}
	gasFeeCap, err := parseWei("maxFeePerGas", req.MaxFeePerGas)
	if err != nil {
		return nil, err
	}
	gasTipCap, err := parseWei("maxPriorityFeePerGas", req.MaxPriorityFeePerGas)
	if err != nil {
		return nil, err
	}
	if gasTipCap.Cmp(gasFeeCap) > 0 {
		return nil, errors.New("maxPriorityFeePerGas exceeds maxFeePerGas")
	}

	chainID := big.NewInt(req.ChainID)

	//nolint:varnamelen // tx is a common abbreviation for transaction
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     req.Nonce,
		GasTipCap: gasTipCap,
		GasFeeCap: gasFeeCap,
		Gas:       req.GasLimit,
		To:        &toAddress,
		Value:     value,
		Data:      req.Data,
	})

	signedTx, err := types.SignTx(tx, types.NewLondonSigner(chainID), key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign transaction")
	}

	// Encode transaction to its typed envelope
	raw, err := signedTx.MarshalBinary()
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal transaction")
	}

	return &SignEVMResponse{
		RawTransaction: raw,
		TxHash:         signedTx.Hash().Hex(),
	}, nil
}

func parseWei(field string, raw string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(raw, base10)
	if !ok || v.Sign() < 0 {
		return nil, errors.Errorf("invalid %s format", field)
	}
	return v, nil
}

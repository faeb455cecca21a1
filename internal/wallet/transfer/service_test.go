package transfer_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mobile-wallet/internal/wallet/account"
	"github/chapool/mobile-wallet/internal/wallet/signer"
	"github/chapool/mobile-wallet/internal/wallet/token"
	"github/chapool/mobile-wallet/internal/wallet/transfer"
)

const recipient = "0x2222222222222222222222222222222222222222"

type fakeChain struct {
	chainID     int64
	nonce       uint64
	tip         *big.Int
	baseFee     *big.Int
	gas         uint64
	estimateErr error
	sendErr     error
	sent        []*types.Transaction
}

func (f *fakeChain) ChainID(context.Context) (*big.Int, error) {
	return big.NewInt(f.chainID), nil
}

func (f *fakeChain) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return f.nonce, nil
}

func (f *fakeChain) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return f.tip, nil
}

func (f *fakeChain) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	return &types.Header{BaseFee: f.baseFee}, nil
}

func (f *fakeChain) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return f.gas, f.estimateErr
}

func (f *fakeChain) SendTransaction(_ context.Context, tx *types.Transaction) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, tx)
	return nil
}

func newChain() *fakeChain {
	return &fakeChain{
		chainID: 146,
		nonce:   3,
		tip:     big.NewInt(1_000_000_000),
		baseFee: big.NewInt(50_000_000_000),
		gas:     21000,
	}
}

func newSubmitter(t *testing.T, backend transfer.Backend, tok *token.Token) (transfer.Submitter, *account.Account) {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	acc := account.FromPrivateKey(key)

	signerService, err := signer.NewService(acc, true)
	require.NoError(t, err)

	return transfer.NewService(backend, signerService, acc.Address, tok), acc
}

var native = &token.Token{Symbol: "S", ChainID: 146, Address: token.NativeAddress, Decimals: 18}

func TestSubmitNativeTransfer(t *testing.T) {
	chain := newChain()
	submitter, acc := newSubmitter(t, chain, native)

	receipt, err := submitter.SubmitTransfer(t.Context(), recipient, "5", 146)
	require.NoError(t, err)

	require.Len(t, chain.sent, 1)
	tx := chain.sent[0]
	assert.Equal(t, tx.Hash().Hex(), receipt.TxHash)
	assert.Equal(t, int64(146), receipt.ChainID)
	assert.Equal(t, uint64(3), tx.Nonce())
	assert.Equal(t, "5000000000000000000", tx.Value().String())
	assert.Equal(t, common.HexToAddress(recipient), *tx.To())
	assert.Equal(t, uint64(21000), tx.Gas())
	assert.Equal(t, "101000000000", tx.GasFeeCap().String())
	assert.Equal(t, "1000000000", tx.GasTipCap().String())

	sender, err := types.Sender(types.NewLondonSigner(big.NewInt(146)), tx)
	require.NoError(t, err)
	assert.Equal(t, acc.Address, sender)
}

func TestSubmitTokenTransferFallsBackToDefaultGas(t *testing.T) {
	chain := newChain()
	chain.estimateErr = errors.New("estimation unavailable")
	usdc := &token.Token{Symbol: "USDC.e", ChainID: 146, Address: "0x29219dd400f2Bf60E5a23d13Be72B486D4038894", Decimals: 6}
	submitter, _ := newSubmitter(t, chain, usdc)

	_, err := submitter.SubmitTransfer(t.Context(), recipient, "1.5", 146)
	require.NoError(t, err)

	tx := chain.sent[0]
	assert.Equal(t, uint64(100000), tx.Gas())
	assert.Equal(t, usdc.ContractAddress(), *tx.To())
	assert.Equal(t, "0", tx.Value().String())
	assert.Len(t, tx.Data(), 68)
}

func TestSubmitTransferErrors(t *testing.T) {
	chain := newChain()
	submitter, _ := newSubmitter(t, chain, native)

	_, err := submitter.SubmitTransfer(t.Context(), recipient, "1", 84532)
	assert.True(t, errors.Is(err, transfer.ErrChainMismatch))

	chain.chainID = 1
	_, err = submitter.SubmitTransfer(t.Context(), recipient, "1", 146)
	assert.True(t, errors.Is(err, transfer.ErrChainMismatch))

	chain.chainID = 146
	chain.baseFee = nil
	_, err = submitter.SubmitTransfer(t.Context(), recipient, "1", 146)
	assert.ErrorContains(t, err, "EIP-1559")

	chain.baseFee = big.NewInt(1)
	chain.sendErr = errors.New("nonce too low")
	_, err = submitter.SubmitTransfer(t.Context(), recipient, "1", 146)
	assert.ErrorContains(t, err, "nonce too low")
	assert.Empty(t, chain.sent)
}

package rpcclient_test

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mobile-wallet/internal/wallet/rpcclient"
)

func TestNewRequiresURL(t *testing.T) {
	_, err := rpcclient.New(nil)
	require.Error(t, err)
}

func TestBalanceOfCallData(t *testing.T) {
	account := common.HexToAddress("0x00000000000000000000000000000000000000aa")

	data := rpcclient.BalanceOfCallData(account)

	require.Len(t, data, 36)
	assert.Equal(t, "70a08231", hex.EncodeToString(data[:4]))
	assert.Equal(t, byte(0xaa), data[35])
}

func TestTransferCallData(t *testing.T) {
	to := common.HexToAddress("0x00000000000000000000000000000000000000bb")

	data := rpcclient.TransferCallData(to, big.NewInt(258))

	require.Len(t, data, 68)
	assert.Equal(t, "a9059cbb", hex.EncodeToString(data[:4]))
	assert.Equal(t, byte(0xbb), data[35])
	assert.Equal(t, []byte{0x01, 0x02}, data[66:])
}

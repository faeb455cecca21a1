package account_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mobile-wallet/internal/wallet/account"
)

func writeKeystore(t *testing.T, passphrase string) (string, *keystore.Key) {
	t.Helper()

	pk, err := crypto.GenerateKey()
	require.NoError(t, err)

	key := &keystore.Key{
		Id:         uuid.New(),
		Address:    crypto.PubkeyToAddress(pk.PublicKey),
		PrivateKey: pk,
	}
	data, err := keystore.EncryptKey(key, passphrase, keystore.LightScryptN, keystore.LightScryptP)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "key.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path, key
}

func TestLoadKeystore(t *testing.T) {
	path, key := writeKeystore(t, "correct horse")

	acc, err := account.LoadKeystore(path, "correct horse")
	require.NoError(t, err)
	assert.Equal(t, key.Address, acc.Address)
	assert.True(t, acc.CanSign())

	pk, err := acc.PrivateKey()
	require.NoError(t, err)
	assert.Equal(t, key.PrivateKey.D, pk.D)
}

func TestLoadKeystoreWrongPassphrase(t *testing.T) {
	path, _ := writeKeystore(t, "correct horse")

	_, err := account.LoadKeystore(path, "battery staple")
	require.Error(t, err)

	_, err = account.LoadKeystore(filepath.Join(t.TempDir(), "missing.json"), "x")
	require.Error(t, err)
}

func TestWatchOnly(t *testing.T) {
	acc, err := account.WatchOnly("0x1111111111111111111111111111111111111111")
	require.NoError(t, err)
	assert.False(t, acc.CanSign())

	_, err = acc.PrivateKey()
	assert.Equal(t, account.ErrWatchOnly, err)

	_, err = account.WatchOnly("sonic-wallet")
	assert.True(t, errors.Is(err, account.ErrInvalidAddress))
}

package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

const KeystorePassphrase = "test passphrase"

// WriteKeystore writes a freshly generated key as keystore JSON into a
// temporary directory and returns its path and address.
func WriteKeystore(t *testing.T) (string, common.Address) {
	t.Helper()

	pk, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	key := &keystore.Key{
		Id:         uuid.New(),
		Address:    crypto.PubkeyToAddress(pk.PublicKey),
		PrivateKey: pk,
	}
	data, err := keystore.EncryptKey(key, KeystorePassphrase, keystore.LightScryptN, keystore.LightScryptP)
	if err != nil {
		t.Fatalf("failed to encrypt key: %v", err)
	}

	path := filepath.Join(t.TempDir(), "keystore.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write keystore: %v", err)
	}

	return path, key.Address
}

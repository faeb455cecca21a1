// Package account holds the locally connected wallet account.
package account

import (
	"crypto/ecdsa"
	"os"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

var (
	ErrInvalidAddress = errors.New("invalid account address")
	ErrWatchOnly      = errors.New("account is watch-only")
)

// Account is an address plus, unless watch-only, the key controlling it.
type Account struct {
	Address common.Address
	key     *ecdsa.PrivateKey
}

// LoadKeystore decrypts a go-ethereum keystore v3 JSON file.
func LoadKeystore(path string, passphrase string) (*Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read keystore %s", path)
	}

	key, err := keystore.DecryptKey(data, passphrase)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt keystore")
	}

	return &Account{Address: key.Address, key: key.PrivateKey}, nil
}

// FromPrivateKey wraps an in-memory key.
func FromPrivateKey(key *ecdsa.PrivateKey) *Account {
	return &Account{Address: crypto.PubkeyToAddress(key.PublicKey), key: key}
}

// WatchOnly returns an account that can show balances but never sign.
func WatchOnly(address string) (*Account, error) {
	if !common.IsHexAddress(address) {
		return nil, errors.Wrapf(ErrInvalidAddress, "address=%q", address)
	}

	return &Account{Address: common.HexToAddress(address)}, nil
}

func (a *Account) CanSign() bool {
	return a.key != nil
}

// PrivateKey returns the signing key or ErrWatchOnly.
func (a *Account) PrivateKey() (*ecdsa.PrivateKey, error) {
	if a.key == nil {
		return nil, ErrWatchOnly
	}
	return a.key, nil
}

func (a *Account) Hex() string {
	return a.Address.Hex()
}

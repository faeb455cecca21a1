package api

import (
	"github.com/pkg/errors"
	"github/chapool/mobile-wallet/internal/config"
	"github/chapool/mobile-wallet/internal/i18n"
	"github/chapool/mobile-wallet/internal/wallet/account"
	"github/chapool/mobile-wallet/internal/wallet/chain"
	"github/chapool/mobile-wallet/internal/wallet/receive"
	"github/chapool/mobile-wallet/internal/wallet/rpcclient"
	"github/chapool/mobile-wallet/internal/wallet/signer"
	"github/chapool/mobile-wallet/internal/wallet/token"
)

// PROVIDERS - https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

func NewI18N(cfg config.Server) (*i18n.Service, error) {
	return i18n.New(cfg.I18n.DefaultLanguage)
}

//nolint:ireturn
func NewChains(cfg config.Server) chain.Service {
	return chain.NewService(cfg.RPC)
}

func NewNetworkSelector(cfg config.Server, chains chain.Service) (*chain.Selector, error) {
	return chain.NewSelector(chains, cfg.Wallet.Network)
}

// NewTokenRegistry loads the token list file if configured and falls back to
// the native tokens of all active networks.
func NewTokenRegistry(cfg config.Server, chains chain.Service) (*token.Registry, error) {
	if cfg.Wallet.TokenListPath == "" {
		return token.DefaultRegistry(chains.GetActiveChains()), nil
	}

	return token.LoadRegistry(cfg.Wallet.TokenListPath, chains.GetActiveChains())
}

// NewAccount loads the keystore if configured, otherwise a watch-only account.
func NewAccount(cfg config.Server) (*account.Account, error) {
	if cfg.Wallet.KeystorePath != "" {
		return account.LoadKeystore(cfg.Wallet.KeystorePath, cfg.Wallet.KeystorePassphrase)
	}
	if cfg.Wallet.AccountAddress == "" {
		return nil, errors.New("either WALLET_WALLET_KEYSTORE_PATH or WALLET_WALLET_ACCOUNT_ADDRESS is required")
	}

	return account.WatchOnly(cfg.Wallet.AccountAddress)
}

//nolint:ireturn
func NewSigner(cfg config.Server, acc *account.Account) (signer.Service, error) {
	return signer.NewService(acc, cfg.Wallet.EnableSigning)
}

//nolint:ireturn
func NewRPCBackends(chains chain.Service) Backends {
	return &rpcBackends{pool: rpcclient.NewPool(chains)}
}

func NewSessions(cfg config.Server) *SessionStore {
	return NewSessionStore(cfg.Wallet.SessionIdleTimeout)
}

func NewReceiveScreen(cfg config.Server, acc *account.Account) *receive.Screen {
	return receive.New(acc.Hex(), &receive.MemoryClipboard{}, cfg.Wallet.CopyResetAfter)
}

type rpcBackends struct {
	pool *rpcclient.Pool
}

//nolint:ireturn
func (b *rpcBackends) Backend(chainID int64) (ChainBackend, error) {
	client, err := b.pool.Client(chainID)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (b *rpcBackends) Close() {
	b.pool.Close()
}

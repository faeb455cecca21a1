package test

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/api/router"
	"github/chapool/mobile-wallet/internal/config"
)

// SonicChainID is the chain the test server selects by default.
const SonicChainID = 146

// Fixture is what WithTestServer hands to its closure besides the server.
type Fixture struct {
	Chain   *FakeChain
	Account common.Address
}

// NewTestConfig returns the default config with a freshly written keystore
// and short timeouts.
func NewTestConfig(t *testing.T) (config.Server, common.Address) {
	t.Helper()

	cfg := config.DefaultServiceConfigFromEnv()
	path, address := WriteKeystore(t)

	cfg.Wallet.Network = "sonic"
	cfg.Wallet.KeystorePath = path
	cfg.Wallet.KeystorePassphrase = KeystorePassphrase
	cfg.Wallet.TokenListPath = ""
	cfg.Wallet.EnableSigning = true
	cfg.Wallet.BalanceTimeout = time.Second
	cfg.Wallet.GasTimeout = time.Second
	cfg.Wallet.CopyResetAfter = 50 * time.Millisecond
	cfg.I18n.DefaultLanguage = "en"

	return cfg, address
}

// WithTestServer runs closure against a fully routed server whose Sonic
// backend is a FakeChain holding 10 S for the account.
func WithTestServer(t *testing.T, closure func(s *api.Server, f *Fixture)) {
	t.Helper()

	cfg, address := NewTestConfig(t)

	fake := NewFakeChain(SonicChainID)
	fake.SetBalance(address, new(big.Int).Mul(big.NewInt(10), big.NewInt(1e18)))

	WithTestServerConfigurable(t, cfg, NewFakeBackends(fake), func(s *api.Server) {
		closure(s, &Fixture{Chain: fake, Account: address})
	})
}

func WithTestServerConfigurable(t *testing.T, cfg config.Server, backends api.Backends, closure func(s *api.Server)) {
	t.Helper()

	s, err := api.InitNewServerWithBackends(cfg, backends)
	if err != nil {
		t.Fatalf("failed to init server: %v", err)
	}

	router.Init(s)

	closure(s)

	// echo is not started; Shutdown closes flows and backends.
	if errs := s.Shutdown(t.Context()); len(errs) > 0 {
		t.Fatalf("failed to shutdown server: %v", errs)
	}
}

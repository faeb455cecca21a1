package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github/chapool/mobile-wallet/internal/config"
	"github/chapool/mobile-wallet/internal/i18n"
	"github/chapool/mobile-wallet/internal/metrics"
	"github/chapool/mobile-wallet/internal/util"
	"github/chapool/mobile-wallet/internal/wallet/account"
	"github/chapool/mobile-wallet/internal/wallet/balance"
	"github/chapool/mobile-wallet/internal/wallet/chain"
	"github/chapool/mobile-wallet/internal/wallet/gas"
	"github/chapool/mobile-wallet/internal/wallet/receive"
	"github/chapool/mobile-wallet/internal/wallet/signer"
	"github/chapool/mobile-wallet/internal/wallet/token"
	"github/chapool/mobile-wallet/internal/wallet/transfer"
)

// ChainBackend is the chain access of one network, implemented by rpcclient.Client.
type ChainBackend interface {
	balance.Backend
	gas.Backend
	transfer.Backend
}

// Backends hands out the ChainBackend of a network.
type Backends interface {
	Backend(chainID int64) (ChainBackend, error)
	Close()
}

type Router struct {
	Routes     []*echo.Route
	Root       *echo.Group
	Management *echo.Group
	APIV1Send  *echo.Group
	APIV1      *echo.Group
}

// Server is a central struct keeping all the dependencies.
// It is initialized with wire, which handles making the new instances of the components
// in the right order. To add a new component, 3 steps are required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be initialized after the InitNewServer* call.
// For more information about wire refer to https://pkg.go.dev/github.com/google/wire
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config   config.Server
	I18n     *i18n.Service
	Metrics  *metrics.Service
	Chains   chain.Service
	Networks *chain.Selector
	Tokens   *token.Registry
	Account  *account.Account
	Signer   signer.Service
	Backends Backends
	Receive  *receive.Screen
	Sessions *SessionStore
}

// newServerWithComponents is used by wire to initialize the server components.
// Components not listed here won't be handled by wire and should be initialized separately.
// Components which shouldn't be handled must be labeled `wire:"-"` in Server struct.
func newServerWithComponents(
	cfg config.Server,
	i18n *i18n.Service,
	metrics *metrics.Service,
	chains chain.Service,
	networks *chain.Selector,
	tokens *token.Registry,
	acc *account.Account,
	signerService signer.Service,
	backends Backends,
	receiveScreen *receive.Screen,
	sessions *SessionStore,
) *Server {
	return &Server{
		Config:   cfg,
		I18n:     i18n,
		Metrics:  metrics,
		Chains:   chains,
		Networks: networks,
		Tokens:   tokens,
		Account:  acc,
		Signer:   signerService,
		Backends: backends,
		Receive:  receiveScreen,
		Sessions: sessions,
	}
}

func NewServer(config config.Server) *Server {
	s := &Server{
		Config: config,
	}

	return s
}

func (s *Server) Ready() bool {
	if err := util.IsStructInitialized(s); err != nil {
		log.Debug().Err(err).Msg("Server is not fully initialized")
		return false
	}

	return true
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	s.Sessions.StartSweeping(sessionSweepInterval(s.Config.Wallet.SessionIdleTimeout))

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	if s.Sessions != nil {
		log.Debug().Msg("Closing send flows")
		s.Sessions.CloseAll()
	}

	if s.Receive != nil {
		s.Receive.Close()
	}

	if s.Backends != nil {
		log.Debug().Msg("Closing RPC clients")
		s.Backends.Close()
	}

	return errs
}

func sessionSweepInterval(idleTimeout time.Duration) time.Duration {
	const minInterval = time.Second
	if interval := idleTimeout / 4; interval > minInterval {
		return interval
	}
	return minInterval
}

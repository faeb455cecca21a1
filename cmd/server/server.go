package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/api/router"
	"github/chapool/mobile-wallet/internal/config"
	"github/chapool/mobile-wallet/internal/util"
)

const defaultShutdownTimeout = 30 * time.Second

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Starts the server",
		Long: `Starts the stateless RESTful JSON server

Requires configuration through ENV and
an unlocked keystore or a watch-only account address.`,
		Run: func(_ *cobra.Command, _ []string) {
			runServer()
		},
	}
}

func runServer() {
	cfg := config.DefaultServiceConfigFromEnv()
	util.ConfigureLogger(cfg.Logger)

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	router.Init(s)

	log.Info().
		Str("network", s.Networks.Selected().Name).
		Str("account", s.Account.Hex()).
		Bool("can_sign", s.Account.CanSign()).
		Msg("Wallet initialized")

	go func() {
		if err := s.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info().Msg("Server closed")
			} else {
				log.Fatal().Err(err).Msg("Failed to start server")
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	if errs := s.Shutdown(ctx); len(errs) > 0 {
		log.Fatal().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
	}
}

package command

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/config"
	"github/chapool/mobile-wallet/internal/util"
)

const (
	defaultShutdownTimeout = 30 * time.Second
)

// WithServer initializes a server from cfg, runs fn and shuts the server down again.
// Commands use it to get the same wiring as the HTTP server without serving HTTP.
func WithServer(ctx context.Context, cfg config.Server, fn func(ctx context.Context, s *api.Server) error) error {
	util.ConfigureLogger(cfg.Logger)

	s, err := api.InitNewServer(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to initialize server")
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultShutdownTimeout)
		defer cancel()

		if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
			log.Error().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
		}
	}()

	return fn(ctx, s)
}

// NewSubcommandGroup returns a command that only groups the given subcommands.
func NewSubcommandGroup(name string, subCommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: "Subcommands for " + name,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(subCommands...)

	return cmd
}

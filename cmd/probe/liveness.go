package probe

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/config"
	"github/chapool/mobile-wallet/internal/util/command"
)

func newLiveness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Runs liveness probes",
		Long: `This command runs the liveness probes: it checks that the
configuration loads and every component of the server can be initialized.
Does not contact the RPC nodes.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				return errors.Wrapf(err, "failed to parse args")
			}

			return runLiveness(cmd.Context(), verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func runLiveness(ctx context.Context, verbose bool) error {
	cfg := config.DefaultServiceConfigFromEnv()

	return command.WithServer(ctx, cfg, func(_ context.Context, s *api.Server) error {
		if !s.Ready() {
			return errors.New("server is not ready")
		}

		if verbose {
			fmt.Printf("Account %s on %s: OK\n", s.Account.Hex(), s.Networks.Selected().Name)
		}

		return nil
	})
}

package probe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/api/handlers/common"
	"github/chapool/mobile-wallet/internal/config"
	"github/chapool/mobile-wallet/internal/util/command"
)

const readinessTimeout = 10 * time.Second

func newReadiness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs readiness probes",
		Long:  `This command runs the readiness probes: the RPC node of the selected network must answer with its chain ID.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				return errors.Wrapf(err, "failed to parse args")
			}

			return runReadiness(cmd.Context(), verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func runReadiness(ctx context.Context, verbose bool) error {
	cfg := config.DefaultServiceConfigFromEnv()

	return command.WithServer(ctx, cfg, func(ctx context.Context, s *api.Server) error {
		ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
		defer cancel()

		str, errs := common.ProbeRPC(ctx, s)
		if verbose {
			fmt.Println(strings.Join(str, "\n"))
		}
		if len(errs) > 0 {
			return errors.Wrap(errs[0], "readiness probe failed")
		}

		return nil
	})
}

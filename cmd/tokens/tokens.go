package tokens

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/config"
	"github/chapool/mobile-wallet/internal/util/command"
)

const networkFlag = "network"

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Lists the tokens of the account with their balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			network, err := cmd.Flags().GetString(networkFlag)
			if err != nil {
				return errors.Wrap(err, "failed to parse args")
			}

			return runTokens(cmd.Context(), network)
		},
	}

	cmd.Flags().StringP(networkFlag, "n", "", "Network to list, defaults to WALLET_WALLET_NETWORK.")

	return cmd
}

func runTokens(ctx context.Context, network string) error {
	cfg := config.DefaultServiceConfigFromEnv()
	if network != "" {
		cfg.Wallet.Network = network
	}

	return command.WithServer(ctx, cfg, func(ctx context.Context, s *api.Server) error {
		rows, err := s.TokenRows(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("%s on %s\n\n", s.Account.Hex(), s.Networks.Selected().DisplayName)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SYMBOL\tNAME\tBALANCE\tVALUE")
		for _, row := range rows {
			balance := row.Balance
			if row.Err != nil {
				balance = "unavailable"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.Token.Symbol, row.Token.Name, balance, row.Token.Value)
		}

		return w.Flush()
	})
}

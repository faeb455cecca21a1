package networks

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/config"
	"github/chapool/mobile-wallet/internal/util/command"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "Lists the known networks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNetworks(cmd.Context())
		},
	}
}

func runNetworks(ctx context.Context) error {
	cfg := config.DefaultServiceConfigFromEnv()

	return command.WithServer(ctx, cfg, func(_ context.Context, s *api.Server) error {
		selected := s.Networks.Selected()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "\tNAME\tCHAIN ID\tNATIVE\tTRANSFERS")
		for _, n := range s.Chains.ListChains() {
			marker := ""
			if n.Name == selected.Name {
				marker = "*"
			}
			transfers := "no"
			if n.IsActive() {
				transfers = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", marker, n.DisplayName, n.ChainID, n.NativeSymbol, transfers)
		}

		return w.Flush()
	})
}

package env

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/mobile-wallet/internal/config"
)

const redacted = "<redacted>"

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Prints the env",
		Long: `Prints the currently applied env

Secrets are redacted.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runEnv()
		},
	}
}

func runEnv() error {
	cfg := config.DefaultServiceConfigFromEnv()
	if cfg.Wallet.KeystorePassphrase != "" {
		cfg.Wallet.KeystorePassphrase = redacted
	}

	c, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal the env")
	}

	fmt.Println(string(c))

	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/mobile-wallet/cmd/env"
	"github/chapool/mobile-wallet/cmd/networks"
	"github/chapool/mobile-wallet/cmd/probe"
	"github/chapool/mobile-wallet/cmd/send"
	"github/chapool/mobile-wallet/cmd/server"
	"github/chapool/mobile-wallet/cmd/tokens"
	"github/chapool/mobile-wallet/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "app",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

A mobile wallet backend: balances, token list and a send-funds flow
for EVM networks, served as a RESTful JSON API or used from the terminal.
Requires configuration through ENV.`, config.ModuleName),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// attach the subcommands
	rootCmd.AddCommand(
		env.New(),
		networks.New(),
		probe.New(),
		send.New(),
		server.New(),
		tokens.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}

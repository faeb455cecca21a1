package send

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/config"
	"github/chapool/mobile-wallet/internal/util/command"
	sendflow "github/chapool/mobile-wallet/internal/wallet/send"
	"golang.org/x/term"
)

const (
	toFlag      = "to"
	amountFlag  = "amount"
	networkFlag = "network"
	yesFlag     = "yes"
)

type options struct {
	to      string
	amount  string
	network string
	yes     bool
}

func New() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Sends the native token of a network",
		Long: `Runs the send flow in the terminal.

Missing recipient and amount are prompted for. The keystore passphrase is
prompted for when WALLET_WALLET_KEYSTORE_PASSPHRASE is not set.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSend(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.to, toFlag, "", "Recipient address.")
	cmd.Flags().StringVar(&opts.amount, amountFlag, "", "Amount, e.g. 1.5")
	cmd.Flags().StringVarP(&opts.network, networkFlag, "n", "", "Network to send on, defaults to WALLET_WALLET_NETWORK.")
	cmd.Flags().BoolVarP(&opts.yes, yesFlag, "y", false, "Submit without asking for confirmation.")

	return cmd
}

func runSend(ctx context.Context, opts options, in io.Reader, out io.Writer) error {
	cfg := config.DefaultServiceConfigFromEnv()
	if opts.network != "" {
		cfg.Wallet.Network = opts.network
	}

	if cfg.Wallet.KeystorePath != "" && cfg.Wallet.KeystorePassphrase == "" {
		passphrase, err := readPassphrase(out)
		if err != nil {
			return err
		}
		cfg.Wallet.KeystorePassphrase = passphrase
	}

	reader := bufio.NewReader(in)

	return command.WithServer(ctx, cfg, func(ctx context.Context, s *api.Server) error {
		ctrl, err := s.NewFlow(ctx, os.Getenv("LANG"))
		if err != nil {
			return err
		}
		defer ctrl.Close()

		ctrl.Open()
		ctrl.Wait()

		v := ctrl.View()
		if v.Balance == "" {
			return errors.Wrap(sendflow.ErrBalanceUnavailable, v.AmountError)
		}
		fmt.Fprintf(out, "Balance: %s %s\n", v.Balance, v.Symbol)

		to := opts.to
		if to == "" {
			if to, err = prompt(reader, out, "Recipient: "); err != nil {
				return err
			}
		}
		ctrl.SetRecipient(to)

		amount := opts.amount
		if amount == "" {
			if amount, err = prompt(reader, out, "Amount: "); err != nil {
				return err
			}
		}
		ctrl.SetAmount(amount)
		ctrl.Wait()

		v = ctrl.View()
		if !v.CanSubmit {
			msg := v.RecipientError
			if msg == "" {
				msg = v.AmountError
			}
			if msg == "" {
				msg = "recipient and amount are required"
			}
			return errors.Wrap(sendflow.ErrInput, msg)
		}

		fmt.Fprintf(out, "Send %s %s to %s", v.Amount, v.Symbol, v.Recipient)
		if v.GasEstimate != "" {
			fmt.Fprintf(out, " (estimated gas %s)", v.GasEstimate)
		}
		fmt.Fprintln(out)

		if !opts.yes {
			answer, err := prompt(reader, out, "Submit? [y/N] ")
			if err != nil {
				return err
			}
			if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		if err := ctrl.Submit(); err != nil {
			return err
		}
		ctrl.Wait()

		v = ctrl.View()
		if v.Status != sendflow.StatusSucceeded {
			return errors.Wrap(sendflow.ErrSubmission, v.FailureReason)
		}

		fmt.Fprintf(out, "Submitted: %s\n", v.TxHash)

		return nil
	})
}

func prompt(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)

	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "failed to read input")
	}

	return strings.TrimSpace(line), nil
}

func readPassphrase(out io.Writer) (string, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec // file descriptors fit into int
	if !term.IsTerminal(fd) {
		return "", errors.New("keystore passphrase required: set WALLET_WALLET_KEYSTORE_PASSPHRASE or run in a terminal")
	}

	fmt.Fprint(out, "Keystore passphrase: ")
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", errors.Wrap(err, "failed to read passphrase")
	}

	return string(passphrase), nil
}

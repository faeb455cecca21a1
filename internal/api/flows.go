package api

import (
	"context"

	"github.com/pkg/errors"
	"github/chapool/mobile-wallet/internal/util"
	"github/chapool/mobile-wallet/internal/wallet/balance"
	"github/chapool/mobile-wallet/internal/wallet/gas"
	"github/chapool/mobile-wallet/internal/wallet/send"
	"github/chapool/mobile-wallet/internal/wallet/tokenlist"
	"github/chapool/mobile-wallet/internal/wallet/transfer"
)

// NewFlow builds a send flow for the native token of the selected network.
// The flow is not opened yet. langs are the language preferences used for
// its messages, typically the Accept-Language header.
func (s *Server) NewFlow(ctx context.Context, langs ...string) (*send.Controller, error) {
	network := s.Networks.Selected()

	tok, err := s.Tokens.Native(network.ChainID)
	if err != nil {
		return nil, err
	}

	backend, err := s.Backends.Backend(network.ChainID)
	if err != nil {
		return nil, err
	}

	cfg := send.Config{
		Account:        s.Account.Hex(),
		TokenID:        tok.Address,
		Symbol:         tok.Symbol,
		ChainID:        network.ChainID,
		Decimals:       tok.Decimals,
		BalanceTimeout: s.Config.Wallet.BalanceTimeout,
		GasTimeout:     s.Config.Wallet.GasTimeout,
	}

	deps := send.Deps{
		Balances:   balance.NewRPCProvider(backend, s.Tokens, network.ChainID),
		Gas:        gas.NewRPCEstimator(backend, s.Account.Address, tok),
		Submitter:  transfer.NewService(backend, s.Signer, s.Account.Address, tok),
		Translator: s.I18n.Localizer(langs...),
	}

	ctrl, err := send.New(ctx, cfg, deps,
		send.WithMetrics(s.Metrics),
		send.WithOnClose(func(receipt *transfer.Receipt) {
			util.LogFromContext(ctx).Info().
				Str("tx_hash", receipt.TxHash).
				Int64("chain_id", receipt.ChainID).
				Msg("Send flow completed")
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create send flow")
	}

	return ctrl, nil
}

// TokenRows lists the tokens of the selected network with the account's balances.
func (s *Server) TokenRows(ctx context.Context) ([]*tokenlist.Row, error) {
	network := s.Networks.Selected()

	backend, err := s.Backends.Backend(network.ChainID)
	if err != nil {
		return nil, err
	}

	service := tokenlist.NewService(s.Tokens, balance.NewRPCProvider(backend, s.Tokens, network.ChainID))

	return service.ListRows(ctx, network.ChainID, s.Account.Hex()), nil
}

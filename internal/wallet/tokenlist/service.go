package tokenlist

import (
	"context"

	"github.com/rs/zerolog/log"
	"github/chapool/mobile-wallet/internal/wallet/balance"
	"github/chapool/mobile-wallet/internal/wallet/token"
	"github/chapool/mobile-wallet/internal/wallet/units"
	"golang.org/x/sync/errgroup"
)

const (
	// displayPlaces 列表中余额保留的小数位
	displayPlaces = 4
	// maxConcurrentFetches 并发查询余额的上限
	maxConcurrentFetches = 4
)

// Row 代币列表中的一行
type Row struct {
	Token   *token.Token
	Balance string
	Err     error
}

// Service 代币列表服务
type Service struct {
	registry *token.Registry
	balances balance.Provider
}

func NewService(registry *token.Registry, balances balance.Provider) *Service {
	return &Service{registry: registry, balances: balances}
}

// ListRows 并发查询 owner 在 chainID 上所有代币的余额；单个代币失败不影响其他行
func (s *Service) ListRows(ctx context.Context, chainID int64, owner string) []*Row {
	tokens := s.registry.ForChain(chainID)
	rows := make([]*Row, len(tokens))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for i, tok := range tokens {
		rows[i] = &Row{Token: tok}
		row := rows[i]

		g.Go(func() error {
			snap, err := s.balances.FetchBalance(gctx, owner, tok.Address)
			if err != nil {
				log.Warn().
					Err(err).
					Str("symbol", tok.Symbol).
					Int64("chain_id", chainID).
					Msg("Failed to fetch token balance for list")
				row.Err = err
				return nil
			}

			amount, err := units.ParseAmount(snap.DisplayValue)
			if err != nil {
				row.Err = err
				return nil
			}
			row.Balance = units.FormatFixed(amount, displayPlaces)
			return nil
		})
	}

	_ = g.Wait()

	return rows
}

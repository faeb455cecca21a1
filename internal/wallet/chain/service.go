package chain

import (
	"strings"

	"github.com/pkg/errors"
	"github/chapool/mobile-wallet/internal/config"
)

// service 实现 Service 接口
type service struct {
	networks []*Network
}

// NewService 创建链配置服务
//
//nolint:ireturn
func NewService(cfg config.RPCServer) Service {
	s := &service{}
	s.networks = []*Network{
		{
			Name:           NetworkSonic,
			DisplayName:    "Sonic",
			ChainID:        146,
			ChainType:      ChainTypeEVM,
			NativeSymbol:   "S",
			NativeName:     "Sonic",
			NativeDecimals: 18,
			RPCURLs:        s.ParseRPCURLs(cfg.Sonic),
		},
		{
			Name:           NetworkSolana,
			DisplayName:    "Solana",
			ChainType:      ChainTypeSolana,
			NativeSymbol:   "SOL",
			NativeName:     "Solana",
			NativeDecimals: 9,
		},
		{
			Name:           NetworkBaseSepolia,
			DisplayName:    "Base",
			ChainID:        84532,
			ChainType:      ChainTypeEVM,
			NativeSymbol:   "ETH",
			NativeName:     "Ether",
			NativeDecimals: 18,
			RPCURLs:        s.ParseRPCURLs(cfg.BaseSepolia),
			SponsorGas:     true,
		},
		{
			Name:           NetworkEthereum,
			DisplayName:    "Ethereum",
			ChainID:        1,
			ChainType:      ChainTypeEVM,
			NativeSymbol:   "ETH",
			NativeName:     "Ether",
			NativeDecimals: 18,
			RPCURLs:        s.ParseRPCURLs(cfg.Ethereum),
		},
	}

	return s
}

// GetChain 根据 chain_id 查询链配置
func (s *service) GetChain(chainID int64) (*Network, error) {
	for _, n := range s.networks {
		if n.ChainType == ChainTypeEVM && n.ChainID == chainID {
			return n, nil
		}
	}

	return nil, errors.Wrapf(ErrUnknownNetwork, "chain_id=%d", chainID)
}

// GetChainByName 根据名称查询链配置（忽略大小写）
func (s *service) GetChainByName(name string) (*Network, error) {
	for _, n := range s.networks {
		if strings.EqualFold(n.Name, name) {
			return n, nil
		}
	}

	return nil, errors.Wrapf(ErrUnknownNetwork, "name=%s", name)
}

// ListChains 查询所有链配置
func (s *service) ListChains() []*Network {
	out := make([]*Network, len(s.networks))
	copy(out, s.networks)
	return out
}

// GetActiveChains 查询可用于转账的链配置
func (s *service) GetActiveChains() []*Network {
	var out []*Network
	for _, n := range s.networks {
		if n.IsActive() {
			out = append(out, n)
		}
	}

	return out
}

// ParseRPCURLs 解析 RPC URL（支持多个，逗号分隔）
func (s *service) ParseRPCURLs(rpcURL string) []string {
	if rpcURL == "" {
		return nil
	}

	urls := strings.Split(rpcURL, ",")
	result := make([]string, 0, len(urls))

	for _, url := range urls {
		url = strings.TrimSpace(url)
		if url != "" {
			result = append(result, url)
		}
	}

	return result
}

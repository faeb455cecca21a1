package chain

import "github.com/pkg/errors"

const (
	ChainTypeEVM    = "evm"
	ChainTypeSolana = "solana"
)

// 已知网络名称
const (
	NetworkSonic       = "sonic"
	NetworkSolana      = "solana"
	NetworkBaseSepolia = "base-sepolia"
	NetworkEthereum    = "ethereum"
)

var (
	ErrUnknownNetwork     = errors.New("unknown network")
	ErrUnsupportedNetwork = errors.New("network does not support transfers")
)

// Network 网络配置
type Network struct {
	Name           string
	DisplayName    string
	ChainID        int64
	ChainType      string
	NativeSymbol   string
	NativeName     string
	NativeDecimals int32
	RPCURLs        []string
	// SponsorGas 智能账户由 paymaster 代付 gas
	SponsorGas bool
}

// IsActive 是否可以发起转账（EVM 且配置了 RPC）
func (n *Network) IsActive() bool {
	return n.ChainType == ChainTypeEVM && len(n.RPCURLs) > 0
}

// Service 定义链配置服务接口
type Service interface {
	// GetChain 根据 chain_id 查询链配置
	GetChain(chainID int64) (*Network, error)

	// GetChainByName 根据名称查询链配置
	GetChainByName(name string) (*Network, error)

	// ListChains 查询所有链配置（首页网络列表顺序）
	ListChains() []*Network

	// GetActiveChains 查询可用于转账的链配置
	GetActiveChains() []*Network

	// ParseRPCURLs 解析 RPC URL（支持多个，逗号分隔）
	ParseRPCURLs(rpcURL string) []string
}

package rpcclient

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	balanceOfMethodID = common.Hex2Bytes("70a08231")
	transferMethodID  = common.Hex2Bytes("a9059cbb")
)

const abiPaddedAddressLength = 32

// Client 封装以太坊 RPC 客户端，支持多个 URL 和故障转移
type Client struct {
	urls    []string
	dial    func(url string) (*ethclient.Client, error)
	mu      sync.Mutex
	clients []*ethclient.Client
	current int // 当前使用的客户端索引
}

// New 创建新的 RPC 客户端
func New(urls []string) (*Client, error) {
	if len(urls) == 0 {
		return nil, errors.New("at least one RPC URL is required")
	}

	c := &Client{
		urls:    urls,
		dial:    ethclient.Dial,
		clients: make([]*ethclient.Client, len(urls)),
	}

	connected := 0
	for i, url := range urls {
		client, err := c.dial(url)
		if err != nil {
			log.Warn().
				Str("url", url).
				Err(err).
				Msg("Failed to connect to RPC node, will retry on use")
			// 继续尝试其他 URL，不立即失败
			continue
		}
		c.clients[i] = client
		connected++
	}

	if connected == 0 {
		return nil, errors.New("failed to connect to any RPC node")
	}

	return c, nil
}

// Close 关闭所有客户端连接
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, client := range c.clients {
		if client != nil {
			client.Close()
			c.clients[i] = nil
		}
	}
}

// ChainID 获取链 ID
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get RPC client")
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get chain ID")
	}

	return chainID, nil
}

// HeaderByNumber 获取区块头，number 为 nil 时返回最新区块头
func (c *Client) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get RPC client")
	}

	header, err := client.HeaderByNumber(ctx, number)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get header")
	}

	return header, nil
}

// SendTransaction 发送已签名的交易
func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	client, err := c.getClient(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get RPC client")
	}

	if err := client.SendTransaction(ctx, tx); err != nil {
		return errors.Wrap(err, "failed to send transaction")
	}

	return nil
}

// SuggestGasTipCap 建议 Gas 小费上限 (EIP-1559)
func (c *Client) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get RPC client")
	}

	tipCap, err := client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest gas tip cap")
	}

	return tipCap, nil
}

// EstimateGas 估算 Gas 用量
func (c *Client) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get RPC client")
	}

	gas, err := client.EstimateGas(ctx, msg)
	if err != nil {
		return 0, errors.Wrap(err, "failed to estimate gas")
	}

	return gas, nil
}

// BalanceAt returns the balance of an address at the latest known block.
func (c *Client) BalanceAt(ctx context.Context, address common.Address) (*big.Int, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get RPC client")
	}

	balance, err := client.BalanceAt(ctx, address, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get balance")
	}

	return balance, nil
}

// PendingNonceAt returns the pending nonce for the given address.
func (c *Client) PendingNonceAt(ctx context.Context, address common.Address) (uint64, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get RPC client")
	}

	nonce, err := client.PendingNonceAt(ctx, address)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get pending nonce")
	}

	return nonce, nil
}

// TokenBalance returns the ERC20 token balance for the given account.
func (c *Client) TokenBalance(ctx context.Context, tokenAddress, account common.Address) (*big.Int, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get RPC client")
	}

	callMsg := ethereum.CallMsg{
		To:   &tokenAddress,
		Data: BalanceOfCallData(account),
	}

	resp, err := client.CallContract(ctx, callMsg, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call balanceOf")
	}

	return new(big.Int).SetBytes(resp), nil
}

// BalanceOfCallData ABI 编码 balanceOf(address)
func BalanceOfCallData(account common.Address) []byte {
	data := make([]byte, 0, len(balanceOfMethodID)+abiPaddedAddressLength)
	data = append(data, balanceOfMethodID...)
	data = append(data, common.LeftPadBytes(account.Bytes(), abiPaddedAddressLength)...)
	return data
}

// TransferCallData ABI 编码 transfer(address,uint256)
func TransferCallData(to common.Address, amount *big.Int) []byte {
	data := make([]byte, 0, len(transferMethodID)+2*abiPaddedAddressLength)
	data = append(data, transferMethodID...)
	data = append(data, common.LeftPadBytes(to.Bytes(), abiPaddedAddressLength)...)
	data = append(data, common.BigToHash(amount).Bytes()...)
	return data
}

// getClient 获取当前可用的客户端，如果失败则尝试下一个
func (c *Client) getClient(ctx context.Context) (*ethclient.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 尝试从当前索引开始
	for i := 0; i < len(c.clients); i++ {
		idx := (c.current + i) % len(c.clients)

		if c.clients[idx] == nil {
			// 尝试重新连接
			client, err := c.dial(c.urls[idx])
			if err != nil {
				continue
			}
			c.clients[idx] = client
		}

		// 简单健康检查：尝试获取链 ID
		if _, err := c.clients[idx].ChainID(ctx); err != nil {
			log.Warn().
				Str("url", c.urls[idx]).
				Err(err).
				Msg("RPC client health check failed, trying next node")
			c.clients[idx].Close()
			c.clients[idx] = nil
			continue
		}

		c.current = idx
		return c.clients[idx], nil
	}

	return nil, errors.New("all RPC clients are unavailable")
}

package rpcclient

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/mobile-wallet/internal/wallet/chain"
)

// Pool 按链缓存 RPC 客户端，首次使用时连接
type Pool struct {
	chains  chain.Service
	connect func(urls []string) (*Client, error)

	mu      sync.Mutex
	clients map[int64]*Client
}

func NewPool(chains chain.Service) *Pool {
	return &Pool{
		chains:  chains,
		connect: New,
		clients: make(map[int64]*Client),
	}
}

// Client 返回 chainID 对应的客户端
func (p *Pool) Client(chainID int64) (*Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if client, ok := p.clients[chainID]; ok {
		return client, nil
	}

	network, err := p.chains.GetChain(chainID)
	if err != nil {
		return nil, err
	}
	if !network.IsActive() {
		return nil, errors.Wrapf(chain.ErrUnsupportedNetwork, "chain_id=%d", chainID)
	}

	client, err := p.connect(network.RPCURLs)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", network.Name)
	}

	log.Debug().
		Int64("chain_id", chainID).
		Int("rpc_urls", len(network.RPCURLs)).
		Msg("Connected RPC client")

	p.clients[chainID] = client

	return client, nil
}

// Close 关闭所有已建立的客户端
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for chainID, client := range p.clients {
		client.Close()
		delete(p.clients, chainID)
	}
}

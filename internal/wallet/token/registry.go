package token

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github/chapool/mobile-wallet/internal/wallet/chain"
)

var ErrTokenNotFound = errors.New("token not found")

type registryFile struct {
	Tokens []*Token `toml:"tokens"`
}

// Registry 代币列表（按链区分）
type Registry struct {
	tokens []*Token
}

// NewRegistry 创建代币列表
func NewRegistry(tokens []*Token) *Registry {
	return &Registry{tokens: tokens}
}

// DefaultRegistry 仅包含各可用网络原生代币的默认列表
func DefaultRegistry(networks []*chain.Network) *Registry {
	tokens := make([]*Token, 0, len(networks))
	for _, n := range networks {
		tokens = append(tokens, &Token{
			Symbol:   n.NativeSymbol,
			Name:     n.NativeName,
			ChainID:  n.ChainID,
			Address:  NativeAddress,
			Decimals: n.NativeDecimals,
		})
	}

	return NewRegistry(tokens)
}

// LoadRegistry 从 TOML 文件加载代币列表；path 为空时使用默认列表
func LoadRegistry(path string, networks []*chain.Network) (*Registry, error) {
	if path == "" {
		return DefaultRegistry(networks), nil
	}

	var file registryFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, errors.Wrapf(err, "failed to decode token list %s", path)
	}

	for i, t := range file.Tokens {
		if err := validate(t); err != nil {
			return nil, errors.Wrapf(err, "invalid token #%d in %s", i, path)
		}
		if t.Address == "" {
			t.Address = NativeAddress
		}
	}

	return NewRegistry(file.Tokens), nil
}

func validate(t *Token) error {
	switch {
	case t.Symbol == "":
		return errors.New("symbol is required")
	case t.ChainID <= 0:
		return errors.New("chain_id must be positive")
	case t.Decimals < 0 || t.Decimals > 36:
		return errors.Errorf("decimals out of range: %d", t.Decimals)
	case !IsNativeAddress(t.Address) && !common.IsHexAddress(t.Address):
		return errors.Errorf("invalid address: %s", t.Address)
	}

	return nil
}

// Lookup 根据链 ID 与代币地址查询代币
func (r *Registry) Lookup(chainID int64, tokenID string) (*Token, error) {
	for _, t := range r.tokens {
		if t.ChainID != chainID {
			continue
		}
		if IsNativeAddress(tokenID) && t.IsNative() {
			return t, nil
		}
		if strings.EqualFold(t.Address, tokenID) {
			return t, nil
		}
	}

	return nil, errors.Wrapf(ErrTokenNotFound, "chain_id=%d token=%s", chainID, tokenID)
}

// Native 返回指定链的原生代币
func (r *Registry) Native(chainID int64) (*Token, error) {
	return r.Lookup(chainID, NativeAddress)
}

// ForChain 返回指定链的全部代币（保持配置顺序）
func (r *Registry) ForChain(chainID int64) []*Token {
	var out []*Token
	for _, t := range r.tokens {
		if t.ChainID == chainID {
			out = append(out, t)
		}
	}

	return out
}

package token

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// NativeAddress 原生代币的占位地址
const NativeAddress = "0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"

// Token 代币配置
type Token struct {
	Symbol   string `toml:"symbol"`
	Name     string `toml:"name"`
	ChainID  int64  `toml:"chain_id"`
	Address  string `toml:"address"`
	Decimals int32  `toml:"decimals"`
	Icon     string `toml:"icon"`
	// Value 法币估值（展示用，可为空）
	Value string `toml:"value"`
}

// IsNative 是否为链原生代币
func (t *Token) IsNative() bool {
	return IsNativeAddress(t.Address)
}

// ContractAddress 返回 ERC20 合约地址；原生代币返回零地址
func (t *Token) ContractAddress() common.Address {
	if t.IsNative() {
		return common.Address{}
	}
	return common.HexToAddress(t.Address)
}

// IsNativeAddress 判断 tokenID 是否为原生代币占位地址（空字符串同样视为原生代币）
func IsNativeAddress(tokenID string) bool {
	return tokenID == "" || strings.EqualFold(tokenID, NativeAddress)
}

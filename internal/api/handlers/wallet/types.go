package wallet

// TokenItem 代币列表行
type TokenItem struct {
	Symbol   *string `json:"symbol"`
	Name     *string `json:"name"`
	ChainID  *int64  `json:"chainId"`
	Address  *string `json:"address"`
	Decimals *int64  `json:"decimals"`
	Icon     *string `json:"icon,omitempty"`
	Value    *string `json:"value,omitempty"`
	// Balance 为空表示该代币余额查询失败
	Balance *string `json:"balance,omitempty"`
	Error   *string `json:"error,omitempty"`
}

type GetTokensResponse struct {
	ChainID *int64       `json:"chainId"`
	Tokens  []*TokenItem `json:"tokens"`
}

// NetworkItem 网络列表项
type NetworkItem struct {
	Name         *string `json:"name"`
	DisplayName  *string `json:"displayName"`
	ChainID      *int64  `json:"chainId,omitempty"`
	ChainType    *string `json:"chainType"`
	NativeSymbol *string `json:"nativeSymbol"`
	Active       *bool   `json:"active"`
	Selected     *bool   `json:"selected"`
	SponsorGas   *bool   `json:"sponsorGas"`
}

type GetNetworksResponse struct {
	Networks []*NetworkItem `json:"networks"`
}

type PutSelectedNetworkPayload struct {
	Name *string `json:"name"`
}

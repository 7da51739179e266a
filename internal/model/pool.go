package model

import "github.com/ethereum/go-ethereum/common"

// Project identifies the team behind a pool and how it is displayed.
type Project struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Pool is a static pool descriptor. Addresses are keyed by chain id.
type Pool struct {
	PID                 uint64                    `json:"pid"`
	Project             string                    `json:"project"`
	LPAddresses         map[uint64]common.Address `json:"lp_addresses"`
	TokenAddresses      map[uint64]common.Address `json:"token_addresses"`
	Token2Addresses     map[uint64]common.Address `json:"token2_addresses"`
	Name                string                    `json:"name"`
	Symbol              string                    `json:"symbol"`
	SymbolShort         string                    `json:"symbol_short"`
	Description         string                    `json:"description"`
	TokenSymbol         string                    `json:"token_symbol"`
	Token2Symbol        string                    `json:"token2_symbol"`
	Icon                string                    `json:"icon"`
	Icon2               string                    `json:"icon2"`
	IsHot               bool                      `json:"is_hot"`
	IsNew               bool                      `json:"is_new"`
	Protocol            string                    `json:"protocol"`
	IconProtocol        string                    `json:"icon_protocol"`
	PairLink            string                    `json:"pair_link"`
	AddLiquidityLink    string                    `json:"add_liquidity_link"`
	RemoveLiquidityLink string                    `json:"remove_liquidity_link"`
	// StartAt is the unix second deposits open. Zero means no gate.
	StartAt uint64 `json:"start_at"`
}

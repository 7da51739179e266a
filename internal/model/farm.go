package model

import "github.com/ethereum/go-ethereum/common"

// Farm is a pool descriptor resolved for one chain, as shown to users.
type Farm struct {
	PID                 uint64         `json:"pid"`
	Project             string         `json:"project"`
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	LPToken             string         `json:"lp_token"`
	LPTokenAddress      common.Address `json:"lp_token_address"`
	TokenAddress        common.Address `json:"token_address"`
	Token2Address       common.Address `json:"token2_address"`
	TokenSymbol         string         `json:"token_symbol"`
	Token2Symbol        string         `json:"token2_symbol"`
	Symbol              string         `json:"symbol"`
	SymbolShort         string         `json:"symbol_short"`
	IsHot               bool           `json:"is_hot"`
	IsNew               bool           `json:"is_new"`
	EarnToken           string         `json:"earn_token"`
	EarnTokenAddress    common.Address `json:"earn_token_address"`
	Icon                string         `json:"icon"`
	Icon2               string         `json:"icon2"`
	Description         string         `json:"description"`
	Protocol            string         `json:"protocol"`
	IconProtocol        string         `json:"icon_protocol"`
	PairLink            string         `json:"pair_link"`
	AddLiquidityLink    string         `json:"add_liquidity_link"`
	RemoveLiquidityLink string         `json:"remove_liquidity_link"`
}

package model

import "github.com/shopspring/decimal"

// LPValue is the estimated value of the LP tokens held by the MasterChef.
type LPValue struct {
	PID                uint64          `json:"pid"`
	TokenAmount        decimal.Decimal `json:"token_amount"`
	Token2Amount       decimal.Decimal `json:"token2_amount"`
	TotalToken2Value   decimal.Decimal `json:"total_token2_value"`
	TokenPriceInToken2 decimal.Decimal `json:"token_price_in_token2"`
	USDValue           decimal.Decimal `json:"usd_value"`
	PoolWeight         decimal.Decimal `json:"pool_weight"`
	TokenAmountTotal   decimal.Decimal `json:"token_amount_total"`
	Token2AmountTotal  decimal.Decimal `json:"token2_amount_total"`
}

// LPPrice is the token price quoted in token2 derived from pair reserves.
type LPPrice struct {
	PID   uint64          `json:"pid"`
	Price decimal.Decimal `json:"price"`
}

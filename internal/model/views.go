package model

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// AccountFarm is one account's position in a farm.
type AccountFarm struct {
	PID     uint64   `json:"pid"`
	Account string   `json:"account"`
	Active  bool     `json:"active"`
	Staked  *big.Int `json:"staked"`
	Earned  *big.Int `json:"earned"`
	Locked  *big.Int `json:"locked"`
}

// AccountLocked is the reward locked for an account across every farm.
type AccountLocked struct {
	Account     string   `json:"account"`
	TotalLocked *big.Int `json:"total_locked"`
	LockOf      *big.Int `json:"lock_of"`
	CanUnlock   *big.Int `json:"can_unlock"`
}

// Supply summarises the reward token supply, in raw units.
type Supply struct {
	Total        decimal.Decimal `json:"total"`
	Circulating  decimal.Decimal `json:"circulating"`
	SafeShares   *big.Int        `json:"safe_shares"`
	TotalLockAll *big.Int        `json:"total_lock_all"`
}

// Home is the landing view: price, launch countdown and referral link.
type Home struct {
	Price         decimal.Decimal `json:"price"`
	LaunchBlock   uint64          `json:"launch_block"`
	CurrentBlock  uint64          `json:"current_block"`
	Launched      bool            `json:"launched"`
	Account       string          `json:"account,omitempty"`
	ReferralLink  string          `json:"referral_link,omitempty"`
	ReferralShort string          `json:"referral_short,omitempty"`
	Farms         []Farm          `json:"farms"`
}

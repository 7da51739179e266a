package staking

import (
	"context"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"launchpool/internal/contract"
	"launchpool/internal/model"
	"launchpool/internal/units"
)

var two = decimal.NewFromInt(2)

// LPReserves are the raw pair balances LP valuation is computed from.
type LPReserves struct {
	// TokenWhole is token.balanceOf(lp).
	TokenWhole *big.Int
	// Token2Whole is token2.balanceOf(lp).
	Token2Whole *big.Int
	// Staked is lp.balanceOf(masterChef).
	Staked         *big.Int
	TotalSupply    *big.Int
	TokenDecimals  uint8
	Token2Decimals uint8
}

// Portion is the share of the LP supply held by the MasterChef.
// A pair with no supply has no portion.
func (r LPReserves) Portion() decimal.Decimal {
	return units.Div(units.Raw(r.Staked), units.Raw(r.TotalSupply))
}

// FetchLPReserves reads the balances needed to value farm.
func FetchLPReserves(ctx context.Context, s *contract.Contracts, farm contract.Farm, cache *contract.DecimalsCache) (LPReserves, error) {
	var r LPReserves
	var err error

	if r.TokenWhole, err = farm.TokenContract.CallBig(ctx, "balanceOf", farm.LPContract.Address()); err != nil {
		return r, fmt.Errorf("token balance: %w", err)
	}
	if r.TokenDecimals, err = cache.Decimals(ctx, farm.TokenContract); err != nil {
		return r, fmt.Errorf("token decimals: %w", err)
	}
	if r.Staked, err = farm.LPContract.CallBig(ctx, "balanceOf", s.MasterChefAddress()); err != nil {
		return r, fmt.Errorf("staked lp: %w", err)
	}
	if r.TotalSupply, err = farm.LPContract.CallBig(ctx, "totalSupply"); err != nil {
		return r, fmt.Errorf("lp supply: %w", err)
	}
	if r.Token2Whole, err = farm.Token2Contract.CallBig(ctx, "balanceOf", farm.LPContract.Address()); err != nil {
		return r, fmt.Errorf("token2 balance: %w", err)
	}
	if r.Token2Decimals, err = cache.Decimals(ctx, farm.Token2Contract); err != nil {
		return r, fmt.Errorf("token2 decimals: %w", err)
	}
	return r, nil
}

// ComputeLPValue values the MasterChef's LP share. The USD estimate treats
// the pair as symmetric: twice the token side at referencePrice.
func ComputeLPValue(pid uint64, r LPReserves, referencePrice, poolWeight decimal.Decimal) model.LPValue {
	portion := r.Portion()
	tokenWhole := units.Raw(r.TokenWhole)
	token2Whole := units.Raw(r.Token2Whole)

	tokenAmountTotal := units.FromWei(r.TokenWhole, r.TokenDecimals)
	token2AmountTotal := units.FromWei(r.Token2Whole, r.Token2Decimals)
	totalLpToken2Value := portion.Mul(token2Whole).Mul(two)

	return model.LPValue{
		PID:                pid,
		TokenAmount:        tokenWhole.Mul(portion).Shift(-int32(r.TokenDecimals)),
		Token2Amount:       token2Whole.Mul(portion).Shift(-int32(r.Token2Decimals)),
		TotalToken2Value:   totalLpToken2Value.Shift(-int32(r.Token2Decimals)),
		TokenPriceInToken2: referencePrice,
		USDValue:           tokenAmountTotal.Mul(referencePrice).Mul(two),
		PoolWeight:         poolWeight,
		TokenAmountTotal:   tokenAmountTotal,
		Token2AmountTotal:  token2AmountTotal,
	}
}

// ComputeLPPrice quotes one token in token2 from the pair balances. A pair
// holding none of the token quotes zero.
func ComputeLPPrice(r LPReserves) decimal.Decimal {
	return units.Div(units.FromWei(r.Token2Whole, r.Token2Decimals), units.FromWei(r.TokenWhole, r.TokenDecimals))
}

// LPValue reads farm's reserves and pool weight and values the staked LP.
func LPValue(ctx context.Context, s *contract.Contracts, farm contract.Farm, referencePrice decimal.Decimal, cache *contract.DecimalsCache) (model.LPValue, error) {
	r, err := FetchLPReserves(ctx, s, farm, cache)
	if err != nil {
		return model.LPValue{}, err
	}
	weight, err := PoolWeight(ctx, s.MasterChef(), farm.PID)
	if err != nil {
		return model.LPValue{}, fmt.Errorf("pool weight: %w", err)
	}
	return ComputeLPValue(farm.PID, r, referencePrice, weight), nil
}

// LPValuePrice derives the token price in token2 from farm's pair.
func LPValuePrice(ctx context.Context, farm contract.Farm, cache *contract.DecimalsCache) (model.LPPrice, error) {
	var r LPReserves
	var err error
	if r.TokenWhole, err = farm.TokenContract.CallBig(ctx, "balanceOf", farm.LPContract.Address()); err != nil {
		return model.LPPrice{}, fmt.Errorf("token balance: %w", err)
	}
	if r.TokenDecimals, err = cache.Decimals(ctx, farm.TokenContract); err != nil {
		return model.LPPrice{}, fmt.Errorf("token decimals: %w", err)
	}
	if r.Token2Whole, err = farm.Token2Contract.CallBig(ctx, "balanceOf", farm.LPContract.Address()); err != nil {
		return model.LPPrice{}, fmt.Errorf("token2 balance: %w", err)
	}
	if r.Token2Decimals, err = cache.Decimals(ctx, farm.Token2Contract); err != nil {
		return model.LPPrice{}, fmt.Errorf("token2 decimals: %w", err)
	}
	return model.LPPrice{PID: farm.PID, Price: ComputeLPPrice(r)}, nil
}

package units

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// DivPrecision is the number of fractional digits kept by divisions.
const DivPrecision = 80

// StakeDecimals is the scale applied to user-entered stake amounts.
const StakeDecimals = 18

var ErrInvalidAmount = errors.New("invalid amount")

// ToWei converts a decimal amount string into raw integer units.
// Digits beyond the token precision are truncated.
func ToWei(amount string, decimals int32) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("%w: negative %s", ErrInvalidAmount, amount)
	}
	return d.Shift(decimals).Truncate(0).BigInt(), nil
}

// FromWei scales raw integer units down by decimals.
func FromWei(value *big.Int, decimals uint8) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(value, -int32(decimals))
}

// Raw wraps an on-chain integer without scaling.
func Raw(value *big.Int) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(value, 0)
}

// Div divides a by b, returning zero when b is zero.
func Div(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.DivRound(b, DivPrecision)
}

// FormatTokenAmount renders value/10^decimals with every fractional digit.
func FormatTokenAmount(value *big.Int, decimals uint8) string {
	if value == nil {
		return "0"
	}
	if decimals == 0 {
		return value.String()
	}
	return FromWei(value, decimals).StringFixed(int32(decimals))
}

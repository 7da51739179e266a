package staking

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"launchpool/internal/contract"
)

// RelayReader evaluates view calls through the backend API.
type RelayReader interface {
	ReadDecimal(ctx context.Context, address common.Address, method string, params []interface{}, cache bool) (decimal.Decimal, error)
}

// SushiSupply returns the BSCX total supply in raw units.
func SushiSupply(ctx context.Context, s *contract.Contracts, relay RelayReader) (decimal.Decimal, error) {
	return relay.ReadDecimal(ctx, s.SushiAddress(), "totalSupply():(uint256)", nil, true)
}

// CirculatingSupply returns circulatingSupply() minus the BSCX balance held
// by the MasterChef, in raw units.
func CirculatingSupply(ctx context.Context, s *contract.Contracts, relay RelayReader) (decimal.Decimal, error) {
	circulating, err := relay.ReadDecimal(ctx, s.SushiAddress(), "circulatingSupply():(uint256)", nil, true)
	if err != nil {
		return decimal.Zero, err
	}
	chefBalance, err := relay.ReadDecimal(ctx, s.SushiAddress(), "balanceOf(address):(uint256)", []interface{}{s.MasterChefAddress()}, true)
	if err != nil {
		return decimal.Zero, err
	}
	return circulating.Sub(chefBalance), nil
}

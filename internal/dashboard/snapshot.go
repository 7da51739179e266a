package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"

	"launchpool/internal/model"
	"launchpool/internal/staking"
)

// Snapshot records the value of the farms in pids (every farm when empty) at
// the current time. Farms whose reads fail are skipped. A farm listed more
// than once is recorded once.
func (s *Service) Snapshot(ctx context.Context, pids []uint64) []model.FarmSnapshot {
	now := s.now().UTC()
	price := s.ReferencePrice(ctx)
	farms := s.contracts.Farms()

	want := make(map[uint64]bool, len(pids))
	for _, pid := range pids {
		want[pid] = true
	}

	type listing struct {
		pid    uint64
		symbol string
	}
	seen := make(map[listing]bool, len(farms))

	out := make([]model.FarmSnapshot, 0, len(farms))
	for _, farm := range farms {
		if len(want) > 0 && !want[farm.PID] {
			continue
		}
		key := listing{pid: farm.PID, symbol: farm.Symbol}
		if seen[key] {
			continue
		}
		seen[key] = true
		value, err := staking.LPValue(ctx, s.contracts, farm, price, s.decimals)
		if err != nil {
			s.warn("snapshot lp value failed", err, zap.Uint64("pid", farm.PID))
			continue
		}
		staked, err := staking.LPTokenStaked(ctx, s.contracts, farm.LPContract)
		if err != nil {
			s.warn("snapshot staked lp failed", err, zap.Uint64("pid", farm.PID))
			continue
		}
		out = append(out, model.FarmSnapshot{
			ChainID:      s.contracts.ChainID,
			PID:          farm.PID,
			Symbol:       farm.Symbol,
			LPAddress:    farm.LPTokenAddress.Hex(),
			StakedLP:     staked.String(),
			PoolWeight:   value.PoolWeight.String(),
			TokenAmount:  value.TokenAmount.String(),
			Token2Amount: value.Token2Amount.String(),
			USDValue:     value.USDValue.String(),
			Price:        price.String(),
			Timestamp:    uint64(now.Unix()),
			CapturedAt:   now.Format(time.RFC3339),
		})
	}
	return out
}

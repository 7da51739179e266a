package dashboard

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"launchpool/internal/contract"
	"launchpool/internal/model"
	"launchpool/internal/staking"
)

// referencePID is the pair the reference token price is quoted from.
const referencePID = 0

func (s *Service) warn(msg string, err error, fields ...zap.Field) {
	s.logger.Warn(msg, append(fields, zap.Error(err))...)
}

// Farms lists the farms in display order.
func (s *Service) Farms() []model.Farm {
	farms := s.contracts.Farms()
	out := make([]model.Farm, 0, len(farms))
	for _, f := range farms {
		out = append(out, f.Farm)
	}
	return out
}

// Farm returns the first farm with pid.
func (s *Service) Farm(pid uint64) (model.Farm, error) {
	f, err := s.contracts.Farm(pid)
	if err != nil {
		return model.Farm{}, err
	}
	return f.Farm, nil
}

// ReferencePrice is the configured price, or the token price in token2
// quoted by the reference pair. Zero means the price is unknown.
func (s *Service) ReferencePrice(ctx context.Context) decimal.Decimal {
	if s.price.IsPositive() {
		return s.price
	}
	farm, err := s.contracts.Farm(referencePID)
	if err != nil {
		s.warn("reference farm missing", err)
		return decimal.Zero
	}
	p, err := staking.LPValuePrice(ctx, farm, s.decimals)
	if err != nil {
		s.warn("read reference price failed", err, zap.Uint64("pid", referencePID))
		return decimal.Zero
	}
	if p.Price.IsZero() {
		s.logger.Warn("reference pair has no token reserve", zap.Uint64("pid", referencePID))
	}
	return p.Price
}

// LPValue values the LP held by the MasterChef in pid. Only an unknown pid
// is an error; read failures yield a zero value.
func (s *Service) LPValue(ctx context.Context, pid uint64) (model.LPValue, error) {
	farm, err := s.contracts.Farm(pid)
	if err != nil {
		return model.LPValue{}, err
	}
	return s.lpValue(ctx, farm, s.ReferencePrice(ctx)), nil
}

func (s *Service) lpValue(ctx context.Context, farm contract.Farm, price decimal.Decimal) model.LPValue {
	v, err := staking.LPValue(ctx, s.contracts, farm, price, s.decimals)
	if err != nil {
		s.warn("read lp value failed", err, zap.Uint64("pid", farm.PID))
		return model.LPValue{PID: farm.PID}
	}
	return v
}

// AllLPValues values every farm against one reference price.
func (s *Service) AllLPValues(ctx context.Context) []model.LPValue {
	price := s.ReferencePrice(ctx)
	farms := s.contracts.Farms()
	out := make([]model.LPValue, len(farms))

	var g errgroup.Group
	for i, farm := range farms {
		i, farm := i, farm
		g.Go(func() error {
			out[i] = s.lpValue(ctx, farm, price)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// PoolActive reports whether pid accepts stakes. Gate failures read as closed.
func (s *Service) PoolActive(ctx context.Context, pid uint64) bool {
	if _, err := s.contracts.Farm(pid); err != nil {
		return false
	}
	if s.gate == nil {
		return true
	}
	active, err := s.gate.CheckPoolActive(ctx, pid)
	if err != nil {
		s.warn("check pool active failed", err, zap.Uint64("pid", pid))
		return false
	}
	return active
}

func (s *Service) readBig(msg string, pid uint64, fn func() (*big.Int, error)) *big.Int {
	v, err := fn()
	if err != nil {
		s.warn(msg, err, zap.Uint64("pid", pid))
		return new(big.Int)
	}
	return v
}

// Earned is account's pending reward in pid.
func (s *Service) Earned(ctx context.Context, pid uint64, account common.Address) *big.Int {
	return s.readBig("read earned failed", pid, func() (*big.Int, error) {
		return staking.Earned(ctx, s.contracts.MasterChef(), pid, account)
	})
}

// Staked is account's deposited LP in pid.
func (s *Service) Staked(ctx context.Context, pid uint64, account common.Address) *big.Int {
	return s.readBig("read staked failed", pid, func() (*big.Int, error) {
		return staking.Staked(ctx, s.contracts.MasterChef(), pid, account)
	})
}

// UserLocked is account's locked reward in pid.
func (s *Service) UserLocked(ctx context.Context, pid uint64, account common.Address) *big.Int {
	return s.readBig("read user locked failed", pid, func() (*big.Int, error) {
		return staking.TotalUserLocked(ctx, s.contracts.MasterChef(), account, pid)
	})
}

// TotalLocked sums account's locked reward over every farm. Any failed read
// zeroes the total.
func (s *Service) TotalLocked(ctx context.Context, account common.Address) *big.Int {
	farms := s.contracts.Farms()
	values := make([]*big.Int, len(farms))

	g, gctx := errgroup.WithContext(ctx)
	for i, farm := range farms {
		i, pid := i, farm.PID
		g.Go(func() error {
			v, err := staking.TotalUserLocked(gctx, s.contracts.MasterChef(), account, pid)
			if err != nil {
				return fmt.Errorf("pid %d: %w", pid, err)
			}
			values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.warn("read total locked failed", err, zap.String("account", account.Hex()))
		return new(big.Int)
	}

	total := new(big.Int)
	for _, v := range values {
		total.Add(total, v)
	}
	return total
}

// AccountFarm gathers account's position in pid.
func (s *Service) AccountFarm(ctx context.Context, pid uint64, account common.Address) (model.AccountFarm, error) {
	if _, err := s.contracts.Farm(pid); err != nil {
		return model.AccountFarm{}, err
	}
	return model.AccountFarm{
		PID:     pid,
		Account: account.Hex(),
		Active:  s.PoolActive(ctx, pid),
		Staked:  s.Staked(ctx, pid, account),
		Earned:  s.Earned(ctx, pid, account),
		Locked:  s.UserLocked(ctx, pid, account),
	}, nil
}

// AccountLocked reports account's locked reward and its unlockable BSCX.
func (s *Service) AccountLocked(ctx context.Context, account common.Address) model.AccountLocked {
	lockOf, err := staking.LockOf(ctx, s.contracts, account)
	if err != nil {
		s.warn("read lock of failed", err, zap.String("account", account.Hex()))
		lockOf = new(big.Int)
	}
	canUnlock, err := staking.CanUnlock(ctx, s.contracts, account)
	if err != nil {
		s.warn("read can unlock failed", err, zap.String("account", account.Hex()))
		canUnlock = new(big.Int)
	}
	return model.AccountLocked{
		Account:     account.Hex(),
		TotalLocked: s.TotalLocked(ctx, account),
		LockOf:      lockOf,
		CanUnlock:   canUnlock,
	}
}

// Supply reads the reward token supply figures.
func (s *Service) Supply(ctx context.Context) model.Supply {
	out := model.Supply{
		Total:        decimal.Zero,
		Circulating:  decimal.Zero,
		SafeShares:   new(big.Int),
		TotalLockAll: new(big.Int),
	}
	if s.relay != nil {
		if v, err := staking.SushiSupply(ctx, s.contracts, s.relay); err != nil {
			s.warn("read total supply failed", err)
		} else {
			out.Total = v
		}
		if v, err := staking.CirculatingSupply(ctx, s.contracts, s.relay); err != nil {
			s.warn("read circulating supply failed", err)
		} else {
			out.Circulating = v
		}
	}
	if v, err := staking.XSushiSupply(ctx, s.contracts); err != nil {
		s.warn("read safe supply failed", err)
	} else {
		out.SafeShares = v
	}
	if v, err := staking.TotalLocked(ctx, s.contracts.MasterChef()); err != nil {
		s.warn("read total lock failed", err)
	} else {
		out.TotalLockAll = v
	}
	return out
}

// NewRewardPerBlock is the current emission of pid.
func (s *Service) NewRewardPerBlock(ctx context.Context, pid uint64) *big.Int {
	return s.readBig("read reward per block failed", pid, func() (*big.Int, error) {
		return staking.NewRewardPerBlock(ctx, s.contracts, pid)
	})
}

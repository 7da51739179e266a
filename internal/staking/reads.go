package staking

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"launchpool/internal/contract"
	"launchpool/internal/units"
)

// PoolWeight returns allocPoint / totalAllocPoints(rewardToken) for pid.
func PoolWeight(ctx context.Context, chef *contract.Contract, pid uint64) (decimal.Decimal, error) {
	info, err := chef.CallMap(ctx, "poolInfo", new(big.Int).SetUint64(pid))
	if err != nil {
		return decimal.Zero, err
	}
	allocPoint, err := contract.AsBigInt(info["allocPoint"])
	if err != nil {
		return decimal.Zero, fmt.Errorf("allocPoint: %w", err)
	}
	rewardToken, err := contract.AsAddress(info["rewardToken"])
	if err != nil {
		return decimal.Zero, fmt.Errorf("rewardToken: %w", err)
	}

	total, err := chef.CallBig(ctx, "totalAllocPoints", rewardToken)
	if err != nil {
		return decimal.Zero, err
	}
	return units.Div(units.Raw(allocPoint), units.Raw(total)), nil
}

// Earned returns the pending reward of account in pid.
func Earned(ctx context.Context, chef *contract.Contract, pid uint64, account common.Address) (*big.Int, error) {
	return chef.CallBig(ctx, "pendingReward", new(big.Int).SetUint64(pid), account)
}

// TotalLocked returns the reward amount locked by the MasterChef overall.
func TotalLocked(ctx context.Context, chef *contract.Contract) (*big.Int, error) {
	return chef.CallBig(ctx, "totalLock")
}

// TotalUserLocked returns the reward amount locked for account in pid.
func TotalUserLocked(ctx context.Context, chef *contract.Contract, account common.Address, pid uint64) (*big.Int, error) {
	return chef.CallBig(ctx, "lockOf", account, new(big.Int).SetUint64(pid))
}

// Staked returns the LP amount account has deposited in pid.
func Staked(ctx context.Context, chef *contract.Contract, pid uint64, account common.Address) (*big.Int, error) {
	info, err := chef.CallMap(ctx, "userInfo", new(big.Int).SetUint64(pid), account)
	if err != nil {
		return nil, err
	}
	return contract.AsBigInt(info["amount"])
}

// LPTokenStaked returns the LP balance held by the MasterChef.
func LPTokenStaked(ctx context.Context, s *contract.Contracts, lp *contract.Contract) (*big.Int, error) {
	return lp.CallBig(ctx, "balanceOf", s.MasterChefAddress())
}

// NewRewardPerBlock returns the current reward emission for pid.
func NewRewardPerBlock(ctx context.Context, s *contract.Contracts, pid uint64) (*big.Int, error) {
	return s.MasterChef().CallBig(ctx, "getNewRewardPerBlock", new(big.Int).SetUint64(pid))
}

// CanUnlock returns the BSCX amount account may unlock now.
func CanUnlock(ctx context.Context, s *contract.Contracts, account common.Address) (*big.Int, error) {
	return s.Sushi().CallBig(ctx, "canUnlockAmount", account)
}

// LockOf returns the BSCX amount still locked for account.
func LockOf(ctx context.Context, s *contract.Contracts, account common.Address) (*big.Int, error) {
	return s.Sushi().CallBig(ctx, "lockOf", account)
}

// XSushiSupply returns the share supply of the BSCXSafe staking contract.
func XSushiSupply(ctx context.Context, s *contract.Contracts) (*big.Int, error) {
	return s.XSushiStaking().CallBig(ctx, "totalSupply")
}

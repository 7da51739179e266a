package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"launchpool/internal/referral"
	"launchpool/internal/staking"
)

// ErrPoolClosed is returned when staking into a pool that has not opened.
var ErrPoolClosed = errors.New("pool not open for staking")

func (s *Service) opts(ctx context.Context) (*bind.TransactOpts, error) {
	return s.wallet.TransactOpts(ctx)
}

func (s *Service) submitted(action string, hash string, fields ...zap.Field) {
	s.logger.Info("tx submitted", append([]zap.Field{zap.String("action", action), zap.String("tx", hash)}, fields...)...)
}

// Referral is the stored referral address, zero when none was captured.
func (s *Service) Referral(ctx context.Context) common.Address {
	ref, err := referral.Load(ctx, s.store)
	if err != nil {
		s.warn("load referral failed", err)
		return common.Address{}
	}
	return ref
}

// Approve lets the MasterChef spend pid's LP token.
func (s *Service) Approve(ctx context.Context, pid uint64) (string, error) {
	farm, err := s.contracts.Farm(pid)
	if err != nil {
		return "", err
	}
	opts, err := s.opts(ctx)
	if err != nil {
		return "", err
	}
	hash, err := staking.Approve(opts, farm.LPContract, s.contracts.MasterChef())
	if err != nil {
		return "", fmt.Errorf("approve pid %d: %w", pid, err)
	}
	s.submitted("approve", hash, zap.Uint64("pid", pid))
	return hash, nil
}

// ApproveSafe lets the BSCXSafe spend the wallet's BSCX.
func (s *Service) ApproveSafe(ctx context.Context) (string, error) {
	opts, err := s.opts(ctx)
	if err != nil {
		return "", err
	}
	hash, err := staking.ApproveAddress(opts, s.contracts.Sushi(), s.contracts.XSushiAddress())
	if err != nil {
		return "", fmt.Errorf("approve safe: %w", err)
	}
	s.submitted("approve_safe", hash)
	return hash, nil
}

// Stake deposits amount LP into pid, crediting the stored referral.
func (s *Service) Stake(ctx context.Context, pid uint64, amount string) (string, error) {
	if _, err := s.contracts.Farm(pid); err != nil {
		return "", err
	}
	if !s.PoolActive(ctx, pid) {
		return "", fmt.Errorf("stake pid %d: %w", pid, ErrPoolClosed)
	}
	opts, err := s.opts(ctx)
	if err != nil {
		return "", err
	}
	ref := s.Referral(ctx)
	hash, err := staking.Stake(opts, s.contracts.MasterChef(), pid, amount, ref)
	if err != nil {
		return "", fmt.Errorf("stake pid %d: %w", pid, err)
	}
	s.submitted("stake", hash, zap.Uint64("pid", pid), zap.String("amount", amount), zap.String("referral", ref.Hex()))
	return hash, nil
}

// Unstake withdraws amount LP from pid.
func (s *Service) Unstake(ctx context.Context, pid uint64, amount string) (string, error) {
	if _, err := s.contracts.Farm(pid); err != nil {
		return "", err
	}
	opts, err := s.opts(ctx)
	if err != nil {
		return "", err
	}
	hash, err := staking.Unstake(opts, s.contracts.MasterChef(), pid, amount)
	if err != nil {
		return "", fmt.Errorf("unstake pid %d: %w", pid, err)
	}
	s.submitted("unstake", hash, zap.Uint64("pid", pid), zap.String("amount", amount))
	return hash, nil
}

// Harvest claims pid's pending reward.
func (s *Service) Harvest(ctx context.Context, pid uint64) (string, error) {
	if _, err := s.contracts.Farm(pid); err != nil {
		return "", err
	}
	opts, err := s.opts(ctx)
	if err != nil {
		return "", err
	}
	hash, err := staking.Harvest(opts, s.contracts.MasterChef(), pid)
	if err != nil {
		return "", fmt.Errorf("harvest pid %d: %w", pid, err)
	}
	s.submitted("harvest", hash, zap.Uint64("pid", pid))
	return hash, nil
}

// Redeem exits every position once redemption has opened.
func (s *Service) Redeem(ctx context.Context) (string, error) {
	opts, err := s.opts(ctx)
	if err != nil {
		return "", err
	}
	hash, err := staking.Redeem(opts, s.contracts.MasterChef(), s.now())
	if err != nil {
		return "", fmt.Errorf("redeem: %w", err)
	}
	s.submitted("redeem", hash)
	return hash, nil
}

// Unlock releases the wallet's unlockable BSCX.
func (s *Service) Unlock(ctx context.Context) (string, error) {
	opts, err := s.opts(ctx)
	if err != nil {
		return "", err
	}
	hash, err := staking.Unlock(opts, s.contracts)
	if err != nil {
		return "", fmt.Errorf("unlock: %w", err)
	}
	s.submitted("unlock", hash)
	return hash, nil
}

// Enter stakes amount BSCX into the BSCXSafe.
func (s *Service) Enter(ctx context.Context, amount string) (string, error) {
	opts, err := s.opts(ctx)
	if err != nil {
		return "", err
	}
	hash, err := staking.Enter(opts, s.contracts.XSushiStaking(), amount)
	if err != nil {
		return "", fmt.Errorf("enter: %w", err)
	}
	s.submitted("enter", hash, zap.String("amount", amount))
	return hash, nil
}

// Leave redeems amount BSCXSafe shares.
func (s *Service) Leave(ctx context.Context, amount string) (string, error) {
	opts, err := s.opts(ctx)
	if err != nil {
		return "", err
	}
	hash, err := staking.Leave(opts, s.contracts.XSushiStaking(), amount)
	if err != nil {
		return "", fmt.Errorf("leave: %w", err)
	}
	s.submitted("leave", hash, zap.String("amount", amount))
	return hash, nil
}

// Convert asks the maker to convert the token0/token1 pair.
func (s *Service) Convert(ctx context.Context, token0, token1 common.Address) (string, error) {
	opts, err := s.opts(ctx)
	if err != nil {
		return "", err
	}
	hash, err := staking.MakerConvert(opts, s.contracts.Maker(), token0, token1)
	if err != nil {
		return "", fmt.Errorf("convert: %w", err)
	}
	s.submitted("convert", hash, zap.String("token0", token0.Hex()), zap.String("token1", token1.Hex()))
	return hash, nil
}

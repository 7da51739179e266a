package staking

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"launchpool/internal/contract"
	"launchpool/internal/pools"
	"launchpool/internal/units"
)

var ErrNotActive = errors.New("pool not active")

var maxApproval, _ = new(big.Int).SetString(pools.MaxApproval, 10)

func send(opts *bind.TransactOpts, c *contract.Contract, method string, args ...interface{}) (string, error) {
	tx, err := c.Transact(opts, method, args...)
	if err != nil {
		return "", err
	}
	return tx.Hash().Hex(), nil
}

func stakeAmount(amount string) (*big.Int, error) {
	return units.ToWei(amount, units.StakeDecimals)
}

// Approve lets the MasterChef spend lp without limit.
func Approve(opts *bind.TransactOpts, lp *contract.Contract, chef *contract.Contract) (string, error) {
	if chef == nil {
		return "", fmt.Errorf("approve: masterchef %w", contract.ErrNotConfigured)
	}
	return ApproveAddress(opts, lp, chef.Address())
}

// ApproveAddress lets spender spend token without limit.
func ApproveAddress(opts *bind.TransactOpts, token *contract.Contract, spender common.Address) (string, error) {
	return send(opts, token, "approve", spender, new(big.Int).Set(maxApproval))
}

// Stake deposits amount LP (18 decimals) into pid crediting referral.
func Stake(opts *bind.TransactOpts, chef *contract.Contract, pid uint64, amount string, referral common.Address) (string, error) {
	value, err := stakeAmount(amount)
	if err != nil {
		return "", err
	}
	return send(opts, chef, "deposit", new(big.Int).SetUint64(pid), value, referral)
}

// Unstake withdraws amount LP from pid.
func Unstake(opts *bind.TransactOpts, chef *contract.Contract, pid uint64, amount string) (string, error) {
	value, err := stakeAmount(amount)
	if err != nil {
		return "", err
	}
	return send(opts, chef, "withdraw", new(big.Int).SetUint64(pid), value)
}

// Harvest claims the pending reward of pid.
func Harvest(opts *bind.TransactOpts, chef *contract.Contract, pid uint64) (string, error) {
	return send(opts, chef, "claimReward", new(big.Int).SetUint64(pid))
}

// Redeem exits every position. It is refused before the redeem start time.
func Redeem(opts *bind.TransactOpts, chef *contract.Contract, now time.Time) (string, error) {
	if now.Unix() < pools.RedeemActiveAt {
		return "", ErrNotActive
	}
	return send(opts, chef, "exit")
}

// Unlock releases the unlockable part of the caller's locked BSCX.
func Unlock(opts *bind.TransactOpts, s *contract.Contracts) (string, error) {
	return send(opts, s.Sushi(), "unlock")
}

// Enter stakes amount BSCX into the BSCXSafe.
func Enter(opts *bind.TransactOpts, safe *contract.Contract, amount string) (string, error) {
	value, err := stakeAmount(amount)
	if err != nil {
		return "", err
	}
	return send(opts, safe, "enter", value)
}

// Leave burns amount BSCXSafe shares for BSCX.
func Leave(opts *bind.TransactOpts, safe *contract.Contract, amount string) (string, error) {
	value, err := stakeAmount(amount)
	if err != nil {
		return "", err
	}
	return send(opts, safe, "leave", value)
}

// MakerConvert asks the maker to convert the token0/token1 pair fees.
func MakerConvert(opts *bind.TransactOpts, maker *contract.Contract, token0, token1 common.Address) (string, error) {
	return send(opts, maker, "convert", token0, token1)
}

package main

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

func parsePID(raw string) (uint64, error) {
	pid, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pid %q: %w", raw, err)
	}
	return pid, nil
}

// accountArg returns args[i] when present, else the wallet account.
func accountArg(a *app, args []string, i int) (common.Address, error) {
	if len(args) > i {
		return parseAddress(args[i])
	}
	account := a.service.Wallet().Account
	if account == (common.Address{}) {
		return common.Address{}, fmt.Errorf("account is required (argument, --account or --private-key)")
	}
	return account, nil
}

// withChainApp runs fn with a fully wired app and prints its result.
func withChainApp(fn func(cmd *cobra.Command, a *app, args []string) (interface{}, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, stop := signalContext()
		defer stop()

		a, err := newChainApp(ctx, cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		cmd.SetContext(ctx)
		out, err := fn(cmd, a, args)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), out)
	}
}

func readCommands() []*cobra.Command {
	farmsCmd := &cobra.Command{
		Use:   "farms",
		Short: "List farms",
		Args:  cobra.NoArgs,
		RunE: withChainApp(func(_ *cobra.Command, a *app, _ []string) (interface{}, error) {
			return a.service.Farms(), nil
		}),
	}

	valueCmd := &cobra.Command{
		Use:   "value [pid]",
		Short: "Estimate the value of the LP staked in a farm (all farms without pid)",
		Args:  cobra.MaximumNArgs(1),
		RunE: withChainApp(func(cmd *cobra.Command, a *app, args []string) (interface{}, error) {
			if len(args) == 0 {
				return a.service.AllLPValues(cmd.Context()), nil
			}
			pid, err := parsePID(args[0])
			if err != nil {
				return nil, err
			}
			return a.service.LPValue(cmd.Context(), pid)
		}),
	}

	activeCmd := &cobra.Command{
		Use:   "active <pid>",
		Short: "Report whether a farm accepts stakes",
		Args:  cobra.ExactArgs(1),
		RunE: withChainApp(func(cmd *cobra.Command, a *app, args []string) (interface{}, error) {
			pid, err := parsePID(args[0])
			if err != nil {
				return nil, err
			}
			return map[string]interface{}{"pid": pid, "active": a.service.PoolActive(cmd.Context(), pid)}, nil
		}),
	}

	lockedCmd := &cobra.Command{
		Use:   "locked [account]",
		Short: "Show locked rewards of an account",
		Args:  cobra.MaximumNArgs(1),
		RunE: withChainApp(func(cmd *cobra.Command, a *app, args []string) (interface{}, error) {
			account, err := accountArg(a, args, 0)
			if err != nil {
				return nil, err
			}
			return a.service.AccountLocked(cmd.Context(), account), nil
		}),
	}

	supplyCmd := &cobra.Command{
		Use:   "supply",
		Short: "Show BSCX supply figures",
		Args:  cobra.NoArgs,
		RunE: withChainApp(func(cmd *cobra.Command, a *app, _ []string) (interface{}, error) {
			return a.service.Supply(cmd.Context()), nil
		}),
	}

	accountCmd := &cobra.Command{
		Use:   "account <pid> [account]",
		Short: "Show an account's position in a farm",
		Args:  cobra.RangeArgs(1, 2),
		RunE: withChainApp(func(cmd *cobra.Command, a *app, args []string) (interface{}, error) {
			pid, err := parsePID(args[0])
			if err != nil {
				return nil, err
			}
			account, err := accountArg(a, args, 1)
			if err != nil {
				return nil, err
			}
			return a.service.AccountFarm(cmd.Context(), pid, account)
		}),
	}

	homeCmd := &cobra.Command{
		Use:   "home",
		Short: "Show price, launch status and the referral link of the wallet",
		Args:  cobra.NoArgs,
		RunE: withChainApp(func(cmd *cobra.Command, a *app, _ []string) (interface{}, error) {
			return a.service.Home(cmd.Context(), a.service.Wallet().Account), nil
		}),
	}

	rewardCmd := &cobra.Command{
		Use:   "reward <pid>",
		Short: "Show the current reward per block of a farm",
		Args:  cobra.ExactArgs(1),
		RunE: withChainApp(func(cmd *cobra.Command, a *app, args []string) (interface{}, error) {
			pid, err := parsePID(args[0])
			if err != nil {
				return nil, err
			}
			return map[string]interface{}{"pid": pid, "reward_per_block": a.service.NewRewardPerBlock(cmd.Context(), pid)}, nil
		}),
	}

	return []*cobra.Command{farmsCmd, valueCmd, activeCmd, lockedCmd, supplyCmd, accountCmd, homeCmd, rewardCmd}
}

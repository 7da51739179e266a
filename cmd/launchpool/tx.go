package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type txResult struct {
	Tx     string `json:"tx"`
	Block  uint64 `json:"block,omitempty"`
	Mined  bool   `json:"mined"`
	Action string `json:"action"`
}

// txCommand wraps send so the hash is printed and, with --wait, mined.
func txCommand(use, short string, args cobra.PositionalArgs, send func(cmd *cobra.Command, a *app, args []string) (string, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
	}
	cmd.Flags().Bool("wait", false, "wait for the transaction to be mined")
	cmd.RunE = withChainApp(func(cmd *cobra.Command, a *app, args []string) (interface{}, error) {
		hash, err := send(cmd, a, args)
		if err != nil {
			return nil, err
		}
		res := txResult{Tx: hash, Action: cmd.Name()}

		wait, _ := cmd.Flags().GetBool("wait")
		if !wait {
			return res, nil
		}
		receipt, err := a.chain.WaitMined(cmd.Context(), common.HexToHash(hash))
		if err != nil {
			return nil, err
		}
		res.Mined = true
		res.Block = receipt.BlockNumber.Uint64()
		a.logger.Info("tx mined", zap.String("tx", hash), zap.Uint64("block", res.Block))
		return res, nil
	})
	return cmd
}

func txCommands() []*cobra.Command {
	stakeCmd := txCommand("stake <pid> <amount>", "Deposit LP into a farm, crediting the stored referral", cobra.ExactArgs(2),
		func(cmd *cobra.Command, a *app, args []string) (string, error) {
			pid, err := parsePID(args[0])
			if err != nil {
				return "", err
			}
			return a.service.Stake(cmd.Context(), pid, args[1])
		})

	unstakeCmd := txCommand("unstake <pid> <amount>", "Withdraw LP from a farm", cobra.ExactArgs(2),
		func(cmd *cobra.Command, a *app, args []string) (string, error) {
			pid, err := parsePID(args[0])
			if err != nil {
				return "", err
			}
			return a.service.Unstake(cmd.Context(), pid, args[1])
		})

	harvestCmd := txCommand("harvest <pid>", "Claim the pending reward of a farm", cobra.ExactArgs(1),
		func(cmd *cobra.Command, a *app, args []string) (string, error) {
			pid, err := parsePID(args[0])
			if err != nil {
				return "", err
			}
			return a.service.Harvest(cmd.Context(), pid)
		})

	redeemCmd := txCommand("redeem", "Exit every position", cobra.NoArgs,
		func(cmd *cobra.Command, a *app, _ []string) (string, error) {
			return a.service.Redeem(cmd.Context())
		})

	unlockCmd := txCommand("unlock", "Unlock the unlockable BSCX", cobra.NoArgs,
		func(cmd *cobra.Command, a *app, _ []string) (string, error) {
			return a.service.Unlock(cmd.Context())
		})

	enterCmd := txCommand("enter <amount>", "Stake BSCX into the BSCXSafe", cobra.ExactArgs(1),
		func(cmd *cobra.Command, a *app, args []string) (string, error) {
			return a.service.Enter(cmd.Context(), args[0])
		})

	leaveCmd := txCommand("leave <amount>", "Redeem BSCXSafe shares", cobra.ExactArgs(1),
		func(cmd *cobra.Command, a *app, args []string) (string, error) {
			return a.service.Leave(cmd.Context(), args[0])
		})

	convertCmd := txCommand("convert <token0> <token1>", "Convert a pair's fees through the maker", cobra.ExactArgs(2),
		func(cmd *cobra.Command, a *app, args []string) (string, error) {
			token0, err := parseAddress(args[0])
			if err != nil {
				return "", err
			}
			token1, err := parseAddress(args[1])
			if err != nil {
				return "", err
			}
			return a.service.Convert(cmd.Context(), token0, token1)
		})

	approveCmd := txCommand("approve [pid]", "Approve the MasterChef for a farm's LP, or the BSCXSafe with --safe", cobra.MaximumNArgs(1),
		func(cmd *cobra.Command, a *app, args []string) (string, error) {
			if safe, _ := cmd.Flags().GetBool("safe"); safe {
				return a.service.ApproveSafe(cmd.Context())
			}
			if len(args) == 0 {
				return "", fmt.Errorf("pid is required unless --safe is set")
			}
			pid, err := parsePID(args[0])
			if err != nil {
				return "", err
			}
			return a.service.Approve(cmd.Context(), pid)
		})
	approveCmd.Flags().Bool("safe", false, "approve BSCX for the BSCXSafe instead of LP for the MasterChef")

	return []*cobra.Command{stakeCmd, unstakeCmd, harvestCmd, redeemCmd, unlockCmd, enterCmd, leaveCmd, convertCmd, approveCmd}
}

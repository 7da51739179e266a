package main

import (
	"github.com/spf13/cobra"

	"launchpool/internal/referral"
)

func referralCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "referral",
		Short: "Capture or share referral links",
	}

	captureCmd := &cobra.Command{
		Use:   "capture <url>",
		Short: "Store the referral carried by a landing URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			a, err := newApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			addr, ok, err := referral.Capture(ctx, a.store, args[0])
			if err != nil {
				return err
			}
			stored, err := referral.Load(ctx, a.store)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]interface{}{
				"captured": ok,
				"referral": addr.Hex(),
				"stored":   stored.Hex(),
			})
		},
	}

	linkCmd := &cobra.Command{
		Use:   "link [account]",
		Short: "Print the referral link of an account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync()

			raw := cfg.Account
			if len(args) > 0 {
				raw = args[0]
			}
			account, err := parseAddress(raw)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{
				"account": account.Hex(),
				"link":    referral.Link(cfg.SiteURL, account),
				"short":   referral.Shorten(account),
			})
		},
	}

	cmd.AddCommand(captureCmd, linkCmd)
	return cmd
}

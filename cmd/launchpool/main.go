package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "launchpool",
		Short:        "BSCX launchpool staking dashboard",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file path")
	flags.String("rpc", "", "BSC RPC URL")
	flags.Uint64("chain-id", 56, "chain id (56 mainnet, 97 testnet), 0 asks the RPC")
	flags.String("api", "", "backend API base URL")
	flags.String("private-key", "", "hex private key used to sign transactions")
	flags.String("account", "", "account address used for reads")
	flags.String("store", "./data/launchpool.json", "local key/value store file")
	flags.String("pg-dsn", "", "Postgres DSN; replaces the local store when set")
	flags.Uint64("gas-limit", 300000, "gas limit for transactions")
	flags.Int("max-retries", 3, "maximum backend API retry attempts")
	flags.Duration("retry-backoff", 300*time.Millisecond, "initial backend API retry backoff")
	flags.Int("cache-size", 256, "backend read cache entries")
	flags.Duration("cache-ttl", 30*time.Second, "backend read cache entry lifetime")
	flags.String("site-url", "http://launchpoolx.bscex.org/#/?referral=", "referral link prefix")
	flags.String("price", "", "reference token price; empty derives it from the reference pair")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(readCommands()...)
	root.AddCommand(txCommands()...)
	root.AddCommand(referralCommand(), snapshotCommand(), serveCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

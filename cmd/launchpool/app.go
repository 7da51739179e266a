package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"launchpool/internal/activity"
	"launchpool/internal/chain"
	"launchpool/internal/config"
	"launchpool/internal/contract"
	"launchpool/internal/dashboard"
	"launchpool/internal/pools"
	"launchpool/internal/relay"
	"launchpool/internal/storage"
	"launchpool/internal/storage/postgres"
)

// app holds the wired components shared by every command.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	chain   *chain.Client
	store   storage.KV
	pg      *postgres.Store
	service *dashboard.Service
}

func (a *app) Close() {
	if a.chain != nil {
		a.chain.Close()
	}
	if a.pg != nil {
		a.pg.Close()
	}
	_ = a.logger.Sync()
}

func loadConfig(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// openStore picks Postgres when a DSN is configured, the JSON file otherwise.
func openStore(ctx context.Context, cfg config.Config) (storage.KV, *postgres.Store, error) {
	if cfg.PGDSN == "" {
		return storage.NewFileKV(cfg.Store), nil, nil
	}
	pg, err := postgres.NewStore(ctx, cfg.PGDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pg.EnsureSchema(ctx); err != nil {
		pg.Close()
		return nil, nil, err
	}
	return pg, pg, nil
}

// newApp wires the store only; commands that touch the chain use newChainApp.
func newApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	kv, pg, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: logger, store: kv, pg: pg}, nil
}

func newChainApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	a, err := newApp(ctx, cmd)
	if err != nil {
		return nil, err
	}
	cfg := a.cfg
	if cfg.RPCURL == "" {
		a.Close()
		return nil, fmt.Errorf("rpc url is required")
	}

	a.chain, err = chain.NewClient(ctx, cfg.RPCURL)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("connect rpc: %w", err)
	}

	chainID := cfg.ChainID
	if chainID == 0 {
		if chainID, err = a.chain.ChainID(ctx); err != nil {
			a.Close()
			return nil, fmt.Errorf("read chain id: %w", err)
		}
	}

	contracts, err := contract.NewContracts(chainID, a.chain.Backend(), pools.Supported())
	if err != nil {
		a.Close()
		return nil, err
	}

	wallet, err := newWallet(cfg, chainID)
	if err != nil {
		a.Close()
		return nil, err
	}

	opts := dashboard.Options{
		Contracts: contracts,
		Wallet:    wallet,
		Store:     a.store,
		Blocks:    a.chain,
		SiteURL:   cfg.SiteURL,
		Logger:    a.logger,
	}

	if cfg.API != "" {
		api, err := relay.NewClient(relay.Config{
			BaseURL:      cfg.API,
			CacheSize:    cfg.CacheSize,
			CacheTTL:     cfg.CacheTTL,
			MaxRetries:   cfg.MaxRetries,
			RetryBackoff: cfg.RetryBackoff,
		}, a.logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		opts.Relay = api
		opts.Gate = activity.NewGate(pools.Supported(), a.store, api, a.logger)
	}

	if cfg.Price != "" {
		price, err := decimal.NewFromString(cfg.Price)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("invalid price %q: %w", cfg.Price, err)
		}
		opts.Price = price
	}

	a.service = dashboard.New(opts)

	a.logger.Info("launchpool ready",
		zap.String("rpc", cfg.RPCURL),
		zap.Uint64("chain_id", chainID),
		zap.String("api", cfg.API),
		zap.String("account", wallet.Account.Hex()),
		zap.Bool("can_sign", wallet.CanSign()),
	)
	return a, nil
}

func newWallet(cfg config.Config, chainID uint64) (*chain.Wallet, error) {
	if cfg.PrivateKey != "" {
		return chain.NewKeyedWallet(cfg.PrivateKey, chainID, cfg.GasLimit)
	}
	if cfg.Account == "" {
		return chain.NewReadOnlyWallet(common.Address{}), nil
	}
	account, err := parseAddress(cfg.Account)
	if err != nil {
		return nil, err
	}
	return chain.NewReadOnlyWallet(account), nil
}

func parseAddress(raw string) (common.Address, error) {
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("invalid address %q", raw)
	}
	return common.HexToAddress(raw), nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Package dashboard binds the staking utilities to one connected wallet and
// its stored preferences. Reads degrade to zero values and log the failure,
// actions return the transaction hash or an error.
package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"launchpool/internal/chain"
	"launchpool/internal/contract"
	"launchpool/internal/staking"
	"launchpool/internal/storage"
)

// ActivityGate reports whether a pool accepts stakes.
type ActivityGate interface {
	CheckPoolActive(ctx context.Context, pid uint64) (bool, error)
}

// BlockReader reports the chain head.
type BlockReader interface {
	LatestBlockNumber(ctx context.Context) (uint64, error)
}

// Options wires a Service. Contracts is required; every other field may be
// left empty and the dependent features degrade.
type Options struct {
	Contracts *contract.Contracts
	Wallet    *chain.Wallet
	Store     storage.KV
	Relay     staking.RelayReader
	Gate      ActivityGate
	Blocks    BlockReader
	// Price overrides the reference token price. Zero derives it from the
	// reference pair.
	Price   decimal.Decimal
	SiteURL string
	Logger  *zap.Logger
}

type Service struct {
	contracts *contract.Contracts
	wallet    *chain.Wallet
	store     storage.KV
	relay     staking.RelayReader
	gate      ActivityGate
	blocks    BlockReader
	price     decimal.Decimal
	siteURL   string
	decimals  *contract.DecimalsCache
	logger    *zap.Logger
	now       func() time.Time
}

func New(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		contracts: opts.Contracts,
		wallet:    opts.Wallet,
		store:     opts.Store,
		relay:     opts.Relay,
		gate:      opts.Gate,
		blocks:    opts.Blocks,
		price:     opts.Price,
		siteURL:   opts.SiteURL,
		decimals:  contract.NewDecimalsCache(),
		logger:    logger,
		now:       time.Now,
	}
}

// Contracts exposes the bound contract session.
func (s *Service) Contracts() *contract.Contracts {
	return s.contracts
}

// Wallet returns the connected wallet, nil when none is configured.
func (s *Service) Wallet() *chain.Wallet {
	return s.wallet
}

package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrNoSigner = errors.New("wallet has no signing key")

// Wallet is the connected account. Read-only wallets carry no signer.
type Wallet struct {
	Account common.Address

	opts     *bind.TransactOpts
	gasLimit uint64
}

// NewReadOnlyWallet returns a wallet that can only be used for reads.
func NewReadOnlyWallet(account common.Address) *Wallet {
	return &Wallet{Account: account}
}

// NewKeyedWallet builds a signing wallet from a hex private key.
func NewKeyedWallet(privateKeyHex string, chainID uint64, gasLimit uint64) (*Wallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	opts, err := bind.NewKeyedTransactorWithChainID(key, new(big.Int).SetUint64(chainID))
	if err != nil {
		return nil, fmt.Errorf("build transactor: %w", err)
	}
	return NewWallet(opts, gasLimit), nil
}

// NewWallet wraps existing transact options.
func NewWallet(opts *bind.TransactOpts, gasLimit uint64) *Wallet {
	return &Wallet{Account: opts.From, opts: opts, gasLimit: gasLimit}
}

// CanSign reports whether the wallet holds a signer.
func (w *Wallet) CanSign() bool {
	return w != nil && w.opts != nil
}

// TransactOpts returns per-call options bound to ctx.
func (w *Wallet) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if !w.CanSign() {
		return nil, ErrNoSigner
	}
	opts := *w.opts
	opts.Context = ctx
	if opts.GasLimit == 0 {
		opts.GasLimit = w.gasLimit
	}
	return &opts, nil
}

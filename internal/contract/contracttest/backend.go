// Package contracttest provides an in-memory contract backend for tests.
package contracttest

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Backend answers eth_call from registered responses and records sent txs.
type Backend struct {
	mu        sync.Mutex
	responses map[string][]byte
	failures  map[string]error
	sent      []*types.Transaction
	calls     int
}

func NewBackend() *Backend {
	return &Backend{
		responses: make(map[string][]byte),
		failures:  make(map[string]error),
	}
}

func callKey(addr common.Address, data []byte) string {
	return addr.Hex() + ":" + hex.EncodeToString(data)
}

// On registers outputs as the result of method(args...) on addr.
func (b *Backend) On(t testing.TB, addr common.Address, parsed abi.ABI, method string, args []interface{}, outputs ...interface{}) {
	t.Helper()
	input, err := parsed.Pack(method, args...)
	if err != nil {
		t.Fatalf("pack %s input: %v", method, err)
	}
	output, err := parsed.Methods[method].Outputs.Pack(outputs...)
	if err != nil {
		t.Fatalf("pack %s output: %v", method, err)
	}
	b.mu.Lock()
	b.responses[callKey(addr, input)] = output
	b.mu.Unlock()
}

// Fail makes method(args...) on addr return err.
func (b *Backend) Fail(t testing.TB, addr common.Address, parsed abi.ABI, method string, args []interface{}, err error) {
	t.Helper()
	input, packErr := parsed.Pack(method, args...)
	if packErr != nil {
		t.Fatalf("pack %s input: %v", method, packErr)
	}
	b.mu.Lock()
	b.failures[callKey(addr, input)] = err
	b.mu.Unlock()
}

// Sent returns the transactions submitted so far.
func (b *Backend) Sent() []*types.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*types.Transaction, len(b.sent))
	copy(out, b.sent)
	return out
}

// Calls returns how many eth_calls were served.
func (b *Backend) Calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func (b *Backend) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	if msg.To == nil {
		return nil, fmt.Errorf("call without target")
	}
	key := callKey(*msg.To, msg.Data)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	if err, ok := b.failures[key]; ok {
		return nil, err
	}
	out, ok := b.responses[key]
	if !ok {
		return nil, fmt.Errorf("no response registered for %s", key)
	}
	return out, nil
}

func (b *Backend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return []byte{0x1}, nil
}

func (b *Backend) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(1)}, nil
}

func (b *Backend) PendingCodeAt(context.Context, common.Address) ([]byte, error) {
	return []byte{0x1}, nil
}

func (b *Backend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return uint64(len(b.sent)), nil
}

func (b *Backend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(5_000_000_000), nil
}

func (b *Backend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (b *Backend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return 200000, nil
}

func (b *Backend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	b.mu.Lock()
	b.sent = append(b.sent, tx)
	b.mu.Unlock()
	return nil
}

// TransactOpts returns options for from that pass transactions through unsigned.
func TransactOpts(from common.Address) *bind.TransactOpts {
	return &bind.TransactOpts{
		From:     from,
		GasLimit: 200000,
		Signer: func(_ common.Address, tx *types.Transaction) (*types.Transaction, error) {
			return tx, nil
		},
		Context: context.Background(),
	}
}

// DecodeTx resolves the method and arguments carried by tx.
func DecodeTx(t testing.TB, parsed abi.ABI, tx *types.Transaction) (string, []interface{}) {
	t.Helper()
	data := tx.Data()
	if len(data) < 4 {
		t.Fatalf("tx data too short: %x", data)
	}
	method, err := parsed.MethodById(data[:4])
	if err != nil {
		t.Fatalf("method by id: %v", err)
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		t.Fatalf("unpack %s args: %v", method.Name, err)
	}
	return method.Name, args
}

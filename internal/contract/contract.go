package contract

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrNotConfigured = errors.New("contract not configured")

// Backend is the chain access a contract handle needs.
type Backend interface {
	bind.ContractCaller
	bind.ContractTransactor
}

// Contract is an address bound to an ABI.
type Contract struct {
	address common.Address
	abi     abi.ABI
	caller  ethereum.ContractCaller
	bound   *bind.BoundContract
}

// New binds address to parsed on backend.
func New(address common.Address, parsed abi.ABI, backend Backend) *Contract {
	return &Contract{
		address: address,
		abi:     parsed,
		caller:  backend,
		bound:   bind.NewBoundContract(address, parsed, backend, backend, nil),
	}
}

// Address returns the contract address, or the zero address for nil.
func (c *Contract) Address() common.Address {
	if c == nil {
		return common.Address{}
	}
	return c.address
}

// ABI returns the contract ABI.
func (c *Contract) ABI() abi.ABI {
	return c.abi
}

// Call packs method, runs eth_call at the latest block and unpacks the result.
func (c *Contract) Call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := c.pack(method, args...)
	if err != nil {
		return nil, err
	}
	resp, err := c.caller.CallContract(ctx, ethereum.CallMsg{To: &c.address, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	values, err := c.abi.Unpack(method, resp)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	return values, nil
}

// CallMap is Call for methods with named outputs.
func (c *Contract) CallMap(ctx context.Context, method string, args ...interface{}) (map[string]interface{}, error) {
	data, err := c.pack(method, args...)
	if err != nil {
		return nil, err
	}
	resp, err := c.caller.CallContract(ctx, ethereum.CallMsg{To: &c.address, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	out := make(map[string]interface{})
	if err := c.abi.UnpackIntoMap(out, method, resp); err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	return out, nil
}

// CallBig calls a method returning a single integer.
func (c *Contract) CallBig(ctx context.Context, method string, args ...interface{}) (*big.Int, error) {
	values, err := c.Call(ctx, method, args...)
	if err != nil {
		return nil, err
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("%s return size %d", method, len(values))
	}
	return AsBigInt(values[0])
}

// Transact signs and sends a state-changing call.
func (c *Contract) Transact(opts *bind.TransactOpts, method string, args ...interface{}) (*types.Transaction, error) {
	if c == nil {
		return nil, ErrNotConfigured
	}
	if opts == nil {
		return nil, fmt.Errorf("transact %s: missing transact options", method)
	}
	tx, err := c.bound.Transact(opts, method, args...)
	if err != nil {
		return nil, fmt.Errorf("transact %s: %w", method, err)
	}
	return tx, nil
}

func (c *Contract) pack(method string, args ...interface{}) ([]byte, error) {
	if c == nil {
		return nil, ErrNotConfigured
	}
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}
	return data, nil
}

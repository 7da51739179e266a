package contract

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// DecimalsCache caches token decimals by address.
type DecimalsCache struct {
	mu   sync.RWMutex
	data map[common.Address]uint8
}

func NewDecimalsCache() *DecimalsCache {
	return &DecimalsCache{data: make(map[common.Address]uint8)}
}

func (c *DecimalsCache) Get(address common.Address) (uint8, bool) {
	c.mu.RLock()
	decimals, ok := c.data[address]
	c.mu.RUnlock()
	return decimals, ok
}

func (c *DecimalsCache) Set(address common.Address, decimals uint8) {
	c.mu.Lock()
	c.data[address] = decimals
	c.mu.Unlock()
}

// Decimals returns token.decimals(), consulting the cache first.
// A nil cache always reads from chain.
func (c *DecimalsCache) Decimals(ctx context.Context, token *Contract) (uint8, error) {
	if c != nil {
		if d, ok := c.Get(token.Address()); ok {
			return d, nil
		}
	}
	values, err := token.Call(ctx, "decimals")
	if err != nil {
		return 0, err
	}
	d, err := AsUint8(values[0])
	if err != nil {
		return 0, err
	}
	if c != nil {
		c.Set(token.Address(), d)
	}
	return d, nil
}

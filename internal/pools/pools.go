package pools

import (
	"errors"
	"fmt"
	"sort"

	"launchpool/internal/model"
)

var (
	ErrPoolNotFound     = errors.New("pool not found")
	ErrUnsupportedChain = errors.New("unsupported chain")
)

var sorted = Sort(supportedPools)

// Supported returns the configured pools, new pools first.
func Supported() []model.Pool {
	out := make([]model.Pool, len(sorted))
	copy(out, sorted)
	return out
}

// Sort returns a copy of list with isNew pools ahead of the rest.
// Relative order within each group is preserved.
func Sort(list []model.Pool) []model.Pool {
	out := make([]model.Pool, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IsNew && !out[j].IsNew
	})
	return out
}

// Find returns the first pool in list with the given pid.
func Find(list []model.Pool, pid uint64) (model.Pool, bool) {
	for _, p := range list {
		if p.PID == pid {
			return p, true
		}
	}
	return model.Pool{}, false
}

// ByPID looks a pid up in the supported pool list.
func ByPID(pid uint64) (model.Pool, error) {
	p, ok := Find(sorted, pid)
	if !ok {
		return model.Pool{}, fmt.Errorf("pid %d: %w", pid, ErrPoolNotFound)
	}
	return p, nil
}

// AddressesFor returns the protocol contract addresses for a chain.
func AddressesFor(chainID uint64) (ContractAddresses, error) {
	addrs, ok := contractAddresses[chainID]
	if !ok {
		return ContractAddresses{}, fmt.Errorf("chain %d: %w", chainID, ErrUnsupportedChain)
	}
	return addrs, nil
}

// Package activity decides whether a pool has started accepting stakes.
package activity

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"launchpool/internal/model"
	"launchpool/internal/pools"
	"launchpool/internal/storage"
)

// Checker asks the backend whether a pool is live.
type Checker interface {
	PoolActive(ctx context.Context, pid uint64) (bool, error)
}

// Gate answers pool-activity questions, remembering positive answers in a KV.
type Gate struct {
	pools  []model.Pool
	store  storage.KV
	api    Checker
	logger *zap.Logger
	now    func() time.Time
}

func NewGate(list []model.Pool, store storage.KV, api Checker, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{
		pools:  list,
		store:  store,
		api:    api,
		logger: logger,
		now:    time.Now,
	}
}

// CacheKey is the KV key marking pid (with start time startAt) as active.
func CacheKey(pid, startAt uint64) string {
	return fmt.Sprintf("POOLACTIVE%d-%d", pid, startAt)
}

// CheckPoolActive reports whether pid is open. Unknown pools and pools whose
// start time has not passed are closed; pools without a start time are open.
// Otherwise a cached positive answer wins, then the backend decides.
func (g *Gate) CheckPoolActive(ctx context.Context, pid uint64) (bool, error) {
	p, ok := pools.Find(g.pools, pid)
	if !ok {
		return false, nil
	}
	if p.StartAt == 0 {
		return true, nil
	}
	if p.StartAt >= uint64(g.now().Unix()) {
		return false, nil
	}

	key := CacheKey(pid, p.StartAt)
	if g.store != nil {
		if _, found, err := g.store.Get(ctx, key); err != nil {
			g.logger.Warn("read pool activity cache failed", zap.String("key", key), zap.Error(err))
		} else if found {
			return true, nil
		}
	}

	if g.api == nil {
		return false, fmt.Errorf("check pool %d: no backend api configured", pid)
	}
	active, err := g.api.PoolActive(ctx, pid)
	if err != nil {
		return false, fmt.Errorf("check pool %d: %w", pid, err)
	}
	if active && g.store != nil {
		if err := g.store.Set(ctx, key, "true"); err != nil {
			g.logger.Warn("write pool activity cache failed", zap.String("key", key), zap.Error(err))
		}
	}
	return active, nil
}

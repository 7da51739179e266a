package storage

import (
	"context"

	"launchpool/internal/model"
)

// KV is a small string key/value store that outlives the process.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// SnapshotSink receives farm snapshots.
type SnapshotSink interface {
	PutSnapshotBatch(ctx context.Context, snapshots []model.FarmSnapshot) error
}

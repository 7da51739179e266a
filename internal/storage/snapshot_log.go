package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"launchpool/internal/model"
)

// SnapshotLog appends farm snapshots to a file, one JSON object per line.
// A batch is encoded in full before the file is touched, so a snapshot that
// fails validation leaves the log unchanged.
type SnapshotLog struct {
	path string
	mu   sync.Mutex
}

func NewSnapshotLog(path string) *SnapshotLog {
	return &SnapshotLog{path: path}
}

// PutSnapshotBatch validates and appends snapshots. Repeated listings of a
// farm at the same time are written once.
func (l *SnapshotLog) PutSnapshotBatch(_ context.Context, snapshots []model.FarmSnapshot) error {
	snapshots = model.UniqueSnapshots(snapshots)
	if len(snapshots) == 0 {
		return nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, snap := range snapshots {
		if err := validSnapshot(snap); err != nil {
			return err
		}
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encode snapshot pid %d (%s): %w", snap.PID, snap.Symbol, err)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open snapshot log: %w", err)
	}
	if _, err := file.Write(buf.Bytes()); err != nil {
		file.Close()
		return fmt.Errorf("append %d snapshots from pid %d: %w", len(snapshots), snapshots[0].PID, err)
	}
	return file.Close()
}

func validSnapshot(snap model.FarmSnapshot) error {
	switch {
	case snap.Symbol == "":
		return fmt.Errorf("snapshot pid %d has no symbol", snap.PID)
	case snap.Timestamp == 0:
		return fmt.Errorf("snapshot pid %d (%s) has no timestamp", snap.PID, snap.Symbol)
	}
	return nil
}

package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"launchpool/internal/model"
)

func TestFileKVPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "store.json")
	ctx := context.Background()

	first := NewFileKV(path)
	if _, ok, err := first.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := first.Set(ctx, "CACHE_BSCX_LAUNCHPOOLX_REFERRAL", "0xabc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := first.Set(ctx, "POOLACTIVE1-100", "true"); err != nil {
		t.Fatalf("set: %v", err)
	}

	second := NewFileKV(path)
	val, ok, err := second.Get(ctx, "CACHE_BSCX_LAUNCHPOOLX_REFERRAL")
	if err != nil || !ok || val != "0xabc" {
		t.Fatalf("expected persisted referral, got %q ok=%v err=%v", val, ok, err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("tmp file should be renamed away")
	}
}

func TestFileKVCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := NewFileKV(path).Get(context.Background(), "k"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSnapshotLogAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "snapshots.jsonl")
	sink := NewSnapshotLog(path)
	ctx := context.Background()

	zd := model.FarmSnapshot{PID: 1, Symbol: "BSCX-ZD 2 LP", Timestamp: 100, USDValue: "20"}
	if err := sink.PutSnapshotBatch(ctx, []model.FarmSnapshot{{PID: 0, Symbol: "BSCX-BUSD LP", Timestamp: 100, USDValue: "10"}}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := sink.PutSnapshotBatch(ctx, []model.FarmSnapshot{zd, zd, zd}); err != nil {
		t.Fatalf("put: %v", err)
	}

	got := readSnapshotLog(t, path)
	if len(got) != 2 || got[0].PID != 0 || got[1].Symbol != zd.Symbol || got[1].USDValue != "20" {
		t.Fatalf("unexpected snapshots: %+v", got)
	}
}

func TestSnapshotLogRejectsIncompleteBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.jsonl")
	sink := NewSnapshotLog(path)

	err := sink.PutSnapshotBatch(context.Background(), []model.FarmSnapshot{
		{PID: 0, Symbol: "BSCX-BUSD LP", Timestamp: 100},
		{PID: 7, Symbol: "BSCX-ZD 2 LP"},
	})
	if err == nil || !strings.Contains(err.Error(), "pid 7") {
		t.Fatalf("expected error naming pid 7, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("rejected batch should not create the log")
	}
}

func readSnapshotLog(t *testing.T, path string) []model.FarmSnapshot {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()

	var out []model.FarmSnapshot
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var snap model.FarmSnapshot
		if err := json.Unmarshal(scanner.Bytes(), &snap); err != nil {
			t.Fatalf("decode line: %v", err)
		}
		out = append(out, snap)
	}
	return out
}

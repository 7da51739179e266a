package model

import "testing"

func TestUniqueSnapshotsDropsRepeatedListings(t *testing.T) {
	zd := FarmSnapshot{ChainID: 56, PID: 1, Symbol: "BSCX-ZD 2 LP", Timestamp: 100, USDValue: "7"}
	in := []FarmSnapshot{
		{ChainID: 56, PID: 0, Symbol: "BSCX-BUSD LP", Timestamp: 100},
		{ChainID: 56, PID: 1, Symbol: "BSCX-BUSD 2 LP", Timestamp: 100},
		zd,
		zd,
		zd,
		{ChainID: 56, PID: 1, Symbol: "BSCX-ZD 2 LP", Timestamp: 160},
	}

	got := UniqueSnapshots(in)
	if len(got) != 4 {
		t.Fatalf("expected 4 snapshots, got %d", len(got))
	}
	if got[2] != zd || got[3].Timestamp != 160 {
		t.Fatalf("unexpected order: %+v", got)
	}
	if len(in) != 6 {
		t.Fatalf("input was modified")
	}
}

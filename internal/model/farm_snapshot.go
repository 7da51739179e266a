package model

// FarmSnapshot is a point-in-time record of a farm's value for storage.
type FarmSnapshot struct {
	ChainID      uint64 `json:"chain_id"`
	PID          uint64 `json:"pid"`
	Symbol       string `json:"symbol"`
	LPAddress    string `json:"lp_address"`
	StakedLP     string `json:"staked_lp"`
	PoolWeight   string `json:"pool_weight"`
	TokenAmount  string `json:"token_amount"`
	Token2Amount string `json:"token2_amount"`
	USDValue     string `json:"usd_value"`
	Price        string `json:"price"`
	Timestamp    uint64 `json:"timestamp"`
	CapturedAt   string `json:"captured_at"`
}

// SnapshotKey identifies a snapshot row.
type SnapshotKey struct {
	ChainID   uint64
	PID       uint64
	Symbol    string
	Timestamp uint64
}

func (s FarmSnapshot) Key() SnapshotKey {
	return SnapshotKey{ChainID: s.ChainID, PID: s.PID, Symbol: s.Symbol, Timestamp: s.Timestamp}
}

// UniqueSnapshots drops snapshots whose key was already seen, keeping the
// first of each. Repeated farm listings share a key.
func UniqueSnapshots(snapshots []FarmSnapshot) []FarmSnapshot {
	seen := make(map[SnapshotKey]struct{}, len(snapshots))
	out := make([]FarmSnapshot, 0, len(snapshots))
	for _, snap := range snapshots {
		k := snap.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, snap)
	}
	return out
}

package pools

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"launchpool/internal/model"
)

func TestSortPutsNewPoolsFirst(t *testing.T) {
	list := []model.Pool{
		{PID: 0, Name: "old-a"},
		{PID: 1, Name: "new-a", IsNew: true},
		{PID: 2, Name: "old-b"},
		{PID: 3, Name: "new-b", IsNew: true},
	}

	got := Sort(list)

	want := []string{"new-a", "new-b", "old-a", "old-b"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d: got %s want %s", i, got[i].Name, name)
		}
	}
	if list[0].Name != "old-a" {
		t.Fatalf("input list was modified")
	}
}

func TestSupportedIsSorted(t *testing.T) {
	seenOld := false
	for _, p := range Supported() {
		if !p.IsNew {
			seenOld = true
			continue
		}
		if seenOld {
			t.Fatalf("new pool %d listed after an old pool", p.PID)
		}
	}
}

func TestByPIDReturnsFirstMatch(t *testing.T) {
	p, err := ByPID(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Project != "BSCX" {
		t.Fatalf("expected first pid 1 pool to be BSCX, got %s", p.Project)
	}
}

func TestByPIDMissing(t *testing.T) {
	if _, err := ByPID(999); !errors.Is(err, ErrPoolNotFound) {
		t.Fatalf("expected ErrPoolNotFound, got %v", err)
	}
}

func TestAddressesFor(t *testing.T) {
	addrs, err := AddressesFor(ChainBSC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addrs.MasterChef != common.HexToAddress("0x1070b9a998c4457c5f393e389f275012e91b31d2") {
		t.Fatalf("master chef mismatch: %s", addrs.MasterChef.Hex())
	}

	if _, err := AddressesFor(1); !errors.Is(err, ErrUnsupportedChain) {
		t.Fatalf("expected ErrUnsupportedChain, got %v", err)
	}
}

func TestEveryPoolHasBothChains(t *testing.T) {
	for _, p := range Supported() {
		for _, chainID := range []uint64{ChainBSC, ChainBSCTestnet} {
			if _, ok := p.LPAddresses[chainID]; !ok {
				t.Fatalf("pool %s missing lp address for chain %d", p.Name, chainID)
			}
			if _, ok := p.TokenAddresses[chainID]; !ok {
				t.Fatalf("pool %s missing token address for chain %d", p.Name, chainID)
			}
			if _, ok := p.Token2Addresses[chainID]; !ok {
				t.Fatalf("pool %s missing token2 address for chain %d", p.Name, chainID)
			}
		}
	}
}

func TestSupportedListsZDThreeTimes(t *testing.T) {
	list := Supported()
	if len(list) != 5 {
		t.Fatalf("expected 5 listings, got %d", len(list))
	}
	zd := 0
	for _, p := range list {
		if p.Project == "ZD" {
			if p.PID != 1 || p.Symbol != "BSCX-ZD 2 LP" {
				t.Fatalf("unexpected ZD listing: %+v", p)
			}
			zd++
		}
	}
	if zd != 3 {
		t.Fatalf("expected 3 ZD listings, got %d", zd)
	}
}

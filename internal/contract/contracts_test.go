package contract

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"launchpool/internal/contract/contracttest"
	"launchpool/internal/pools"
)

func TestNilSessionAccessors(t *testing.T) {
	var s *Contracts
	if s.MasterChef() != nil || s.Sushi() != nil || s.XSushiStaking() != nil || s.Maker() != nil {
		t.Fatalf("nil session should yield nil contracts")
	}
	if s.MasterChefAddress() != (common.Address{}) || s.MakerAddress() != (common.Address{}) {
		t.Fatalf("nil session should yield zero addresses")
	}
	if len(s.Farms()) != 0 {
		t.Fatalf("nil session should have no farms")
	}
	if _, err := s.Farm(0); !errors.Is(err, pools.ErrPoolNotFound) {
		t.Fatalf("expected ErrPoolNotFound, got %v", err)
	}
}

func TestFarmsCarryEarnToken(t *testing.T) {
	s, err := NewContracts(pools.ChainBSCTestnet, contracttest.NewBackend(), pools.Supported())
	if err != nil {
		t.Fatalf("contracts: %v", err)
	}

	farms := s.Farms()
	if len(farms) != len(pools.Supported()) {
		t.Fatalf("farm count mismatch: %d", len(farms))
	}
	for _, f := range farms {
		if f.EarnToken != pools.EarnToken {
			t.Fatalf("earn token mismatch: %s", f.EarnToken)
		}
		if f.EarnTokenAddress != s.SushiAddress() {
			t.Fatalf("earn token address mismatch: %s", f.EarnTokenAddress.Hex())
		}
		if f.ID != f.Symbol || f.LPToken != f.Symbol {
			t.Fatalf("id/lp token should equal symbol: %+v", f.Farm)
		}
		if f.LPContract.Address() != f.LPTokenAddress {
			t.Fatalf("lp contract address mismatch")
		}
	}
}

func TestNewContractsUnsupportedChain(t *testing.T) {
	if _, err := NewContracts(1, contracttest.NewBackend(), pools.Supported()); !errors.Is(err, pools.ErrUnsupportedChain) {
		t.Fatalf("expected ErrUnsupportedChain, got %v", err)
	}
}

func TestCallBigAndDecimalsCache(t *testing.T) {
	backend := contracttest.NewBackend()
	s, err := NewContracts(pools.ChainBSC, backend, pools.Supported())
	if err != nil {
		t.Fatalf("contracts: %v", err)
	}
	tokenABI, _ := ERC20ABI()
	farm, err := s.Farm(0)
	if err != nil {
		t.Fatalf("farm: %v", err)
	}

	backend.On(t, farm.TokenContract.Address(), tokenABI, "totalSupply", nil, big.NewInt(42))
	backend.On(t, farm.TokenContract.Address(), tokenABI, "decimals", nil, uint8(18))

	supply, err := farm.TokenContract.CallBig(context.Background(), "totalSupply")
	if err != nil {
		t.Fatalf("totalSupply: %v", err)
	}
	if supply.Int64() != 42 {
		t.Fatalf("supply mismatch: %s", supply)
	}

	cache := NewDecimalsCache()
	for i := 0; i < 3; i++ {
		d, err := cache.Decimals(context.Background(), farm.TokenContract)
		if err != nil {
			t.Fatalf("decimals: %v", err)
		}
		if d != 18 {
			t.Fatalf("decimals mismatch: %d", d)
		}
	}
	if backend.Calls() != 2 {
		t.Fatalf("expected decimals to be fetched once, calls=%d", backend.Calls())
	}
}

func TestNilContractCall(t *testing.T) {
	var c *Contract
	if _, err := c.Call(context.Background(), "totalSupply"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := c.Transact(nil, "exit"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

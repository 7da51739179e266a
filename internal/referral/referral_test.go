package referral

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"launchpool/internal/storage"
)

const ref = "0x3333333333333333333333333333333333333333"

func TestFromURL(t *testing.T) {
	cases := map[string]string{
		"http://launchpoolx.bscex.org/#/?referral=" + ref:          ref,
		"http://launchpoolx.bscex.org/?referral=" + ref:            ref,
		"http://launchpoolx.bscex.org/#/farms?a=1&referral=" + ref: ref,
		"http://launchpoolx.bscex.org/#/":                          "",
		"http://launchpoolx.bscex.org/":                            "",
	}
	for raw, want := range cases {
		got, err := FromURL(raw)
		if err != nil {
			t.Fatalf("%s: %v", raw, err)
		}
		if got != want {
			t.Fatalf("%s: got %q want %q", raw, got, want)
		}
	}
}

func TestCaptureThenLoad(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()

	addr, ok, err := Capture(ctx, kv, DefaultSiteURL+ref)
	if err != nil || !ok {
		t.Fatalf("capture: %v %v", ok, err)
	}
	if addr != common.HexToAddress(ref) {
		t.Fatalf("captured %s", addr.Hex())
	}

	got, err := Load(ctx, kv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != common.HexToAddress(ref) {
		t.Fatalf("loaded %s", got.Hex())
	}
}

func TestCaptureWithoutReferralKeepsStored(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	if err := Save(ctx, kv, common.HexToAddress(ref)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, ok, err := Capture(ctx, kv, "http://launchpoolx.bscex.org/#/"); err != nil || ok {
		t.Fatalf("unexpected capture: %v %v", ok, err)
	}
	got, _ := Load(ctx, kv)
	if got != common.HexToAddress(ref) {
		t.Fatalf("stored referral overwritten: %s", got.Hex())
	}
}

func TestCaptureRejectsInvalidCode(t *testing.T) {
	kv := storage.NewMemoryKV()
	_, _, err := Capture(context.Background(), kv, DefaultSiteURL+"not-an-address")
	if !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}
	if _, ok, _ := kv.Get(context.Background(), CacheKey); ok {
		t.Fatalf("invalid code must not be stored")
	}
}

func TestLoadDefaultsToZeroAddress(t *testing.T) {
	got, err := Load(context.Background(), storage.NewMemoryKV())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != (common.Address{}) {
		t.Fatalf("expected zero address, got %s", got.Hex())
	}
}

func TestLinkAndShorten(t *testing.T) {
	acct := common.HexToAddress("0xAbCdEf0123456789abcdef0123456789ABCDEF01")
	if got := Link("", acct); got != DefaultSiteURL+acct.Hex() {
		t.Fatalf("link %q", got)
	}
	short := Shorten(acct)
	hex := acct.Hex()
	if short != hex[:5]+"..."+hex[37:] {
		t.Fatalf("short %q", short)
	}
	if len(short) != 13 {
		t.Fatalf("short length %d", len(short))
	}
}

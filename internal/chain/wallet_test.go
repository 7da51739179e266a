package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func TestKeyedWalletAccount(t *testing.T) {
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	hexKey := common.Bytes2Hex(crypto.FromECDSA(key))

	w, err := NewKeyedWallet("0x"+hexKey, 97, 200000)
	if err != nil {
		t.Fatalf("wallet: %v", err)
	}
	if w.Account != crypto.PubkeyToAddress(key.PublicKey) {
		t.Fatalf("account mismatch: %s", w.Account.Hex())
	}

	opts, err := w.TransactOpts(context.Background())
	if err != nil {
		t.Fatalf("opts: %v", err)
	}
	if opts.GasLimit != 200000 {
		t.Fatalf("gas limit mismatch: %d", opts.GasLimit)
	}
	if opts.Context == nil {
		t.Fatalf("expected context on opts")
	}
}

func TestReadOnlyWalletCannotSign(t *testing.T) {
	w := NewReadOnlyWallet(common.HexToAddress("0x1111111111111111111111111111111111111111"))
	if w.CanSign() {
		t.Fatalf("read-only wallet should not sign")
	}
	if _, err := w.TransactOpts(context.Background()); !errors.Is(err, ErrNoSigner) {
		t.Fatalf("expected ErrNoSigner, got %v", err)
	}
}

func TestKeyedWalletBadKey(t *testing.T) {
	if _, err := NewKeyedWallet("not-a-key", 56, 0); err == nil {
		t.Fatalf("expected error for invalid key")
	}
}

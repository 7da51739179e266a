package units

import (
	"errors"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
)

func TestToWei(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1", "1000000000000000000"},
		{"0.5", "500000000000000000"},
		{" 12.000000000000000001 ", "12000000000000000001"},
		{"0.0000000000000000001", "0"},
	}
	for _, tc := range cases {
		got, err := ToWei(tc.in, StakeDecimals)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.in, err)
		}
		if got.String() != tc.want {
			t.Fatalf("%q: got %s want %s", tc.in, got, tc.want)
		}
	}
}

func TestToWeiRejects(t *testing.T) {
	for _, in := range []string{"", "abc", "-1"} {
		if _, err := ToWei(in, StakeDecimals); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("%q: expected ErrInvalidAmount, got %v", in, err)
		}
	}
}

func TestFormatTokenAmount(t *testing.T) {
	v, _ := new(big.Int).SetString("1234500000000000000", 10)
	if got := FormatTokenAmount(v, 18); got != "1.234500000000000000" {
		t.Fatalf("format mismatch: %s", got)
	}
	if got := FormatTokenAmount(big.NewInt(7), 0); got != "7" {
		t.Fatalf("format mismatch: %s", got)
	}
}

func TestDivByZero(t *testing.T) {
	if !Div(decimal.NewFromInt(5), decimal.Zero).IsZero() {
		t.Fatalf("expected zero on division by zero")
	}
	if !Div(decimal.NewFromInt(1), decimal.NewFromInt(4)).Equal(decimal.RequireFromString("0.25")) {
		t.Fatalf("division mismatch")
	}
}

// Package referral persists the referrer credited on stake deposits.
package referral

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"launchpool/internal/storage"
)

const (
	// CacheKey is the KV key holding the captured referral address.
	CacheKey = "CACHE_BSCX_LAUNCHPOOLX_REFERRAL"
	// DefaultSiteURL prefixes an account to build its referral link.
	DefaultSiteURL = "http://launchpoolx.bscex.org/#/?referral="

	queryParam = "referral"
)

var ErrInvalidCode = errors.New("invalid referral code")

// FromURL extracts the referral query value of raw. Hash-routed links
// (`/#/?referral=`) carry the query inside the fragment.
func FromURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	if code := u.Query().Get(queryParam); code != "" {
		return code, nil
	}
	frag := u.Fragment
	if i := strings.IndexByte(frag, '?'); i >= 0 {
		q, err := url.ParseQuery(frag[i+1:])
		if err != nil {
			return "", fmt.Errorf("parse fragment query: %w", err)
		}
		return q.Get(queryParam), nil
	}
	return "", nil
}

// Capture stores the referral carried by raw, if any. It reports the stored
// address and whether raw carried one.
func Capture(ctx context.Context, kv storage.KV, raw string) (common.Address, bool, error) {
	code, err := FromURL(raw)
	if err != nil {
		return common.Address{}, false, err
	}
	if code == "" {
		return common.Address{}, false, nil
	}
	addr, err := Parse(code)
	if err != nil {
		return common.Address{}, false, err
	}
	if err := Save(ctx, kv, addr); err != nil {
		return common.Address{}, false, err
	}
	return addr, true, nil
}

// Parse validates code as a hex account address.
func Parse(code string) (common.Address, error) {
	code = strings.TrimSpace(code)
	if !common.IsHexAddress(code) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	return common.HexToAddress(code), nil
}

func Save(ctx context.Context, kv storage.KV, addr common.Address) error {
	if err := kv.Set(ctx, CacheKey, addr.Hex()); err != nil {
		return fmt.Errorf("save referral: %w", err)
	}
	return nil
}

// Load returns the stored referral, or the zero address when none is stored
// or the stored value is unusable.
func Load(ctx context.Context, kv storage.KV) (common.Address, error) {
	if kv == nil {
		return common.Address{}, nil
	}
	v, ok, err := kv.Get(ctx, CacheKey)
	if err != nil {
		return common.Address{}, fmt.Errorf("load referral: %w", err)
	}
	if !ok || !common.IsHexAddress(v) {
		return common.Address{}, nil
	}
	return common.HexToAddress(v), nil
}

// Link is the shareable referral URL for account.
func Link(siteURL string, account common.Address) string {
	if siteURL == "" {
		siteURL = DefaultSiteURL
	}
	return siteURL + account.Hex()
}

// Shorten renders account as its first and last five characters.
func Shorten(account common.Address) string {
	s := account.Hex()
	return s[:5] + "..." + s[len(s)-5:]
}

package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliveryhttp "launchpool/internal/delivery/http"
	"launchpool/internal/model"
	"launchpool/internal/pools"
	"launchpool/internal/referral"
)

const account = "0x2222222222222222222222222222222222222222"

type fakeDashboard struct {
	farms []model.Farm
}

func (f *fakeDashboard) Farms() []model.Farm { return f.farms }

func (f *fakeDashboard) Farm(pid uint64) (model.Farm, error) {
	for _, farm := range f.farms {
		if farm.PID == pid {
			return farm, nil
		}
	}
	return model.Farm{}, fmt.Errorf("%w: pid %d", pools.ErrPoolNotFound, pid)
}

func (f *fakeDashboard) LPValue(_ context.Context, pid uint64) (model.LPValue, error) {
	if _, err := f.Farm(pid); err != nil {
		return model.LPValue{}, err
	}
	return model.LPValue{PID: pid, USDValue: decimal.NewFromInt(1000)}, nil
}

func (f *fakeDashboard) PoolActive(_ context.Context, pid uint64) bool { return pid == 0 }

func (f *fakeDashboard) AccountLocked(_ context.Context, a common.Address) model.AccountLocked {
	return model.AccountLocked{Account: a.Hex(), TotalLocked: big.NewInt(19), LockOf: big.NewInt(1), CanUnlock: big.NewInt(0)}
}

func (f *fakeDashboard) AccountFarm(_ context.Context, pid uint64, a common.Address) (model.AccountFarm, error) {
	if _, err := f.Farm(pid); err != nil {
		return model.AccountFarm{}, err
	}
	return model.AccountFarm{PID: pid, Account: a.Hex(), Staked: big.NewInt(5), Earned: big.NewInt(2), Locked: big.NewInt(1)}, nil
}

func (f *fakeDashboard) Supply(context.Context) model.Supply {
	return model.Supply{Total: decimal.NewFromInt(10), Circulating: decimal.NewFromInt(4), SafeShares: big.NewInt(1), TotalLockAll: big.NewInt(2)}
}

func (f *fakeDashboard) Home(_ context.Context, a common.Address) model.Home {
	h := model.Home{Price: decimal.RequireFromString("0.5"), Launched: true, Farms: f.farms}
	if a != (common.Address{}) {
		h.Account = a.Hex()
		h.ReferralLink = f.ReferralLink(a)
	}
	return h
}

func (f *fakeDashboard) ReferralLink(a common.Address) string {
	return referral.Link("", a)
}

func newServer() http.Handler {
	return deliveryhttp.NewServer(&fakeDashboard{farms: []model.Farm{
		{PID: 0, ID: "BSCX-BUSD LP", Symbol: "BSCX-BUSD LP", IsNew: true},
		{PID: 1, ID: "BSCX-BUSD 2 LP", Symbol: "BSCX-BUSD 2 LP"},
	}}, nil)
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	h := newServer()

	testCases := []struct {
		name           string
		path           string
		expectedStatus int
		contains       string
	}{
		{name: "farms", path: "/farms", expectedStatus: http.StatusOK, contains: `"symbol":"BSCX-BUSD LP"`},
		{name: "farm", path: "/farms/1", expectedStatus: http.StatusOK, contains: `"pid":1`},
		{name: "unknown farm", path: "/farms/9", expectedStatus: http.StatusNotFound, contains: `"message"`},
		{name: "bad pid", path: "/farms/abc", expectedStatus: http.StatusBadRequest, contains: `"message"`},
		{name: "value", path: "/farms/0/value", expectedStatus: http.StatusOK, contains: `"usd_value":"1000"`},
		{name: "active", path: "/farms/0/active", expectedStatus: http.StatusOK, contains: `"active":true`},
		{name: "inactive", path: "/farms/1/active", expectedStatus: http.StatusOK, contains: `"active":false`},
		{name: "locked", path: "/accounts/" + account + "/locked", expectedStatus: http.StatusOK, contains: `"total_locked":19`},
		{name: "bad account", path: "/accounts/nope/locked", expectedStatus: http.StatusBadRequest, contains: `"message"`},
		{name: "account farm", path: "/accounts/" + account + "/farms/0", expectedStatus: http.StatusOK, contains: `"staked":5`},
		{name: "account unknown farm", path: "/accounts/" + account + "/farms/7", expectedStatus: http.StatusNotFound, contains: `"message"`},
		{name: "supply", path: "/supply", expectedStatus: http.StatusOK, contains: `"circulating":"4"`},
		{name: "home", path: "/home", expectedStatus: http.StatusOK, contains: `"launched":true`},
		{name: "home bad account", path: "/home?account=zzz", expectedStatus: http.StatusBadRequest, contains: `"message"`},
		{name: "metrics", path: "/metrics", expectedStatus: http.StatusOK, contains: "launchpool_requests_total"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(t, h, tc.path)
			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.contains)
		})
	}
}

func TestHomeWithAccount(t *testing.T) {
	rec := get(t, newServer(), "/home?account="+account)
	require.Equal(t, http.StatusOK, rec.Code)

	var home model.Home
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &home))
	assert.Equal(t, common.HexToAddress(account).Hex(), home.Account)
	assert.True(t, strings.HasPrefix(home.ReferralLink, referral.DefaultSiteURL))
	assert.Len(t, home.Farms, 2)
}

func TestReferral(t *testing.T) {
	rec := get(t, newServer(), "/referral/"+account)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp deliveryhttp.ReferralResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, referral.DefaultSiteURL+common.HexToAddress(account).Hex(), resp.Link)
	assert.Equal(t, "0x222...22222", resp.Short)
}

func TestErrorBody(t *testing.T) {
	rec := get(t, newServer(), "/farms/9")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body deliveryhttp.ResponseError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Message, "pid 9")
}

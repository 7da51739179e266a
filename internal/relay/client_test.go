package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient(Config{BaseURL: srv.URL + "/", MaxRetries: 2, RetryBackoff: time.Millisecond}, nil)
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	return c
}

func TestReadDecimalCached(t *testing.T) {
	token := common.HexToAddress("0x5ac52ee5b2a633895292ff6d8a89bb9190451587")
	var hits int32

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.Method != http.MethodPost || r.URL.Path != "/read/"+token.Hex() {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req readRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if req.Method != "totalSupply():(uint256)" || !req.Cache || len(req.Params) != 0 {
			t.Errorf("unexpected body: %+v", req)
		}
		w.Write([]byte(`{"data":"1000000000000000000000"}`))
	}))

	for i := 0; i < 2; i++ {
		got, err := c.ReadDecimal(context.Background(), token, "totalSupply():(uint256)", nil, true)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if got.String() != "1000000000000000000000" {
			t.Fatalf("value mismatch: %s", got)
		}
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("expected one backend hit, got %d", hits)
	}
}

func TestReadCacheExpires(t *testing.T) {
	var supply atomic.Value
	supply.Store("100")
	var hits int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"data":"` + supply.Load().(string) + `"}`))
	}))
	t.Cleanup(srv.Close)
	c, err := NewClient(Config{BaseURL: srv.URL, CacheTTL: 50 * time.Millisecond}, nil)
	if err != nil {
		t.Fatalf("client: %v", err)
	}

	read := func() string {
		t.Helper()
		got, err := c.ReadDecimal(context.Background(), common.Address{}, "totalSupply():(uint256)", nil, true)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		return got.String()
	}

	if got := read(); got != "100" {
		t.Fatalf("first read: %s", got)
	}
	supply.Store("250")
	if got := read(); got != "100" {
		t.Fatalf("read within ttl should be cached, got %s", got)
	}

	time.Sleep(150 * time.Millisecond)
	if got := read(); got != "250" {
		t.Fatalf("read after ttl should refresh, got %s", got)
	}
	if atomic.LoadInt32(&hits) != 2 {
		t.Fatalf("expected 2 backend hits, got %d", hits)
	}
}

func TestReadRetriesServerErrors(t *testing.T) {
	var hits int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"data":42}`))
	}))

	got, err := c.ReadDecimal(context.Background(), common.Address{}, "circulatingSupply():(uint256)", nil, false)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.IntPart() != 42 {
		t.Fatalf("value mismatch: %s", got)
	}
	if atomic.LoadInt32(&hits) != 3 {
		t.Fatalf("expected 3 attempts, got %d", hits)
	}
}

func TestClientErrorsAreNotRetried(t *testing.T) {
	var hits int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.Error(w, "bad method", http.StatusBadRequest)
	}))

	if _, err := c.Read(context.Background(), common.Address{}, "nope()", nil, false); err == nil {
		t.Fatalf("expected error")
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("expected a single attempt, got %d", hits)
	}
}

func TestPoolActive(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/poolActive/3":
			w.Write([]byte(`{"active":true}`))
		default:
			w.Write([]byte(`{"active":false}`))
		}
	}))

	active, err := c.PoolActive(context.Background(), 3)
	if err != nil || !active {
		t.Fatalf("expected pool 3 active, got %v %v", active, err)
	}
	active, err = c.PoolActive(context.Background(), 4)
	if err != nil || active {
		t.Fatalf("expected pool 4 inactive, got %v %v", active, err)
	}
}

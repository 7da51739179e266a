package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Config controls the backend API client.
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	CacheSize    int
	CacheTTL     time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

// Client talks to the launchpool backend API.
type Client struct {
	cfg    Config
	http   *http.Client
	cache  *expirable.LRU[string, json.RawMessage]
	logger *zap.Logger
}

type readRequest struct {
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
	Cache  bool          `json:"cache"`
}

type readResponse struct {
	Data json.RawMessage `json:"data"`
}

type poolActiveResponse struct {
	Active bool `json:"active"`
}

func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api base url is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 256
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 30 * time.Second
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		cache:  expirable.NewLRU[string, json.RawMessage](cfg.CacheSize, nil, cfg.CacheTTL),
		logger: logger,
	}, nil
}

// Read asks the backend to evaluate a view call such as
// "totalSupply():(uint256)" on address. Cached reads are memoised for
// CacheTTL.
func (c *Client) Read(ctx context.Context, address common.Address, method string, params []interface{}, cache bool) (json.RawMessage, error) {
	if params == nil {
		params = []interface{}{}
	}
	body, err := json.Marshal(readRequest{Method: method, Params: params, Cache: cache})
	if err != nil {
		return nil, fmt.Errorf("marshal read request: %w", err)
	}

	key := address.Hex() + "|" + string(body)
	if cache {
		if data, ok := c.cache.Get(key); ok {
			return data, nil
		}
	}

	var resp readResponse
	url := fmt.Sprintf("%s/read/%s", c.cfg.BaseURL, address.Hex())
	if err := c.do(ctx, http.MethodPost, url, body, &resp); err != nil {
		return nil, fmt.Errorf("read %s %s: %w", address.Hex(), method, err)
	}
	if cache {
		c.cache.Add(key, resp.Data)
	}
	return resp.Data, nil
}

// ReadDecimal is Read for numeric results.
func (c *Client) ReadDecimal(ctx context.Context, address common.Address, method string, params []interface{}, cache bool) (decimal.Decimal, error) {
	data, err := c.Read(ctx, address, method, params, cache)
	if err != nil {
		return decimal.Zero, err
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return decimal.Zero, fmt.Errorf("parse %s result %s: %w", method, string(data), err)
	}
	return d, nil
}

// PoolActive reports whether the backend considers pid open for deposits.
func (c *Client) PoolActive(ctx context.Context, pid uint64) (bool, error) {
	var resp poolActiveResponse
	url := c.cfg.BaseURL + "/poolActive/" + strconv.FormatUint(pid, 10)
	if err := c.do(ctx, http.MethodGet, url, nil, &resp); err != nil {
		return false, fmt.Errorf("pool active %d: %w", pid, err)
	}
	return resp.Active, nil
}

func (c *Client) do(ctx context.Context, method, url string, body []byte, out interface{}) error {
	return withRetry(ctx, c.cfg.MaxRetries, c.cfg.RetryBackoff, func(ctx context.Context) error {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return permanent(err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			c.logger.Debug("api request failed", zap.String("url", url), zap.Error(err))
			return err
		}
		defer resp.Body.Close()

		payload, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if resp.StatusCode >= 500 {
			c.logger.Debug("api server error", zap.String("url", url), zap.Int("status", resp.StatusCode))
			return fmt.Errorf("status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return permanent(fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(payload))))
		}
		if err := json.Unmarshal(payload, out); err != nil {
			return permanent(fmt.Errorf("decode response: %w", err))
		}
		return nil
	})
}

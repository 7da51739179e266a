package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ChainID != 56 || cfg.Listen != ":8080" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.RetryBackoff != 300*time.Millisecond || cfg.MaxRetries != 3 {
		t.Fatalf("unexpected retry defaults: %+v", cfg)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Fatalf("unexpected cache ttl: %s", cfg.CacheTTL)
	}
	if cfg.Pools != nil {
		t.Fatalf("expected no pool filter, got %v", cfg.Pools)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "rpc: https://file.example\napi: https://api.example\nchain-id: 97\npools: \"0, 1\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LAUNCHPOOL_RPC", "https://env.example")
	t.Setenv("LAUNCHPOOL_GAS_LIMIT", "123456")
	t.Setenv("LAUNCHPOOL_CACHE_TTL", "5s")

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RPCURL != "https://env.example" {
		t.Fatalf("env should win over file: %q", cfg.RPCURL)
	}
	if cfg.API != "https://api.example" || cfg.ChainID != 97 {
		t.Fatalf("file values lost: %+v", cfg)
	}
	if cfg.GasLimit != 123456 {
		t.Fatalf("gas limit %d", cfg.GasLimit)
	}
	if cfg.CacheTTL != 5*time.Second {
		t.Fatalf("cache ttl %s", cfg.CacheTTL)
	}
	if len(cfg.Pools) != 2 || cfg.Pools[0] != 0 || cfg.Pools[1] != 1 {
		t.Fatalf("pools %v", cfg.Pools)
	}
}

func TestLoadFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("listen", ":8080", "")
	flags.StringSlice("pools", nil, "")
	if err := flags.Parse([]string{"--listen", ":9999", "--pools", "2,3"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg, err := Load("", flags)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Listen != ":9999" {
		t.Fatalf("listen %q", cfg.Listen)
	}
	if len(cfg.Pools) != 2 || cfg.Pools[1] != 3 {
		t.Fatalf("pools %v", cfg.Pools)
	}
}

func TestLoadRejectsBadPool(t *testing.T) {
	t.Setenv("LAUNCHPOOL_POOLS", "0,x")
	if _, err := Load("", nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestMissingConfigFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil {
		t.Fatalf("expected error")
	}
}

package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	RPCURL       string
	ChainID      uint64
	API          string
	PrivateKey   string
	Account      string
	Store        string
	PGDSN        string
	LogLevel     string
	Listen       string
	GasLimit     uint64
	MaxRetries   int
	RetryBackoff time.Duration
	CacheSize    int
	CacheTTL     time.Duration
	SiteURL      string
	Out          string
	Price        string
	Pools        []uint64
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LAUNCHPOOL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("chain-id", uint64(56))
	v.SetDefault("store", "./data/launchpool.json")
	v.SetDefault("log-level", "info")
	v.SetDefault("listen", ":8080")
	v.SetDefault("gas-limit", uint64(300000))
	v.SetDefault("max-retries", 3)
	v.SetDefault("retry-backoff", 300*time.Millisecond)
	v.SetDefault("cache-size", 256)
	v.SetDefault("cache-ttl", 30*time.Second)
	v.SetDefault("site-url", "http://launchpoolx.bscex.org/#/?referral=")
	v.SetDefault("out", "./data/farm_snapshots.jsonl")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	poolIDs, err := parsePIDs(getStringSlice(v, "pools"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		RPCURL:       v.GetString("rpc"),
		ChainID:      v.GetUint64("chain-id"),
		API:          v.GetString("api"),
		PrivateKey:   v.GetString("private-key"),
		Account:      v.GetString("account"),
		Store:        v.GetString("store"),
		PGDSN:        v.GetString("pg-dsn"),
		LogLevel:     v.GetString("log-level"),
		Listen:       v.GetString("listen"),
		GasLimit:     v.GetUint64("gas-limit"),
		MaxRetries:   v.GetInt("max-retries"),
		RetryBackoff: v.GetDuration("retry-backoff"),
		CacheSize:    v.GetInt("cache-size"),
		CacheTTL:     v.GetDuration("cache-ttl"),
		SiteURL:      v.GetString("site-url"),
		Out:          v.GetString("out"),
		Price:        v.GetString("price"),
		Pools:        poolIDs,
	}

	return cfg, nil
}

func parsePIDs(items []string) ([]uint64, error) {
	if len(items) == 0 {
		return nil, nil
	}
	out := make([]uint64, 0, len(items))
	for _, item := range items {
		pid, err := strconv.ParseUint(item, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid pool id %q: %w", item, err)
		}
		out = append(out, pid)
	}
	return out, nil
}

func getStringSlice(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}

	val := v.Get(key)
	switch typed := val.(type) {
	case []string:
		return cleanStrings(typed)
	case string:
		return splitAndClean(typed)
	case []interface{}:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return cleanStrings(items)
	default:
		return nil
	}
}

func splitAndClean(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	return cleanStrings(parts)
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

package config

import (
	"fmt"
	"strings"
	"time"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Feed orders. OrderLegacy compares post ids as strings; OrderChronological
// compares the millisecond prefix encoded in the id.
const (
	OrderLegacy        = "legacy"
	OrderChronological = "chronological"
)

// NormalizeFeedOrder trims and lowercases s and checks it names a known
// order. Empty means OrderLegacy.
func NormalizeFeedOrder(s string) (string, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "":
		return OrderLegacy, nil
	case OrderLegacy, OrderChronological:
		return v, nil
	}
	return "", fmt.Errorf("feed order must be legacy or chronological; got %q", s)
}

// Config holds runtime settings for the foorum CLI.
type Config struct {
	StorageBackend string        `env:"FOORUM_STORAGE_BACKEND, overwrite"`
	DataDir        string        `env:"FOORUM_DATA_DIR, overwrite"`
	DatabaseFile   string        `env:"FOORUM_DATABASE_FILE, overwrite"`
	RedisAddr      string        `env:"FOORUM_REDIS_ADDR, overwrite"`
	RedisDB        int           `env:"FOORUM_REDIS_DB, overwrite"`
	RedisPrefix    string        `env:"FOORUM_REDIS_PREFIX, overwrite"`
	RedisTimeout   time.Duration `env:"FOORUM_REDIS_TIMEOUT, overwrite"`
	LogLevel       string        `env:"FOORUM_LOG_LEVEL, overwrite"`
	LogFormat      string        `env:"FOORUM_LOG_FORMAT, overwrite"`
	FeedOrder      string        `env:"FOORUM_FEED_ORDER, overwrite"`
	SeedPosts      bool          `env:"FOORUM_SEED_POSTS, overwrite"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageBackend = BackendSQLite
	c.DataDir = "data"
	c.DatabaseFile = "foorum.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisDB = 0
	c.RedisPrefix = "foorum:"
	c.RedisTimeout = 5 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "console"
	c.FeedOrder = OrderLegacy
	c.SeedPosts = true
}

// Validate rejects values no component knows how to handle.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendSQLite, BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("storage backend must be one of sqlite, memory, redis; got %q", c.StorageBackend)
	}
	if _, err := NormalizeFeedOrder(c.FeedOrder); err != nil {
		return err
	}
	if c.StorageBackend == BackendSQLite && c.DatabaseFile == "" {
		return fmt.Errorf("database file must not be empty")
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays the config
// file (if any), environment variables and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg, nil)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/foorum/internal/flagx"
	"github.com/dmitrijs2005/foorum/internal/timex"
)

// fileConfig is the DTO for config files. Pointer fields tell "absent" from
// "zero" so a partial file only overrides what it names.
type fileConfig struct {
	StorageBackend *string         `json:"storage_backend" yaml:"storage_backend"`
	DataDir        *string         `json:"data_dir" yaml:"data_dir"`
	DatabaseFile   *string         `json:"database_file" yaml:"database_file"`
	RedisAddr      *string         `json:"redis_addr" yaml:"redis_addr"`
	RedisDB        *int            `json:"redis_db" yaml:"redis_db"`
	RedisPrefix    *string         `json:"redis_prefix" yaml:"redis_prefix"`
	RedisTimeout   *timex.Duration `json:"redis_timeout" yaml:"redis_timeout"`
	LogLevel       *string         `json:"log_level" yaml:"log_level"`
	LogFormat      *string         `json:"log_format" yaml:"log_format"`
	FeedOrder      *string         `json:"feed_order" yaml:"feed_order"`
	SeedPosts      *bool           `json:"seed_posts" yaml:"seed_posts"`
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// parseFile overlays cfg with the file named by -c/-config. No flag means no
// change. Read or decode errors panic, like flag errors do.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	setIf(&cfg.StorageBackend, fc.StorageBackend)
	setIf(&cfg.DataDir, fc.DataDir)
	setIf(&cfg.DatabaseFile, fc.DatabaseFile)
	setIf(&cfg.RedisAddr, fc.RedisAddr)
	setIf(&cfg.RedisDB, fc.RedisDB)
	setIf(&cfg.RedisPrefix, fc.RedisPrefix)
	if fc.RedisTimeout != nil {
		cfg.RedisTimeout = fc.RedisTimeout.Duration
	}
	setIf(&cfg.LogLevel, fc.LogLevel)
	setIf(&cfg.LogFormat, fc.LogFormat)
	setIf(&cfg.FeedOrder, fc.FeedOrder)
	setIf(&cfg.SeedPosts, fc.SeedPosts)
}

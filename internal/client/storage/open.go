package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dmitrijs2005/foorum/internal/client/config"
	"github.com/dmitrijs2005/foorum/internal/client/repositories/kv"
	"github.com/dmitrijs2005/foorum/internal/filex"
	"github.com/dmitrijs2005/foorum/internal/logging"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the key/value store selected by cfg.StorageBackend. The
// returned closer releases the underlying connection.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger) (kv.Repository, io.Closer, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		log.Info(ctx, "using in-memory store, nothing will survive exit")
		return kv.NewMemoryRepository(), nopCloser{}, nil

	case config.BackendRedis:
		client, err := ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.RedisTimeout)
		if err != nil {
			return nil, nil, err
		}
		log.Info(ctx, "using redis store", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
		return kv.NewRedisRepository(client, cfg.RedisPrefix), client, nil

	case config.BackendSQLite, "":
		dir, err := filex.EnsureDir(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("data dir: %w", err)
		}
		path := filepath.Join(dir, cfg.DatabaseFile)
		db, err := InitDatabase(ctx, path)
		if err != nil {
			return nil, nil, fmt.Errorf("init database %s: %w", path, err)
		}
		log.Info(ctx, "using sqlite store", "path", path)
		return kv.NewSQLiteRepository(db), db, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

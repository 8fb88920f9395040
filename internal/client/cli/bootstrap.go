package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/foorum/internal/client/config"
	"github.com/dmitrijs2005/foorum/internal/client/directory"
	"github.com/dmitrijs2005/foorum/internal/client/metrics"
	"github.com/dmitrijs2005/foorum/internal/client/persistence"
	"github.com/dmitrijs2005/foorum/internal/client/services"
	"github.com/dmitrijs2005/foorum/internal/client/storage"
	"github.com/dmitrijs2005/foorum/internal/logging"
)

// Bootstrap opens the configured store and builds an App over it. The
// returned closer releases the store and must be called after Run.
func Bootstrap(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) (*App, io.Closer, error) {
	log := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	repo, closer, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	m := metrics.New()
	clientID, err := persistence.New(repo, log, m).ClientID(ctx)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	log = log.With("client_id", clientID)
	store := persistence.New(repo, log, m)

	order, err := services.ParseOrder(cfg.FeedOrder)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}

	dir := directory.Default()
	feed := services.NewFeedService(store, dir, log, m, order)
	if cfg.SeedPosts {
		if _, err := feed.SeedIfEmpty(ctx, services.DemoPosts()); err != nil {
			_ = closer.Close()
			return nil, nil, err
		}
	}

	sessions, err := services.NewSessionManager(ctx, dir, store, log, m)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}

	log.Debug(ctx, "client ready", "backend", cfg.StorageBackend, "order", order)
	return NewApp(sessions, feed, m, log, in, out), closer, nil
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/foorum/internal/client/directory"
	"github.com/dmitrijs2005/foorum/internal/client/metrics"
	"github.com/dmitrijs2005/foorum/internal/client/persistence"
	"github.com/dmitrijs2005/foorum/internal/client/repositories/kv"
)

type fixture struct {
	repo    *kv.MemoryRepository
	store   *persistence.Adapter
	dir     *directory.Directory
	metrics *metrics.Metrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := kv.NewMemoryRepository()
	m := metrics.New()
	return &fixture{
		repo:    repo,
		store:   persistence.New(repo, nil, m),
		dir:     directory.Default(),
		metrics: m,
	}
}

func (f *fixture) sessions(t *testing.T) *SessionManager {
	t.Helper()
	s, err := NewSessionManager(context.Background(), f.dir, f.store, nil, f.metrics)
	require.NoError(t, err)
	return s
}

func (f *fixture) feed(order Order) *FeedService {
	return NewFeedService(f.store, f.dir, nil, f.metrics, order)
}

func (f *fixture) counter(t *testing.T, name, labels string) float64 {
	t.Helper()
	samples, err := f.metrics.Snapshot()
	require.NoError(t, err)
	for _, s := range samples {
		if s.Name == name && s.Labels == labels {
			return s.Value
		}
	}
	return 0
}

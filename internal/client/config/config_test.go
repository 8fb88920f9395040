package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, BackendSQLite, c.StorageBackend)
	assert.Equal(t, "data", c.DataDir)
	assert.Equal(t, "foorum.db", c.DatabaseFile)
	assert.Equal(t, 5*time.Second, c.RedisTimeout)
	assert.Equal(t, OrderLegacy, c.FeedOrder)
	assert.True(t, c.SeedPosts)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_UsesDefaultsWithoutSources(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"foorum"}

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, BackendSQLite, cfg.StorageBackend)
	assert.Equal(t, OrderLegacy, cfg.FeedOrder)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		var c Config
		c.LoadDefaults()
		return c
	}

	c := base()
	c.StorageBackend = "etcd"
	require.ErrorContains(t, c.Validate(), "storage backend")

	c = base()
	c.FeedOrder = "random"
	require.ErrorContains(t, c.Validate(), "feed order")

	for _, order := range []string{"Chronological", " LEGACY ", ""} {
		c = base()
		c.FeedOrder = order
		require.NoError(t, c.Validate(), order)
	}

	c = base()
	c.DatabaseFile = ""
	require.ErrorContains(t, c.Validate(), "database file")

	c = base()
	c.StorageBackend = BackendMemory
	c.DatabaseFile = ""
	require.NoError(t, c.Validate())
}

func TestNormalizeFeedOrder(t *testing.T) {
	for in, want := range map[string]string{
		"":               OrderLegacy,
		"legacy":         OrderLegacy,
		" Chronological": OrderChronological,
	} {
		got, err := NormalizeFeedOrder(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := NormalizeFeedOrder("newest")
	require.ErrorContains(t, err, `got "newest"`)
}

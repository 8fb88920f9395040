package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/foorum/internal/client/config"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.StorageBackend = backend
	cfg.DataDir = t.TempDir()
	cfg.LogLevel = "error"
	return cfg
}

func TestBootstrap_MemorySeedsPosts(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.BackendMemory)

	var out bytes.Buffer
	app, closer, err := Bootstrap(ctx, cfg, strings.NewReader(""), &out)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer.Close() })
	defer app.Close()

	posts, err := app.feed.LoadPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)

	// Seed authors are not in the directory.
	require.NoError(t, app.Feed(ctx))
	require.Contains(t, out.String(), "No posts yet")
}

func TestBootstrap_NoSeed(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.BackendMemory)
	cfg.SeedPosts = false

	app, closer, err := Bootstrap(ctx, cfg, strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer.Close() })
	defer app.Close()

	posts, err := app.feed.LoadPosts(ctx)
	require.NoError(t, err)
	require.Empty(t, posts)
}

func TestBootstrap_SQLiteSessionSurvivesRestart(t *testing.T) {
	captureREPL(t)
	ctx := context.Background()
	cfg := testConfig(t, config.BackendSQLite)
	stubPasswordsFromInput(t)

	app, closer, err := Bootstrap(ctx, cfg, strings.NewReader(lines("login", "demo@example.com", "password123", "exit")), &bytes.Buffer{})
	require.NoError(t, err)
	app.Run(ctx)
	require.NoError(t, closer.Close())
	require.FileExists(t, filepath.Join(cfg.DataDir, cfg.DatabaseFile))

	app, closer, err = Bootstrap(ctx, cfg, strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, err)
	defer func() { _ = closer.Close() }()
	defer app.Close()

	require.True(t, app.isLoggedIn())
	require.Equal(t, "foorum (Demo User)> ", app.getStatus())
}

func TestBootstrap_BadOrder(t *testing.T) {
	cfg := testConfig(t, config.BackendMemory)
	cfg.FeedOrder = "sideways"

	_, _, err := Bootstrap(context.Background(), cfg, strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
}

func TestBootstrap_UnknownBackend(t *testing.T) {
	cfg := testConfig(t, "tape")

	_, _, err := Bootstrap(context.Background(), cfg, strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
}

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestSlogLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestSlogLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "author missing", "post_id", "p1")
	log.Info(ctx, "session restored", "user_id", "1")
	log.Warn(ctx, "corrupt record", "key", "foorum_posts")
	log.Error(ctx, "store failed", "op", "set")

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", `msg="author missing"`, "post_id=p1",
		"level=INFO", `msg="session restored"`, "user_id=1",
		"level=WARN", "key=foorum_posts",
		"level=ERROR", "op=set",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestSlogLogger(t)

	log.With("client_id", "c-1").Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	for _, want := range []string{"level=INFO", "msg=hello", "client_id=c-1", "k=v"} {
		assert.Contains(t, out, want)
	}
}

func TestNewTextLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newTextLogger(&buf, zerolog.WarnLevel)
	ctx := context.Background()

	log.Info(ctx, "session restored")
	log.Warn(ctx, "corrupt record", "key", "foorum_session")

	out := buf.String()
	assert.NotContains(t, out, "session restored")
	assert.Contains(t, out, "key=foorum_session")
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, LevelTrace, slogLevel(zerolog.TraceLevel))
	assert.Equal(t, slog.LevelDebug, slogLevel(zerolog.DebugLevel))
	assert.Equal(t, slog.LevelInfo, slogLevel(zerolog.InfoLevel))
	assert.Equal(t, slog.LevelWarn, slogLevel(zerolog.WarnLevel))
	assert.Equal(t, slog.LevelError, slogLevel(zerolog.ErrorLevel))
}

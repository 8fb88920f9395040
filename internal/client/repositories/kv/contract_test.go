package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract exercises the behaviour every Repository must share.
// newRepo must return an empty repository.
func runContract(t *testing.T, newRepo func(t *testing.T) Repository) {
	t.Run("set then get", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, "k1", []byte{0x01, 0x02}))
		v, err := r.Get(ctx, "k1")
		require.NoError(t, err)
		require.Equal(t, []byte{0x01, 0x02}, v)
	})

	t.Run("absent key is nil nil", func(t *testing.T) {
		r := newRepo(t)
		v, err := r.Get(context.Background(), "absent")
		require.NoError(t, err)
		require.Nil(t, v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, "k", []byte("old")))
		require.NoError(t, r.Set(ctx, "k", []byte("new")))
		v, err := r.Get(ctx, "k")
		require.NoError(t, err)
		require.Equal(t, []byte("new"), v)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, "x", []byte{0x01}))
		require.NoError(t, r.Delete(ctx, "x"))
		v, err := r.Get(ctx, "x")
		require.NoError(t, err)
		require.Nil(t, v)
		require.NoError(t, r.Delete(ctx, "x"))
	})

	t.Run("clear removes everything", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, "a", []byte{1}))
		require.NoError(t, r.Set(ctx, "b", []byte{2}))
		require.NoError(t, r.Clear(ctx))
		for _, k := range []string{"a", "b"} {
			v, err := r.Get(ctx, k)
			require.NoError(t, err)
			assert.Nil(t, v)
		}
	})

	t.Run("update sees old value and writes new one", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		var seen [][]byte
		appendByte := func(old []byte) ([]byte, error) {
			seen = append(seen, old)
			return append(old, 'x'), nil
		}
		require.NoError(t, r.Update(ctx, "u", appendByte))
		require.NoError(t, r.Update(ctx, "u", appendByte))

		require.Nil(t, seen[0])
		require.Equal(t, []byte("x"), seen[1])
		v, err := r.Get(ctx, "u")
		require.NoError(t, err)
		require.Equal(t, []byte("xx"), v)
	})

	t.Run("update aborted by fn error", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()
		boom := errors.New("boom")

		require.NoError(t, r.Set(ctx, "u", []byte("keep")))
		err := r.Update(ctx, "u", func([]byte) ([]byte, error) { return nil, boom })
		require.ErrorIs(t, err, boom)

		v, err := r.Get(ctx, "u")
		require.NoError(t, err)
		require.Equal(t, []byte("keep"), v)
	})
}

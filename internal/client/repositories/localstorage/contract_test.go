package localstorage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract exercises the behaviour every Repository must share.
func runContract(t *testing.T, newRepo func(t *testing.T) Repository) {
	t.Helper()
	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "user:access", []byte(`"tok"`)))

		v, ok, err := r.Get(ctx, "user:access")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, []byte(`"tok"`), v)
	})

	t.Run("absent key", func(t *testing.T) {
		r := newRepo(t)
		v, ok, err := r.Get(ctx, "absent")
		require.NoError(t, err)
		require.False(t, ok)
		require.Nil(t, v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "k", []byte("old")))
		require.NoError(t, r.Set(ctx, "k", []byte("new")))

		v, ok, err := r.Get(ctx, "k")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, []byte("new"), v)
	})

	t.Run("delete many is idempotent", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "a", []byte("1")))
		require.NoError(t, r.Set(ctx, "b", []byte("2")))
		require.NoError(t, r.Set(ctx, "c", []byte("3")))

		require.NoError(t, r.Delete(ctx, "a", "b", "missing"))
		require.NoError(t, r.Delete(ctx, "a", "b"))
		require.NoError(t, r.Delete(ctx))

		m, err := r.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string][]byte{"c": []byte("3")}, m)
	})

	t.Run("clear", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "a", []byte{1}))
		require.NoError(t, r.Set(ctx, "b", []byte{2}))
		require.NoError(t, r.Clear(ctx))

		m, err := r.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, m)
	})
}

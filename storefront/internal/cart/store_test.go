package cart

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStores(t *testing.T) {
	tests := []struct {
		name  string
		store func(t *testing.T) Store
	}{
		{
			name:  "memory",
			store: func(t *testing.T) Store { return NewMemoryStore() },
		},
		{
			name:  "file",
			store: func(t *testing.T) Store { return NewFileStore(filepath.Join(t.TempDir(), "carts")) },
		},
		{
			name: "redis",
			store: func(t *testing.T) Store {
				mr := miniredis.RunT(t)
				client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
				t.Cleanup(func() { _ = client.Close() })
				return NewRedisStore(client, "alice", 0)
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ctx := context.Background()
			store := testCase.store(t)

			_, err := store.Get(ctx, StorageKey)
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Set(ctx, StorageKey, `[{"id":1}]`))
			require.NoError(t, store.Set(ctx, StorageKey, `[]`))

			got, err := store.Get(ctx, StorageKey)
			require.NoError(t, err)
			assert.Equal(t, `[]`, got)
		})
	}
}

func TestFileStore_SurvivesNewInstance(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	require.NoError(t, NewFileStore(dir).Set(ctx, StorageKey, `[{"id":9}]`))

	got, err := NewFileStore(dir).Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":9}]`, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cart.json", entries[0].Name())
}

func TestMemoryStore_ZeroValue(t *testing.T) {
	ctx := context.Background()
	var store MemoryStore

	_, err := store.Get(ctx, StorageKey)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, StorageKey, `[]`))
	got, err := store.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.Equal(t, `[]`, got)
}

func TestFileStore_KeysStayInsideDir(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	dir := filepath.Join(root, "carts")
	store := NewFileStore(dir)

	require.NoError(t, store.Set(ctx, "wishlist", `["a"]`))
	require.NoError(t, store.Set(ctx, "../escape", `["b"]`))

	got, err := store.Get(ctx, "../escape")
	require.NoError(t, err)
	assert.Equal(t, `["b"]`, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	assert.ElementsMatch(t, []string{"wishlist.json", "__escape.json"}, names)

	rootEntries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, rootEntries, 1)
	assert.Equal(t, "carts", rootEntries[0].Name())
}

func TestSafeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "cart", want: "cart"},
		{in: "alice", want: "alice"},
		{in: "../..", want: "___"},
		{in: "a/b", want: "a_b"},
		{in: `a\b`, want: "a_b"},
		{in: "", want: "default"},
		{in: ".", want: "default"},
	}

	for _, testCase := range tests {
		t.Run(testCase.in, func(t *testing.T) {
			got := SafeName(testCase.in)
			assert.Equal(t, testCase.want, got)
			assert.Equal(t, got, filepath.Base(got))
		})
	}
}

func TestRedisStore_SessionsAndTTL(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	alice := NewRedisStore(client, "alice", time.Hour)
	bob := NewRedisStore(client, "bob", 0)

	require.NoError(t, alice.Set(ctx, StorageKey, `[{"id":1}]`))

	_, err := bob.Get(ctx, StorageKey)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.True(t, mr.Exists("storefront:alice:cart"))
	assert.Equal(t, time.Hour, mr.TTL("storefront:alice:cart"))

	mr.FastForward(2 * time.Hour)
	_, err = alice.Get(ctx, StorageKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEngine_WithRedisStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedisStore(client, "s1", 0)

	engine := NewEngine(store)
	added, err := engine.Add(ctx, pizza())
	require.NoError(t, err)

	reloaded := NewEngine(store).Load(ctx)
	require.Len(t, reloaded, 1)
	assert.Equal(t, added, reloaded[0])
}

package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zini/nella/pkg/tokencache"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()

	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "cache_test.db"))
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestStore_SaveLoadInvalidate(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	// Load before any save must report a miss
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, tokencache.ErrTokenNotFound)

	err = store.Save(ctx, "bolt-token")
	require.NoError(t, err)

	entry, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bolt-token", entry.Token)
	assert.Less(t, entry.Age, 5*time.Second)

	require.NoError(t, store.Invalidate(ctx))

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, tokencache.ErrTokenNotFound)

	// Invalidating an empty store is not an error
	assert.NoError(t, store.Invalidate(ctx))
}

func TestStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	require.NoError(t, store.Save(ctx, "first"))
	require.NoError(t, store.Save(ctx, "second"))

	entry, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", entry.Token)
}

func TestEncryptedStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "cache_test.db")

	store, err := NewEncrypted(ctx, dbPath, "correct horse battery staple")
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "encrypted-token"))

	entry, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "encrypted-token", entry.Token)

	require.NoError(t, store.Close())

	// Reopen with the same passphrase, the persisted salt must yield the
	// same key
	store, err = NewEncrypted(ctx, dbPath, "correct horse battery staple")
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	entry, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "encrypted-token", entry.Token)
}

func TestEncryptedStore_WrongPassphrase(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "cache_test.db")

	store, err := NewEncrypted(ctx, dbPath, "right passphrase")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "secret"))
	require.NoError(t, store.Close())

	store, err = NewEncrypted(ctx, dbPath, "wrong passphrase")
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, tokencache.ErrTokenCorrupted)
}

func TestNewEncrypted_EmptyPassphrase(t *testing.T) {
	ctx := context.Background()
	_, err := NewEncrypted(ctx, filepath.Join(t.TempDir(), "cache_test.db"), "")
	assert.Error(t, err)
}

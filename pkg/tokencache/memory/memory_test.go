package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zini/nella/pkg/tokencache"
)

func TestStore_SaveLoadInvalidate(t *testing.T) {
	ctx := context.Background()
	store := New()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, tokencache.ErrTokenNotFound)

	require.NoError(t, store.Save(ctx, "mem-token"))

	entry, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mem-token", entry.Token)
	assert.Less(t, entry.Age, time.Second)

	require.NoError(t, store.Invalidate(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, tokencache.ErrTokenNotFound)

	assert.NoError(t, store.Invalidate(ctx))
}

func TestStore_SetAge(t *testing.T) {
	ctx := context.Background()
	store := New()

	require.NoError(t, store.Save(ctx, "mem-token"))
	store.SetAge(3 * time.Hour)

	entry, err := store.Load(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, entry.Age, 3*time.Hour)
}

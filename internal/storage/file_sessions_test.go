package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/endoclin/admin/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSessionStore_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileSessionStore(filepath.Join(t.TempDir(), "sessions.json"), internal.NopLogger())
	require.NoError(t, err)
	defer store.Close()

	_, ok, err := store.Get(ctx, "ns1", "authToken")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "ns1", "authToken", "tok"))
	require.NoError(t, store.Set(ctx, "ns1", "isAuthenticated", "true"))
	require.NoError(t, store.Set(ctx, "ns2", "authToken", "other"))

	v, ok, err := store.Get(ctx, "ns1", "authToken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", v)

	require.NoError(t, store.Remove(ctx, "ns1", "authToken", "isAuthenticated"))
	_, ok, _ = store.Get(ctx, "ns1", "isAuthenticated")
	assert.False(t, ok)

	v, ok, _ = store.Get(ctx, "ns2", "authToken")
	assert.True(t, ok)
	assert.Equal(t, "other", v)
}

func TestFileSessionStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "sessions.json")

	store, err := NewFileSessionStore(path, internal.NopLogger())
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "browser", "isAuthenticated", "true"))
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)

	reopened, err := NewFileSessionStore(path, internal.NopLogger())
	require.NoError(t, err)
	defer reopened.Close()
	v, ok, err := reopened.Get(ctx, "browser", "isAuthenticated")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestFileSessionStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	store, err := NewFileSessionStore(path, internal.NopLogger())
	require.NoError(t, err)
	defer store.Close()
}

func TestFileSessionStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileSessionStore(path, internal.NopLogger())
	assert.Error(t, err)
}

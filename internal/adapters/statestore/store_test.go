package statestore_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsdk/internal/adapters/statestore"
	"go.trai.ch/tsdk/internal/core/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := statestore.NewStore(root)
	ctx := context.Background()

	// Unset keys read as false.
	value, err := store.GetBool(ctx, domain.UseWorkspaceTsdkStateKey)
	require.NoError(t, err)
	assert.False(t, value)

	require.NoError(t, store.SetBool(ctx, domain.UseWorkspaceTsdkStateKey, true))

	value, err = store.GetBool(ctx, domain.UseWorkspaceTsdkStateKey)
	require.NoError(t, err)
	assert.True(t, value)

	// The store file lives under the metadata directory.
	data, err := os.ReadFile(filepath.Join(root, ".tsdk", "flags.json"))
	require.NoError(t, err)

	flags := make(map[string]bool)
	require.NoError(t, json.Unmarshal(data, &flags))
	assert.True(t, flags[domain.UseWorkspaceTsdkStateKey])
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	ctx := context.Background()

	require.NoError(t, statestore.NewStore(root).SetBool(ctx, "someFlag", true))

	value, err := statestore.NewStore(root).GetBool(ctx, "someFlag")
	require.NoError(t, err)
	assert.True(t, value)
}

func TestStore_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	store := statestore.NewStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.SetBool(ctx, "a", true))
	require.NoError(t, store.SetBool(ctx, "b", false))

	a, err := store.GetBool(ctx, "a")
	require.NoError(t, err)
	b, err := store.GetBool(ctx, "b")
	require.NoError(t, err)

	assert.True(t, a)
	assert.False(t, b)
}

func TestStore_CorruptFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".tsdk"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".tsdk", "flags.json"), []byte("not json"), 0o644))

	store := statestore.NewStore(root)
	_, err := store.GetBool(context.Background(), "any")

	assert.ErrorIs(t, err, domain.ErrStateUnmarshalFailed)
}

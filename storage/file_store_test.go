package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	blob, found, err := store.Get(context.Background(), KeyRooms)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, blob)
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, KeyRooms, []byte(`[{"id":1}]`)))
	require.NoError(t, store.Set(ctx, KeyRooms, []byte(`[{"id":2}]`)))

	blob, found, err := store.Get(ctx, KeyRooms)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":2}]`, string(blob))
}

func TestFileStoreKeysMapToSeparateFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, KeyRooms, []byte("[]")))
	require.NoError(t, store.Set(ctx, KeyBookings, []byte("[]")))
	require.NoError(t, store.Set(ctx, KeyUI, []byte("{}")))

	for _, name := range []string{"hotel_rooms.json", "hotel_bookings.json", "hotel_ui.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err)
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, KeyUI, []byte("{}")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hotel_ui.json", entries[0].Name())
}

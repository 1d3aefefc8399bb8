package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)

	key, err := store.Store("Picture.PNG", strings.NewReader("payload"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, key))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	// Keys are unique even for identical names
	key2, err := store.Store("Picture.PNG", strings.NewReader("payload"))
	require.NoError(t, err)
	assert.NotEqual(t, key, key2)

	require.NoError(t, store.Delete(key))
	_, err = os.Stat(filepath.Join(dir, key))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskStoreDeleteMissing(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete("never-stored.jpg"))
	assert.NoError(t, store.Delete(""))
}

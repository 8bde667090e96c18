package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Vovarama1992/voice_bot/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_CreatesDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "audio")

	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalStore_SaveRoundTrip(t *testing.T) {
	t.Parallel()

	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	data := []byte{0xff, 0xf3, 0x01, 0x02}

	path, err := store.Save("voice_20260101_120000.mp3", data)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

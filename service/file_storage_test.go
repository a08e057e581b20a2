package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorageStoreAndExists(t *testing.T) {
	fs := NewFileStorage(t.TempDir())
	id := uuid.New()

	name, err := fs.Store([]byte("gambar"), "nasi-goreng.jpg", id)
	require.NoError(t, err)
	assert.Equal(t, "menu_"+id.String()+".jpg", name)
	assert.True(t, fs.Exists(name))
}

func TestFileStorageExtension(t *testing.T) {
	fs := NewFileStorage(t.TempDir())
	id := uuid.New()

	tests := []struct {
		original string
		want     string
	}{
		{"photo.png", "menu_" + id.String() + ".png"},
		{"archive.tar.gz", "menu_" + id.String() + ".gz"},
		{"noextension", "menu_" + id.String()},
		{"trailingdot.", "menu_" + id.String() + "."},
	}
	for _, tt := range tests {
		name, err := fs.Store([]byte("x"), tt.original, id)
		require.NoError(t, err)
		assert.Equal(t, tt.want, name)
	}
}

func TestFileStorageOverwrite(t *testing.T) {
	fs := NewFileStorage(t.TempDir())
	id := uuid.New()

	first, err := fs.Store([]byte("first"), "a.png", id)
	require.NoError(t, err)
	second, err := fs.Store([]byte("second"), "b.png", id)
	require.NoError(t, err)

	// Same owner id, same extension: same deterministic name, latest bytes win.
	assert.Equal(t, first, second)
	data, err := os.ReadFile(fs.Load(second))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestFileStorageCreatesUploadDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	fs := NewFileStorage(dir)

	_, err := fs.Store([]byte("x"), "a.jpg", uuid.New())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStorageDelete(t *testing.T) {
	fs := NewFileStorage(t.TempDir())
	id := uuid.New()

	name, err := fs.Store([]byte("x"), "a.jpg", id)
	require.NoError(t, err)

	assert.True(t, fs.Delete(name))
	assert.False(t, fs.Exists(name))
	assert.False(t, fs.Delete(name), "second delete reports nothing removed")
}

func TestFileStorageEmptyFilename(t *testing.T) {
	fs := NewFileStorage(t.TempDir())

	assert.False(t, fs.Exists(""))
	assert.False(t, fs.Delete(""))
}

func TestFileStorageLoadDoesNotCheckExistence(t *testing.T) {
	fs := NewFileStorage("/tmp/resto-uploads")
	assert.Equal(t, filepath.Join("/tmp/resto-uploads", "missing.png"), fs.Load("missing.png"))
}

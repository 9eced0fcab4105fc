package images

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesFileAndReturnsPath(t *testing.T) {
	dir, err := NewDir(filepath.Join(t.TempDir(), "images"))
	require.NoError(t, err)

	data := []byte("jpeg bytes")
	path, err := dir.Save(data)
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, dir.Path(), filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "IMG_"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestSaveUniquesCollidingNames(t *testing.T) {
	dir, err := NewDir(t.TempDir())
	require.NoError(t, err)

	// Two saves in the same millisecond must not overwrite each other.
	first, err := dir.Save([]byte("one"))
	require.NoError(t, err)
	second, err := dir.Save([]byte("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestRemove(t *testing.T) {
	dir, err := NewDir(t.TempDir())
	require.NoError(t, err)

	path, err := dir.Save([]byte("bytes"))
	require.NoError(t, err)

	require.NoError(t, dir.Remove(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Removing an already-gone file is not an error.
	require.NoError(t, dir.Remove(path))
}

func TestRemoveRefusesPathsOutsideDir(t *testing.T) {
	dir, err := NewDir(t.TempDir())
	require.NoError(t, err)

	outside := filepath.Join(t.TempDir(), "elsewhere.jpg")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	assert.ErrorIs(t, dir.Remove(outside), ErrOutsideDir)

	_, err = os.Stat(outside)
	assert.NoError(t, err, "file outside the directory must be untouched")
}

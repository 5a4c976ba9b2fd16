package osfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func TestListMissingRootReturnsEmpty(t *testing.T) {
	store := Store{}

	files, err := store.List(filepath.Join(t.TempDir(), "does-not-exist"), "*.pst", false)

	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestListShallowMatchesPatternOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.pst"), 10)
	writeFile(t, filepath.Join(dir, "b.pst"), 20)
	writeFile(t, filepath.Join(dir, "notes.txt"), 5)
	writeFile(t, filepath.Join(dir, "nested", "c.pst"), 30)
	store := Store{}

	files, err := store.List(dir, "*.pst", false)

	require.NoError(t, err)
	require.Len(t, files, 2, "non-recursive scan must not enter subdirectories")
	var total int64
	for _, f := range files {
		total += f.Size
	}
	assert.Equal(t, int64(30), total)
}

func TestListRecursiveStaysInsideRoot(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "temp")
	writeFile(t, filepath.Join(root, "a.pst"), 1)
	writeFile(t, filepath.Join(root, "deep", "b.pst"), 2)
	// A sibling of the root must never be scanned.
	writeFile(t, filepath.Join(base, "other", "c.pst"), 4)
	store := Store{}

	files, err := store.List(root, "*.pst", true)

	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		assert.Contains(t, f.Path, root)
	}
}

func TestRemoveAndExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.pst")
	writeFile(t, path, 1)
	store := Store{}

	assert.True(t, store.Exists(path))
	require.NoError(t, store.Remove(path))
	assert.False(t, store.Exists(path))

	err := store.Remove(path)
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestFreeSpaceOnMissingPathWalksUp(t *testing.T) {
	store := Store{}

	sample, err := store.FreeSpace(filepath.Join(t.TempDir(), "not", "created", "yet"))

	require.NoError(t, err)
	assert.Positive(t, sample.TotalBytes)
	assert.LessOrEqual(t, sample.FreeBytes, sample.TotalBytes)
}

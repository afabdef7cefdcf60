package os

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestListFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.mp3"))
	touch(t, filepath.Join(root, "a.MP3"))
	touch(t, filepath.Join(root, "cover.jpg"))
	touch(t, filepath.Join(root, "disc2", "c.mp3"))

	files, err := ListFiles(root, ".mp3")
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "a.MP3"),
		filepath.Join(root, "b.mp3"),
		filepath.Join(root, "disc2", "c.mp3"),
	}, files)

	files, err = ListFiles(root)
	require.NoError(t, err)
	require.Len(t, files, 4)

	single := filepath.Join(root, "cover.jpg")
	files, err = ListFiles(single, ".mp3")
	require.NoError(t, err)
	require.Equal(t, []string{single}, files)

	_, err = ListFiles(filepath.Join(root, "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "today")

	created, err := EnsureDir(dir)
	require.NoError(t, err)
	require.True(t, created)

	created, err = EnsureDir(dir)
	require.NoError(t, err)
	require.False(t, created)

	file := filepath.Join(dir, "file")
	touch(t, file)
	_, err = EnsureDir(file)
	require.Error(t, err)
}

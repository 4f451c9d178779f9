package fileutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "models.ts")
	require.NoError(t, EnsureParentDir(target))
	require.NoError(t, EnsureParentDir(target), "second call must be a no-op")

	info, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureParentDir_FileInTheWay(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "dist")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), ReadableByAll))

	err := EnsureParentDir(filepath.Join(blocker, "models.ts"))
	require.Error(t, err)
}

func TestWriteTemp(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "models.ts")

	name, err := WriteTemp(target, []byte("hello"), ReadableByAll)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(name))
	assert.NotEqual(t, target, name)

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(name)
		require.NoError(t, err)
		assert.Equal(t, ReadableByAll, info.Mode().Perm())
	}

	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err), "target must not be created")
}

func TestWriteTemp_MissingDir(t *testing.T) {
	_, err := WriteTemp(filepath.Join(t.TempDir(), "nope", "models.ts"), []byte("x"), ReadableByAll)
	require.Error(t, err)
}

package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bootstrap/internal/adapters/fsutil"
)

func TestMkdirAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, fsutil.MkdirAll(dir))
	require.NoError(t, fsutil.MkdirAll(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSymlinkForce(t *testing.T) {
	t.Run("creates a fresh link", func(t *testing.T) {
		dir := t.TempDir()
		link := filepath.Join(dir, "pm")

		require.NoError(t, fsutil.SymlinkForce("/target/pm", link))

		target, err := os.Readlink(link)
		require.NoError(t, err)
		assert.Equal(t, "/target/pm", target)
	})

	t.Run("replaces an existing link", func(t *testing.T) {
		dir := t.TempDir()
		link := filepath.Join(dir, "pm")
		require.NoError(t, os.Symlink("/old/pm", link))

		require.NoError(t, fsutil.SymlinkForce("/new/pm", link))

		target, err := os.Readlink(link)
		require.NoError(t, err)
		assert.Equal(t, "/new/pm", target)
	})

	t.Run("replaces an existing file", func(t *testing.T) {
		dir := t.TempDir()
		link := filepath.Join(dir, "pm")
		require.NoError(t, os.WriteFile(link, []byte("plain file"), 0o644))

		require.NoError(t, fsutil.SymlinkForce("/target/pm", link))

		target, err := os.Readlink(link)
		require.NoError(t, err)
		assert.Equal(t, "/target/pm", target)
	})

	t.Run("links inside an existing directory under the target base name", func(t *testing.T) {
		dir := t.TempDir()

		require.NoError(t, fsutil.SymlinkForce("/bootstrap/pm", dir))

		target, err := os.Readlink(filepath.Join(dir, "pm"))
		require.NoError(t, err)
		assert.Equal(t, "/bootstrap/pm", target)
	})
}

func TestExists(t *testing.T) {
	dir := t.TempDir()

	assert.True(t, fsutil.Exists(dir))
	assert.False(t, fsutil.Exists(filepath.Join(dir, "missing")))
}

// ============================================================================
// filemanager_test.go
// Tests for the shared file helpers.
// ============================================================================

package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	// Creating an existing directory is fine.
	require.NoError(t, EnsureDir(dir))
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, filepath.Join("out", "model.hbjson"), OutputPath("out", "model", ".hbjson"))
	require.Equal(t, filepath.Join(".", "unnamed.hbjson"), OutputPath("", "", ".hbjson"))
}

func TestHasExtension(t *testing.T) {
	t.Parallel()

	require.True(t, HasExtension("model.3dm", ".3dm"))
	require.True(t, HasExtension("MODEL.3DM", ".3dm"))
	require.False(t, HasExtension("model.hbjson", ".3dm"))
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	require.True(t, FileExists(path))
	require.False(t, FileExists(filepath.Join(dir, "absent.txt")))
	require.False(t, FileExists(dir))
}

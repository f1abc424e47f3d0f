package staging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRemoveTreeIdempotent verifies removal succeeds on populated, empty, and absent paths.
func TestRemoveTreeIdempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "out")

	require.NoError(t, os.MkdirAll(filepath.Join(target, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "nested", "stale"), []byte("x"), 0o644))

	require.NoError(t, RemoveTree(target))

	_, err := os.Stat(target)
	require.ErrorIs(t, err, os.ErrNotExist)

	// Calling again on the now-absent path is still fine, twice.
	require.NoError(t, RemoveTree(target))
	require.NoError(t, RemoveTree(target))
}

// TestEnsureDir creates parents and tolerates existing directories.
func TestEnsureDir(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDir(target))

	info, err := os.Stat(target)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	require.NoError(t, EnsureDir(target))
}

// TestRemoveFile tolerates missing files and removes existing ones.
func TestRemoveFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "artifact")

	require.NoError(t, RemoveFile(path))

	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	require.NoError(t, RemoveFile(path))

	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestCopyFile copies contents, preserves the mode, and overwrites the destination.
func TestCopyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")

	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o755))
	require.NoError(t, os.WriteFile(dst, []byte("old and longer contents"), 0o644))

	require.NoError(t, CopyFile(src, dst))

	contents, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "payload", string(contents))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

// TestCopyFileOverwriteKeepsSourceMode pins mode preservation when the
// destination already exists with different permissions in each direction.
func TestCopyFileOverwriteKeepsSourceMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")

	// Executable source over a plain destination.
	require.NoError(t, os.WriteFile(src, []byte("exe"), 0o755))
	require.NoError(t, os.WriteFile(dst, []byte("plain"), 0o644))
	require.NoError(t, CopyFile(src, dst))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	// Plain source over an executable destination.
	require.NoError(t, os.WriteFile(src, []byte("plain"), 0o600))
	require.NoError(t, CopyFile(src, dst))

	info, err = os.Stat(dst)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

// TestCopyFileMissingSource surfaces the stat error.
func TestCopyFileMissingSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	err := CopyFile(filepath.Join(dir, "missing"), filepath.Join(dir, "dst"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

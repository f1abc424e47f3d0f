package staging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultDirPermissions is used when creating staging directories.
const DefaultDirPermissions = 0o755

// RemoveTree deletes path and everything under it. A nonexistent path is a
// no-op, not an error, so jobs can call it unconditionally before writing.
func RemoveTree(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove tree %s: %w", path, err)
	}

	return nil
}

// EnsureDir creates path together with any missing parents. An existing
// directory is not an error.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, DefaultDirPermissions); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}

	return nil
}

// RemoveFile deletes a single file. A missing file is not an error.
func RemoveFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove file %s: %w", path, err)
	}

	return nil
}

// CopyFile copies src to dst, preserving the source file mode and
// overwriting any existing destination.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	in, err := os.Open(filepath.Clean(src))
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}

	// Best-effort close, the source is only read.
	defer func() {
		_ = in.Close()
	}()

	out, err := os.OpenFile(filepath.Clean(dst), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	if _, err = io.Copy(out, in); err != nil {
		_ = out.Close()

		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}

	if err = out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dst, err)
	}

	// OpenFile only applies the mode on creation; an overwritten
	// destination keeps its old permissions without this.
	if err = os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod %s: %w", dst, err)
	}

	return nil
}

package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultFilename is the manifest read when no path is configured.
const DefaultFilename = "pyproject.toml"

// ErrVersionNotFound is returned when no line of the manifest carries the
// project version assignment.
var ErrVersionNotFound = errors.New("project version not found")

// versionPattern matches exactly a version assignment line:
//
//	version = "0.6.1"
//
// The pattern is anchored and only accepts digits and dots inside the quotes,
// so a dependency pinned elsewhere in the file can never match.
var versionPattern = regexp.MustCompile(`^\s*version\s*=\s*"([0-9.]+)"$`)

// ProjectVersion scans the manifest at path line by line and returns the
// quoted value of the first version assignment. A manifest without such a
// line is a configuration error; the pipeline must not proceed with an
// unknown version.
func ProjectVersion(path string) (string, error) {
	if path == "" {
		path = DefaultFilename
	}

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("open manifest: %w", err)
	}

	// Best-effort close, the file is only read.
	defer func() {
		_ = file.Close()
	}()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if m := versionPattern.FindStringSubmatch(line); m != nil {
			return m[1], nil
		}
	}

	if err = scanner.Err(); err != nil {
		return "", fmt.Errorf("read manifest: %w", err)
	}

	return "", fmt.Errorf("%s: %w", path, ErrVersionNotFound)
}

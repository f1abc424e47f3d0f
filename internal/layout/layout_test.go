package layout

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// romtLayout is the layout under test, matching the defaults of the pipeline.
var romtLayout = Layout{
	Project:  "romt",
	DistDir:  "dist",
	BuildDir: "build",
}

// TestPerPlatformPaths checks the dist/work/collection directory derivations.
func TestPerPlatformPaths(t *testing.T) {
	t.Parallel()

	require.Equal(t, filepath.Join("dist", "x86_64-linux"), romtLayout.PlatformDist("x86_64-linux"))
	require.Equal(t, filepath.Join("build", "x86_64-linux"), romtLayout.PlatformWork("x86_64-linux"))
	require.Equal(t, filepath.Join("dist", "github"), romtLayout.CollectionDir())
}

// TestExecutableNames checks platform executables with and without suffix.
func TestExecutableNames(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		filepath.Join("dist", "x86_64-linux", "romt"),
		romtLayout.PlatformExecutable("x86_64-linux", ""))
	require.Equal(t,
		filepath.Join("dist", "x86_64-windows", "romt.exe"),
		romtLayout.PlatformExecutable("x86_64-windows", ".exe"))
}

// TestCollectedArtifactNames checks the version-qualified collection names.
func TestCollectedArtifactNames(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		filepath.Join("dist", "github", "romt-0.6.1-x86_64-linux"),
		romtLayout.CollectedArtifact("0.6.1", "x86_64-linux", ""))
	require.Equal(t,
		filepath.Join("dist", "github", "romt-0.6.1-x86_64-windows.exe"),
		romtLayout.CollectedArtifact("0.6.1", "x86_64-windows", ".exe"))
}

// TestArchiveNames checks sdist and wheel paths.
func TestArchiveNames(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		filepath.Join("dist", "romt-0.6.1.tar.gz"),
		romtLayout.SourceArchive("0.6.1"))
	require.Equal(t,
		filepath.Join("dist", "romt-0.6.1-py3-none-any.whl"),
		romtLayout.WheelArchive("0.6.1"))
}

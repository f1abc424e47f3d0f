package layout

import (
	"fmt"
	"path/filepath"
)

// CollectionDirName is the subdirectory of the dist root that accumulates
// one named executable per platform for a single release. Unlike the
// per-platform areas it is never destroyed by the build job.
const CollectionDirName = "github"

// Layout derives every output path of the pipeline from the project name
// and the two directory roots. All derivations are pure; the zero
// dependencies on the environment keep artifact names deterministic for a
// given (version, platform) pair.
type Layout struct {
	// Project is the artifact base name, e.g. "romt".
	Project string
	// DistDir is the root for final distributable artifacts, e.g. "dist".
	DistDir string
	// BuildDir is the root for packager scratch areas, e.g. "build".
	BuildDir string
}

// PlatformDist is the final per-platform artifact directory.
func (l Layout) PlatformDist(targetPlatform string) string {
	return filepath.Join(l.DistDir, targetPlatform)
}

// PlatformWork is the packager's scratch/spec area for one platform.
func (l Layout) PlatformWork(targetPlatform string) string {
	return filepath.Join(l.BuildDir, targetPlatform)
}

// CollectionDir is the flat cross-platform collection area of a release.
func (l Layout) CollectionDir() string {
	return filepath.Join(l.DistDir, CollectionDirName)
}

// PlatformExecutable is where the packager drops the single-file executable.
func (l Layout) PlatformExecutable(targetPlatform, suffix string) string {
	return filepath.Join(l.PlatformDist(targetPlatform), l.Project+suffix)
}

// CollectedArtifact is the fully qualified name of one platform's executable
// inside the collection directory. It is determined entirely by version and
// platform, so runs for distinct platforms of one release never collide.
func (l Layout) CollectedArtifact(version, targetPlatform, suffix string) string {
	name := fmt.Sprintf("%s-%s-%s%s", l.Project, version, targetPlatform, suffix)

	return filepath.Join(l.CollectionDir(), name)
}

// SourceArchive is the sdist produced by the archive builder.
func (l Layout) SourceArchive(version string) string {
	return filepath.Join(l.DistDir, fmt.Sprintf("%s-%s.tar.gz", l.Project, version))
}

// WheelArchive is the wheel produced by the archive builder.
func (l Layout) WheelArchive(version string) string {
	return filepath.Join(l.DistDir, fmt.Sprintf("%s-%s-py3-none-any.whl", l.Project, version))
}

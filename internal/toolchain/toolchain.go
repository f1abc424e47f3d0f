package toolchain

import "context"

// PackageSpec describes one invocation of the single-file packager. On
// success the packager leaves exactly one executable named Name (plus the
// platform suffix) inside DistPath.
type PackageSpec struct {
	// Name is the base name of the produced executable.
	Name string
	// DistPath receives the packaged executable.
	DistPath string
	// WorkPath holds the packager's specfile and intermediate work.
	WorkPath string
	// BundledData is a src:dest data file bundled into the executable.
	BundledData string
	// EntryPoint is the script the executable starts from.
	EntryPoint string
}

// Toolchain is the capability interface over the external collaborators of
// the pipeline, one method per external action. The production
// implementation shells out; tests substitute deterministic stand-ins that
// record calls and return canned results.
type Toolchain interface {
	// Run invokes an arbitrary external tool and waits for it to finish.
	Run(ctx context.Context, name string, args ...string) error
	// InstallProject makes the project and its dependencies available
	// to subsequent packaging invocations.
	InstallProject(ctx context.Context) error
	// ExportRequirements writes a hash-free frozen dependency list to path.
	ExportRequirements(ctx context.Context, path string) error
	// InstallRequirements installs the dependency set frozen at path.
	InstallRequirements(ctx context.Context, path string) error
	// BuildArchives produces the sdist and wheel archives under the dist root.
	BuildArchives(ctx context.Context) error
	// CheckArchives validates the produced distribution archives.
	CheckArchives(ctx context.Context, paths ...string) error
	// PackageExecutable drives the single-file packager per spec.
	PackageExecutable(ctx context.Context, spec PackageSpec) error
}

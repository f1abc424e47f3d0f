package toolchaintest

import (
	"context"
	"os"
	"path/filepath"

	"github.com/drmikehenry/romt-pipeline/internal/toolchain"
)

// Call records one toolchain action together with its inputs.
type Call struct {
	// Action is one of "run", "install", "export", "build-archives",
	// "check" or "package".
	Action string
	// Name is the tool command for "run" actions.
	Name string
	// Args are the tool arguments for "run" actions.
	Args []string
	// Path is the destination for "export" actions.
	Path string
	// Paths are the archives handed to "check" actions.
	Paths []string
	// Spec is the packager invocation for "package" actions.
	Spec toolchain.PackageSpec
}

// Fake is a deterministic Toolchain stand-in. It records every call and
// returns the canned per-action error. Side effects external tools would
// have (the packaged executable, the exported requirements file) are
// simulated so filesystem-level assertions work.
type Fake struct {
	// Calls lists every action in invocation order.
	Calls []Call

	// ExecutableSuffix is appended to the packaged executable name,
	// mirroring what the real packager does on Windows hosts.
	ExecutableSuffix string

	// Per-action canned results; nil means success.
	RunErr                 error
	InstallErr             error
	ExportErr              error
	InstallRequirementsErr error
	BuildArchivesErr       error
	CheckErr               error
	PackageErr             error
}

var _ toolchain.Toolchain = (*Fake)(nil)

// ActionNames returns the recorded actions in order, for terse assertions.
func (f *Fake) ActionNames() []string {
	names := make([]string, 0, len(f.Calls))
	for _, call := range f.Calls {
		names = append(names, call.Action)
	}

	return names
}

// Run records an arbitrary tool invocation.
func (f *Fake) Run(_ context.Context, name string, args ...string) error {
	f.Calls = append(f.Calls, Call{Action: "run", Name: name, Args: args})

	return f.RunErr
}

// InstallProject records the install action.
func (f *Fake) InstallProject(_ context.Context) error {
	f.Calls = append(f.Calls, Call{Action: "install"})

	return f.InstallErr
}

// ExportRequirements records the export and, on success, writes a stub
// requirements file at path.
func (f *Fake) ExportRequirements(_ context.Context, path string) error {
	f.Calls = append(f.Calls, Call{Action: "export", Path: path})

	if f.ExportErr != nil {
		return f.ExportErr
	}

	return os.WriteFile(path, []byte("# frozen requirements\n"), 0o644)
}

// InstallRequirements records installation of a frozen dependency set.
func (f *Fake) InstallRequirements(_ context.Context, path string) error {
	f.Calls = append(f.Calls, Call{Action: "install-requirements", Path: path})

	return f.InstallRequirementsErr
}

// BuildArchives records the archive build action.
func (f *Fake) BuildArchives(_ context.Context) error {
	f.Calls = append(f.Calls, Call{Action: "build-archives"})

	return f.BuildArchivesErr
}

// CheckArchives records the validation action.
func (f *Fake) CheckArchives(_ context.Context, paths ...string) error {
	f.Calls = append(f.Calls, Call{Action: "check", Paths: paths})

	return f.CheckErr
}

// PackageExecutable records the packaging action and, on success,
// materializes a stub executable where the real packager would leave one.
func (f *Fake) PackageExecutable(_ context.Context, spec toolchain.PackageSpec) error {
	f.Calls = append(f.Calls, Call{Action: "package", Spec: spec})

	if f.PackageErr != nil {
		return f.PackageErr
	}

	if err := os.MkdirAll(spec.DistPath, 0o755); err != nil {
		return err
	}

	target := filepath.Join(spec.DistPath, spec.Name+f.ExecutableSuffix)

	return os.WriteFile(target, []byte("packaged "+spec.EntryPoint), 0o755)
}

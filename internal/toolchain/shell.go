package toolchain

import (
	"context"
	"fmt"

	"github.com/magefile/mage/sh"

	"github.com/drmikehenry/romt-pipeline/internal/config"
	"github.com/drmikehenry/romt-pipeline/internal/logger"
)

// Shell is the production Toolchain. Each method execs the configured
// command with the process's stdout/stderr attached; a non-zero exit
// surfaces as an error and terminates the enclosing job.
type Shell struct {
	tools config.Tools

	// run is the exec seam, replaced in tests to capture argument vectors.
	run func(cmd string, args ...string) error
}

// NewShell builds a Shell around the configured tool commands.
func NewShell(tools config.Tools) *Shell {
	return &Shell{
		tools: tools,
		run:   sh.RunV,
	}
}

// Run invokes an arbitrary external tool.
func (s *Shell) Run(ctx context.Context, name string, args ...string) error {
	return s.exec(ctx, name, args...)
}

// InstallProject runs the dependency manager's install action.
func (s *Shell) InstallProject(ctx context.Context) error {
	return s.exec(ctx, s.tools.DependencyManager, "install")
}

// ExportRequirements writes a hash-free frozen dependency list to path.
func (s *Shell) ExportRequirements(ctx context.Context, path string) error {
	return s.exec(ctx, s.tools.DependencyManager, "export", "--without-hashes", "-o", path)
}

// InstallRequirements installs the dependency set frozen at path.
func (s *Shell) InstallRequirements(ctx context.Context, path string) error {
	return s.exec(ctx, s.tools.Installer, "install", "-r", path)
}

// BuildArchives produces the sdist and wheel archives.
func (s *Shell) BuildArchives(ctx context.Context) error {
	return s.exec(ctx, s.tools.DependencyManager, "build")
}

// CheckArchives validates the produced distribution archives.
func (s *Shell) CheckArchives(ctx context.Context, paths ...string) error {
	args := append([]string{"check"}, paths...)

	return s.exec(ctx, s.tools.Validator, args...)
}

// PackageExecutable drives the single-file packager: one-file mode, explicit
// output name and directories, one bundled data file, reduced log verbosity,
// and the fixed entry-point script.
func (s *Shell) PackageExecutable(ctx context.Context, spec PackageSpec) error {
	args := []string{
		"--onefile",
		"--name", spec.Name,
		"--distpath", spec.DistPath,
		"--specpath", spec.WorkPath,
		"--workpath", spec.WorkPath,
		"--add-data=" + spec.BundledData,
		"--log-level", "WARN",
		spec.EntryPoint,
	}

	return s.exec(ctx, s.tools.Packager, args...)
}

// exec runs one external command after checking for cancellation. External
// tools are black boxes; the pipeline only cares about the exit status.
func (s *Shell) exec(ctx context.Context, cmd string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", cmd, err)
	}

	logger.DebugKV(ctx, "Running external tool", "cmd", cmd, "args", args)

	if err := s.run(cmd, args...); err != nil {
		return fmt.Errorf("%s: %w", cmd, err)
	}

	return nil
}

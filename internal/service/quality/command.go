package quality

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drmikehenry/romt-pipeline/internal/config"
	"github.com/drmikehenry/romt-pipeline/internal/logger"
	"github.com/drmikehenry/romt-pipeline/internal/staging"
	"github.com/drmikehenry/romt-pipeline/internal/toolchain"
)

// Options contains inputs for the verification job entry points.
type Options struct {
	// ConfigPath is an optional path to the pipeline settings file.
	ConfigPath string
	// ExtraArgs are passed through to the underlying tool where the job
	// supports it (test and licenses).
	ExtraArgs []string
}

// jobFunc is one verification job bound to a toolchain.
type jobFunc func(ctx context.Context, cfg *config.Config, tc toolchain.Toolchain, extra []string) error

// Fmt rewrites import order and formatting in place.
func Fmt(ctx context.Context, opts *Options) error {
	return run(ctx, "fmt", opts, fmtJob)
}

// Lint verifies lint rules and formatting without modifying anything.
func Lint(ctx context.Context, opts *Options) error {
	return run(ctx, "lint", opts, lintJob)
}

// LintFix applies automatic lint fixes.
func LintFix(ctx context.Context, opts *Options) error {
	return run(ctx, "lint-fix", opts, lintFixJob)
}

// TypeCheck performs static type analysis over sources, tests and tooling.
func TypeCheck(ctx context.Context, opts *Options) error {
	return run(ctx, "typecheck", opts, typeCheckJob)
}

// Test runs the project's test suite with coverage reporting.
func Test(ctx context.Context, opts *Options) error {
	return run(ctx, "test", opts, testJob)
}

// Licenses reports license data for the project's frozen dependency set.
func Licenses(ctx context.Context, opts *Options) error {
	return run(ctx, "licenses", opts, licensesJob)
}

// run loads the configuration, binds the production toolchain and executes
// one verification job. Each job is a plain external-tool call; any
// non-zero exit aborts it immediately.
func run(ctx context.Context, name string, opts *Options, job jobFunc) error {
	ctx = logger.WithName(ctx, name)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if err = job(ctx, cfg, toolchain.NewShell(cfg.Tools), opts.ExtraArgs); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}

	logger.Infof(ctx, "Job %s completed successfully", name)

	return nil
}

func fmtJob(ctx context.Context, cfg *config.Config, tc toolchain.Toolchain, _ []string) error {
	if err := tc.Run(ctx, cfg.Tools.Formatter, "check", ".", "--select", "I", "--fix"); err != nil {
		return err
	}

	return tc.Run(ctx, cfg.Tools.Formatter, "format", ".")
}

func lintJob(ctx context.Context, cfg *config.Config, tc toolchain.Toolchain, _ []string) error {
	if err := tc.Run(ctx, cfg.Tools.Formatter, "check", "."); err != nil {
		return err
	}

	return tc.Run(ctx, cfg.Tools.Formatter, "format", "--check", ".")
}

func lintFixJob(ctx context.Context, cfg *config.Config, tc toolchain.Toolchain, _ []string) error {
	return tc.Run(ctx, cfg.Tools.Formatter, "check", ".", "--fix")
}

func typeCheckJob(ctx context.Context, cfg *config.Config, tc toolchain.Toolchain, _ []string) error {
	return tc.Run(ctx, cfg.Tools.TypeChecker, "src", "tests")
}

func testJob(ctx context.Context, cfg *config.Config, tc toolchain.Toolchain, extra []string) error {
	args := []string{
		"--cov=" + cfg.Project,
		"--cov-report=html",
		"--cov-report=term",
		"tests",
	}
	args = append(args, extra...)

	return tc.Run(ctx, cfg.Tools.TestRunner, args...)
}

// licensesJob exports a hash-free requirements file to a temporary path,
// installs that frozen dependency set, and only then runs the license
// auditor, so the report covers the pinned dependencies rather than
// whatever happens to be installed. The temporary file is removed on the
// success path; a failed job leaves it behind like any other partial state.
func licensesJob(ctx context.Context, cfg *config.Config, tc toolchain.Toolchain, extra []string) error {
	tmp, err := os.CreateTemp("", "requirements-*.txt")
	if err != nil {
		return fmt.Errorf("create requirements temp file: %w", err)
	}

	requirementsFile := tmp.Name()

	// The dependency manager rewrites the file itself; only the name matters.
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close requirements temp file: %w", err)
	}

	if err = tc.ExportRequirements(ctx, requirementsFile); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Exported frozen dependencies", "path", filepath.Base(requirementsFile))

	if err = tc.InstallRequirements(ctx, requirementsFile); err != nil {
		return err
	}

	if err = tc.Run(ctx, cfg.Tools.LicenseAuditor, extra...); err != nil {
		return err
	}

	return staging.RemoveFile(requirementsFile)
}

package release

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/drmikehenry/romt-pipeline/internal/config"
	"github.com/drmikehenry/romt-pipeline/internal/layout"
	"github.com/drmikehenry/romt-pipeline/internal/logger"
	"github.com/drmikehenry/romt-pipeline/internal/manifest"
	"github.com/drmikehenry/romt-pipeline/internal/platform"
	"github.com/drmikehenry/romt-pipeline/internal/service/build"
	"github.com/drmikehenry/romt-pipeline/internal/service/common"
	"github.com/drmikehenry/romt-pipeline/internal/staging"
	"github.com/drmikehenry/romt-pipeline/internal/toolchain"
)

// RequirementsFilename receives the frozen, hash-free dependency list.
const RequirementsFilename = "requirements.txt"

// Options contains inputs for the release entry point.
type Options struct {
	// ConfigPath is an optional path to the pipeline settings file.
	ConfigPath string
}

// Run executes the release job for the current host: full distribution
// reset, single-file build, archive build and validation, then the manual
// checklist. Like the build job it refuses to run next to another live
// pipeline instance.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "release")

	if err := common.EnsureExclusive(ctx); err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	runner := New(cfg, platform.DetectHost(), toolchain.NewShell(cfg.Tools), os.Stdout)

	if err = runner.Run(ctx); err != nil {
		return fmt.Errorf("release failed: %w", err)
	}

	logger.Info(ctx, "Release completed successfully")

	return nil
}

// Step is one named stage of the release. Failure of any step terminates
// the run; completed steps are never rolled back, so partial progress
// (such as the exported requirements file) stays on disk for inspection.
type Step struct {
	// Name identifies the step in logs and error messages.
	Name string
	// Run performs the step.
	Run func(ctx context.Context) error
}

// Runner sequences the release steps over one host and toolchain.
type Runner struct {
	cfg  *config.Config
	host platform.Host
	tc   toolchain.Toolchain
	// out receives the final manual-steps checklist.
	out io.Writer

	// version and archive paths are resolved by the first step and read
	// by every later one.
	version string
	paths   layout.Layout
	tarPath string
	whlPath string
}

// New creates a release runner with an explicit host, toolchain and
// checklist writer. The CLI goes through Run; tests construct it directly.
func New(cfg *config.Config, host platform.Host, tc toolchain.Toolchain, out io.Writer) *Runner {
	return &Runner{
		cfg:  cfg,
		host: host,
		tc:   tc,
		out:  out,
		paths: layout.Layout{
			Project:  cfg.Project,
			DistDir:  cfg.DistDir,
			BuildDir: cfg.BuildDir,
		},
	}
}

// Steps returns the release stages in execution order.
func (r *Runner) Steps() []Step {
	return []Step{
		{Name: "resolve", Run: r.resolve},
		{Name: "clean", Run: r.clean},
		{Name: "notice", Run: r.notice},
		{Name: "build", Run: r.build},
		{Name: "export", Run: r.export},
		{Name: "archives", Run: r.archives},
		{Name: "validate", Run: r.validate},
		{Name: "checklist", Run: r.checklist},
	}
}

// Run executes every step in order, aborting on the first failure.
func (r *Runner) Run(ctx context.Context) error {
	for _, step := range r.Steps() {
		logger.InfoKV(ctx, "Release step", "step", step.Name)

		if err := step.Run(ctx); err != nil {
			return fmt.Errorf("step %s: %w", step.Name, err)
		}
	}

	return nil
}

// resolve reads the project version and fixes the archive paths every later
// step refers to.
func (r *Runner) resolve(context.Context) error {
	version, err := manifest.ProjectVersion(r.cfg.Manifest)
	if err != nil {
		return err
	}

	r.version = version
	r.tarPath = r.paths.SourceArchive(version)
	r.whlPath = r.paths.WheelArchive(version)

	return nil
}

// clean resets the whole distribution state. The reset is broader than the
// build job's per-platform reset because a release spans all platforms.
func (r *Runner) clean(context.Context) error {
	if err := staging.RemoveTree(r.cfg.DistDir); err != nil {
		return err
	}

	return staging.RemoveTree(r.cfg.BuildDir)
}

// notice tells the operator that manual platform-specific steps (such as the
// Windows build) are safe to start from this point on.
func (r *Runner) notice(ctx context.Context) error {
	logger.Info(ctx, "NOTE: safe to perform Windows steps now...")

	return nil
}

// build runs the build job for the current host's platform.
func (r *Runner) build(ctx context.Context) error {
	return build.New(r.cfg, r.host, r.tc).Run(ctx)
}

// export writes the frozen, hash-free dependency list.
func (r *Runner) export(ctx context.Context) error {
	return r.tc.ExportRequirements(ctx, RequirementsFilename)
}

// archives builds the sdist and wheel.
func (r *Runner) archives(ctx context.Context) error {
	return r.tc.BuildArchives(ctx)
}

// validate checks both produced archives; an invalid archive ends the
// release before the checklist is ever printed.
func (r *Runner) validate(ctx context.Context) error {
	return r.tc.CheckArchives(ctx, r.tarPath, r.whlPath)
}

// checklist prints the fixed-template manual follow-up actions. Cross-
// compiling the single-file executable for another OS is unreliable, so the
// pipeline hands off explicit literal steps instead of pretending to
// automate them.
func (r *Runner) checklist(context.Context) error {
	var b strings.Builder

	b.WriteString("\n** Remaining manual steps:\n\n")

	b.WriteString("On Windows machine:\n")
	b.WriteString("  romt-pipeline build\n\n")

	b.WriteString("Tag and push:\n")
	fmt.Fprintf(&b, "  git tag -am 'Release v%s.' v%s\n", r.version, r.version)
	b.WriteString("  git push; git push --tags\n\n")

	b.WriteString("Upload to PyPI:\n")
	fmt.Fprintf(&b, "  %s upload %s %s\n\n", r.cfg.Tools.Uploader, r.tarPath, r.whlPath)

	fmt.Fprintf(&b, "Create GitHub release for %s from tree:\n", r.version)
	fmt.Fprintf(&b, "  %s%c\n", r.paths.CollectionDir(), os.PathSeparator)

	_, err := io.WriteString(r.out, b.String())

	return err
}

package build

import (
	"context"
	"fmt"

	"github.com/drmikehenry/romt-pipeline/internal/config"
	"github.com/drmikehenry/romt-pipeline/internal/layout"
	"github.com/drmikehenry/romt-pipeline/internal/logger"
	"github.com/drmikehenry/romt-pipeline/internal/manifest"
	"github.com/drmikehenry/romt-pipeline/internal/platform"
	"github.com/drmikehenry/romt-pipeline/internal/service/common"
	"github.com/drmikehenry/romt-pipeline/internal/staging"
	"github.com/drmikehenry/romt-pipeline/internal/toolchain"
)

// Options contains inputs for the build entry point.
type Options struct {
	// ConfigPath is an optional path to the pipeline settings file.
	ConfigPath string
}

// Run executes the build job for the current host. It refuses to start
// while another pipeline instance is live, since the job begins by
// destroying its staging directories.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "build")

	if err := common.EnsureExclusive(ctx); err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	job := New(cfg, platform.DetectHost(), toolchain.NewShell(cfg.Tools))

	if err = job.Run(ctx); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	logger.Info(ctx, "Build completed successfully")

	return nil
}

// Job produces the single-file executable for one platform and relocates it
// into the release collection directory under its version-qualified name.
type Job struct {
	// cfg holds the project, manifest, layout roots and tool commands.
	cfg *config.Config
	// host is the platform snapshot every derived path is computed from.
	host platform.Host
	// tc invokes the external dependency manager and packager.
	tc toolchain.Toolchain
}

// New creates a build job over an explicit host and toolchain. The release
// job and the tests construct it directly; the CLI goes through Run.
func New(cfg *config.Config, host platform.Host, tc toolchain.Toolchain) *Job {
	return &Job{
		cfg:  cfg,
		host: host,
		tc:   tc,
	}
}

// Run performs one build: resolve identifiers, stage directories, package,
// relocate. Identifiers are resolved exactly once so every path below
// agrees on the same version and platform. Any failing step aborts the job;
// a half-populated dist area is never valid output.
func (j *Job) Run(ctx context.Context) error {
	version, err := manifest.ProjectVersion(j.cfg.Manifest)
	if err != nil {
		return err
	}

	var (
		targetPlatform = j.host.TargetPlatform()
		suffix         = j.host.ExecutableSuffix()

		paths = layout.Layout{
			Project:  j.cfg.Project,
			DistDir:  j.cfg.DistDir,
			BuildDir: j.cfg.BuildDir,
		}

		distPath      = paths.PlatformDist(targetPlatform)
		workPath      = paths.PlatformWork(targetPlatform)
		distExePath   = paths.PlatformExecutable(targetPlatform, suffix)
		collectedPath = paths.CollectedArtifact(version, targetPlatform, suffix)
	)

	logger.InfoKV(ctx, "Building single-file executable",
		"version", version, "platform", targetPlatform)

	// Per-platform areas never carry state across runs. The collection
	// directory survives so other platforms' artifacts of this release
	// accumulate, but this platform's entry is removed up front.
	if err = staging.RemoveTree(distPath); err != nil {
		return err
	}

	if err = staging.RemoveTree(workPath); err != nil {
		return err
	}

	if err = staging.EnsureDir(paths.CollectionDir()); err != nil {
		return err
	}

	if err = staging.RemoveFile(collectedPath); err != nil {
		return err
	}

	if err = j.tc.InstallProject(ctx); err != nil {
		return err
	}

	err = j.tc.PackageExecutable(ctx, toolchain.PackageSpec{
		Name:        j.cfg.Project,
		DistPath:    distPath,
		WorkPath:    workPath,
		BundledData: j.cfg.BundledData,
		EntryPoint:  j.cfg.EntryPoint,
	})
	if err != nil {
		return err
	}

	logger.Infof(ctx, "copy %s -> %s", distExePath, collectedPath)

	return staging.CopyFile(distExePath, collectedPath)
}

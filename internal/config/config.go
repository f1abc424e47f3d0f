package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the pipeline settings shared by every job.
type Config struct {
	// Project is the artifact base name and coverage target.
	Project string `yaml:"project"`
	// Manifest is the path to the metadata file carrying the project version.
	Manifest string `yaml:"manifest"`
	// EntryPoint is the script handed to the single-file packager.
	EntryPoint string `yaml:"entry_point"`
	// BundledData is the single src:dest data file bundled into the executable.
	BundledData string `yaml:"bundled_data"`
	// DistDir is the root directory for distributable artifacts.
	DistDir string `yaml:"dist_dir"`
	// BuildDir is the root directory for packager scratch areas.
	BuildDir string `yaml:"build_dir"`
	// Tools maps each external collaborator to its command name.
	Tools Tools `yaml:"tools"`
}

// Tools names the external commands the pipeline shells out to. Every field
// defaults to the conventional tool for a Poetry-managed Python project.
type Tools struct {
	// Formatter both checks and rewrites source formatting.
	Formatter string `yaml:"formatter"`
	// TypeChecker performs static type analysis.
	TypeChecker string `yaml:"type_checker"`
	// TestRunner executes the project's test suite.
	TestRunner string `yaml:"test_runner"`
	// DependencyManager installs the project, exports requirements,
	// and builds the sdist/wheel archives.
	DependencyManager string `yaml:"dependency_manager"`
	// Installer installs packages from an exported requirements file.
	Installer string `yaml:"installer"`
	// Packager produces the single-file executable.
	Packager string `yaml:"packager"`
	// Validator checks the produced distribution archives.
	Validator string `yaml:"validator"`
	// Uploader publishes archives to the package index. It only appears in
	// the manual release checklist; the pipeline never runs it itself.
	Uploader string `yaml:"uploader"`
	// LicenseAuditor reports license data for installed dependencies.
	LicenseAuditor string `yaml:"license_auditor"`
}

const (
	// DefaultConfigFilename is the default filename for pipeline settings.
	DefaultConfigFilename = "romt-pipeline.yaml"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errProjectRequired is returned when the project name is missing.
	errProjectRequired = errors.New("project name must be provided")
	// errEntryPointRequired is returned when the packager entry point is missing.
	errEntryPointRequired = errors.New("entry point must be provided")
)

// Default returns the configuration used when no settings file exists, which
// matches a plain checkout of the romt project.
func Default() *Config {
	return &Config{
		Project:     "romt",
		Manifest:    "pyproject.toml",
		EntryPoint:  "romt-wrapper.py",
		BundledData: "../../README.rst:romt",
		DistDir:     "dist",
		BuildDir:    "build",
		Tools: Tools{
			Formatter:         "ruff",
			TypeChecker:       "mypy",
			TestRunner:        "pytest",
			DependencyManager: "poetry",
			Installer:         "pip",
			Packager:          "pyinstaller",
			Validator:         "twine",
			Uploader:          "twine",
			LicenseAuditor:    "pip-licenses",
		},
	}
}

// Load reads configuration from the provided path and validates essential
// fields. A missing file at the default path is not an error: the pipeline
// must run from a bare checkout, so defaults apply instead.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields, filling
// defaulted paths and tool names where the file left them empty.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.Project == "" {
		return errProjectRequired
	}

	if cfg.EntryPoint == "" {
		return errEntryPointRequired
	}

	defaults := Default()

	if cfg.Manifest == "" {
		cfg.Manifest = defaults.Manifest
	}

	if cfg.DistDir == "" {
		cfg.DistDir = defaults.DistDir
	}

	if cfg.BuildDir == "" {
		cfg.BuildDir = defaults.BuildDir
	}

	fillToolDefaults(&cfg.Tools, &defaults.Tools)

	return nil
}

// fillToolDefaults replaces empty tool names with the defaults.
func fillToolDefaults(tools, defaults *Tools) {
	if tools.Formatter == "" {
		tools.Formatter = defaults.Formatter
	}

	if tools.TypeChecker == "" {
		tools.TypeChecker = defaults.TypeChecker
	}

	if tools.TestRunner == "" {
		tools.TestRunner = defaults.TestRunner
	}

	if tools.DependencyManager == "" {
		tools.DependencyManager = defaults.DependencyManager
	}

	if tools.Installer == "" {
		tools.Installer = defaults.Installer
	}

	if tools.Packager == "" {
		tools.Packager = defaults.Packager
	}

	if tools.Validator == "" {
		tools.Validator = defaults.Validator
	}

	if tools.Uploader == "" {
		tools.Uploader = defaults.Uploader
	}

	if tools.LicenseAuditor == "" {
		tools.LicenseAuditor = defaults.LicenseAuditor
	}
}

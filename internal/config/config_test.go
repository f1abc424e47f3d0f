package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields and defaulting of optional ones.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing project name.
	cfg := new(Config)

	err := Validate(cfg)
	require.Error(t, err)

	// Missing entry point.
	cfg = &Config{Project: "romt"}

	err = Validate(cfg)
	require.Error(t, err)

	// Minimal valid config gets defaults filled in.
	cfg = &Config{
		Project:    "romt",
		EntryPoint: "romt-wrapper.py",
	}

	err = Validate(cfg)
	require.NoError(t, err)
	require.Equal(t, "pyproject.toml", cfg.Manifest)
	require.Equal(t, "dist", cfg.DistDir)
	require.Equal(t, "build", cfg.BuildDir)
	require.Equal(t, "poetry", cfg.Tools.DependencyManager)
	require.Equal(t, "pip", cfg.Tools.Installer)
	require.Equal(t, "pyinstaller", cfg.Tools.Packager)
	require.Equal(t, "twine", cfg.Tools.Uploader)
}

// TestLoadMissingFileFallsBackToDefaults ensures a bare checkout works without a settings file.
func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := Default()
	cfg.Project = "othertool"
	cfg.Tools.Packager = "nuitka"

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "othertool", loaded.Project)
	require.Equal(t, "nuitka", loaded.Tools.Packager)
	require.Equal(t, "twine", loaded.Tools.Validator)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestLoadPartialFileKeepsDefaults checks a file overriding a single field.
func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dist_dir: out\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "out", cfg.DistDir)
	require.Equal(t, "romt", cfg.Project)
	require.Equal(t, "pytest", cfg.Tools.TestRunner)
}

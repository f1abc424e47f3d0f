package quality

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drmikehenry/romt-pipeline/internal/config"
	"github.com/drmikehenry/romt-pipeline/internal/toolchain/toolchaintest"
)

// TestLintJob verifies the two read-only formatter invocations.
func TestLintJob(t *testing.T) {
	t.Parallel()

	fake := new(toolchaintest.Fake)

	err := lintJob(context.Background(), config.Default(), fake, nil)
	require.NoError(t, err)

	require.Len(t, fake.Calls, 2)
	require.Equal(t, "ruff", fake.Calls[0].Name)
	require.Equal(t, []string{"check", "."}, fake.Calls[0].Args)
	require.Equal(t, []string{"format", "--check", "."}, fake.Calls[1].Args)
}

// TestLintJobStopsOnFirstFailure ensures the format check never runs after a lint failure.
func TestLintJobStopsOnFirstFailure(t *testing.T) {
	t.Parallel()

	fake := &toolchaintest.Fake{RunErr: errors.New("exit status 1")}

	err := lintJob(context.Background(), config.Default(), fake, nil)
	require.Error(t, err)
	require.Len(t, fake.Calls, 1)
}

// TestFmtJob verifies import fixing followed by formatting.
func TestFmtJob(t *testing.T) {
	t.Parallel()

	fake := new(toolchaintest.Fake)

	err := fmtJob(context.Background(), config.Default(), fake, nil)
	require.NoError(t, err)

	require.Len(t, fake.Calls, 2)
	require.Equal(t, []string{"check", ".", "--select", "I", "--fix"}, fake.Calls[0].Args)
	require.Equal(t, []string{"format", "."}, fake.Calls[1].Args)
}

// TestTypeCheckJob covers source and test directories.
func TestTypeCheckJob(t *testing.T) {
	t.Parallel()

	fake := new(toolchaintest.Fake)

	err := typeCheckJob(context.Background(), config.Default(), fake, nil)
	require.NoError(t, err)

	require.Len(t, fake.Calls, 1)
	require.Equal(t, "mypy", fake.Calls[0].Name)
	require.Equal(t, []string{"src", "tests"}, fake.Calls[0].Args)
}

// TestTestJob passes coverage flags and forwards extra arguments.
func TestTestJob(t *testing.T) {
	t.Parallel()

	fake := new(toolchaintest.Fake)

	err := testJob(context.Background(), config.Default(), fake, []string{"-k", "version"})
	require.NoError(t, err)

	require.Len(t, fake.Calls, 1)
	require.Equal(t, "pytest", fake.Calls[0].Name)
	require.Equal(t,
		[]string{"--cov=romt", "--cov-report=html", "--cov-report=term", "tests", "-k", "version"},
		fake.Calls[0].Args)
}

// TestLicensesJob exports requirements, installs the frozen set, audits it,
// and cleans up afterwards.
func TestLicensesJob(t *testing.T) {
	t.Parallel()

	fake := new(toolchaintest.Fake)

	err := licensesJob(context.Background(), config.Default(), fake, []string{"--summary"})
	require.NoError(t, err)

	require.Equal(t, []string{"export", "install-requirements", "run"}, fake.ActionNames())

	// The audit runs against exactly the exported file.
	require.NotEmpty(t, fake.Calls[0].Path)
	require.Equal(t, fake.Calls[0].Path, fake.Calls[1].Path)

	require.Equal(t, "pip-licenses", fake.Calls[2].Name)
	require.Contains(t, fake.Calls[2].Args, "--summary")
}

// TestLicensesJobAbortsOnInstallFailure never reaches the auditor when the
// frozen set cannot be installed.
func TestLicensesJobAbortsOnInstallFailure(t *testing.T) {
	t.Parallel()

	fake := &toolchaintest.Fake{InstallRequirementsErr: errors.New("exit status 1")}

	err := licensesJob(context.Background(), config.Default(), fake, nil)
	require.Error(t, err)
	require.Equal(t, []string{"export", "install-requirements"}, fake.ActionNames())
}

// TestLicensesJobAbortsOnExportFailure never reaches the auditor when export fails.
func TestLicensesJobAbortsOnExportFailure(t *testing.T) {
	t.Parallel()

	fake := &toolchaintest.Fake{ExportErr: errors.New("exit status 1")}

	err := licensesJob(context.Background(), config.Default(), fake, nil)
	require.Error(t, err)
	require.Equal(t, []string{"export"}, fake.ActionNames())
}

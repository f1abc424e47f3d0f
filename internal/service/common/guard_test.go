package common

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-ps"
	"github.com/stretchr/testify/require"
)

// fakeProcess implements ps.Process for guard tests.
type fakeProcess struct {
	pid        int
	executable string
}

func (p fakeProcess) Pid() int           { return p.pid }
func (p fakeProcess) PPid() int          { return 0 }
func (p fakeProcess) Executable() string { return p.executable }

// withProcessList swaps the process-scan seam for the duration of one test.
func withProcessList(t *testing.T, processes []ps.Process, err error) {
	t.Helper()

	prev := processLister
	processLister = func() ([]ps.Process, error) {
		return processes, err
	}

	t.Cleanup(func() {
		processLister = prev
	})
}

// ownExecutableName returns the base name of the current test binary.
func ownExecutableName(t *testing.T) string {
	t.Helper()

	self, err := os.Executable()
	require.NoError(t, err)

	return filepath.Base(self)
}

// TestEnsureExclusive_NoConflict accepts a process table containing only this process.
func TestEnsureExclusive_NoConflict(t *testing.T) {
	withProcessList(t, []ps.Process{
		fakeProcess{pid: os.Getpid(), executable: ownExecutableName(t)},
		fakeProcess{pid: 1, executable: "init"},
	}, nil)

	require.NoError(t, EnsureExclusive(context.Background()))
}

// TestEnsureExclusive_ConcurrentInstance rejects a second process with the same name.
func TestEnsureExclusive_ConcurrentInstance(t *testing.T) {
	withProcessList(t, []ps.Process{
		fakeProcess{pid: os.Getpid(), executable: ownExecutableName(t)},
		fakeProcess{pid: 4242, executable: ownExecutableName(t)},
	}, nil)

	err := EnsureExclusive(context.Background())
	require.ErrorIs(t, err, ErrAlreadyRunning)
	require.ErrorContains(t, err, "4242")
}

// TestEnsureExclusive_ScanFailure surfaces process-table errors.
func TestEnsureExclusive_ScanFailure(t *testing.T) {
	scanErr := errors.New("proc unavailable")
	withProcessList(t, nil, scanErr)

	err := EnsureExclusive(context.Background())
	require.ErrorIs(t, err, scanErr)
}

//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-ps"

	"github.com/drmikehenry/romt-pipeline/internal/logger"
)

// ErrAlreadyRunning indicates another live pipeline process was found.
// Jobs that are about to destroy staging directories refuse to start in
// that situation: correctness of the clean-then-write ordering relies on
// there being no concurrent writer.
var ErrAlreadyRunning = errors.New("another pipeline instance is running")

// processLister is the process-scan seam, replaced in tests.
//
//nolint:gochecknoglobals // Swapped only by tests in this package.
var processLister = ps.Processes

// EnsureExclusive scans the process table for another live process with this
// executable's name and fails when one exists.
func EnsureExclusive(ctx context.Context) error {
	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve own executable: %w", err)
	}

	name := filepath.Base(self)

	processes, err := processLister()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	thisProcessID := os.Getpid()

	for _, process := range processes {
		if process.Pid() == thisProcessID {
			continue
		}

		if process.Executable() != name {
			continue
		}

		logger.InfoKV(ctx, "Found concurrent pipeline process", "pid", process.Pid())

		return fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, process.Pid())
	}

	return nil
}

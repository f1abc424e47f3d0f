package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/drmikehenry/romt-pipeline/internal/config"
	"github.com/drmikehenry/romt-pipeline/internal/logger"
	"github.com/drmikehenry/romt-pipeline/internal/version"
)

var (
	// configPath to the pipeline settings YAML file.
	configPath string
	// logLevel selects the minimum level for console logging.
	logLevel string

	// rootCmd represents the base command holding one subcommand per job.
	rootCmd = &cobra.Command{
		Use:   "romt-pipeline",
		Short: "Build, verification and release pipeline for the romt project",
		Long: `romt-pipeline drives the external tools of the romt project: formatting,
linting, type checking, tests, license collection, the single-file
executable build, and the release flow that collects per-platform
artifacts and distribution archives.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}
		},
	}
)

// Execute runs the romt-pipeline CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c",
		config.DefaultConfigFilename, "path to pipeline settings file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level",
		"info", "logging level (debug, info, warn, error)")
}

// jobContext returns a context cancelled by SIGTERM/SIGINT for one job run.
func jobContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
}

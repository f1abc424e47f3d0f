package cmd

import (
	"github.com/spf13/cobra"

	"github.com/drmikehenry/romt-pipeline/internal/service/build"
)

// buildCmd packages the single-file executable for the current host.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the single-file executable and collect it for release",
	Long: `Builds the project's single-file executable for the current host platform
and copies it into the release collection directory under its
version- and platform-qualified name (e.g. dist/github/romt-0.6.1-x86_64-linux).`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		// Setup graceful shutdown handling.
		ctx, stop := jobContext()
		defer stop()

		return build.Run(ctx, &build.Options{ConfigPath: configPath})
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(buildCmd)
}

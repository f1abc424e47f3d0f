package cmd

import (
	"github.com/spf13/cobra"

	"github.com/drmikehenry/romt-pipeline/internal/service/release"
)

// releaseCmd runs the full release pipeline for the current host.
var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Run the release pipeline and print the remaining manual steps",
	Long: `Resets the distribution state, builds the current platform's executable,
exports the frozen dependency list, builds and validates the sdist and
wheel archives, and finally prints the checklist of manual follow-up
actions (remaining platform builds, tagging, uploading, publishing).`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		// Setup graceful shutdown handling.
		ctx, stop := jobContext()
		defer stop()

		return release.Run(ctx, &release.Options{ConfigPath: configPath})
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(releaseCmd)
}

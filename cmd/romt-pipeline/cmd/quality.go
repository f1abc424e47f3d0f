package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/drmikehenry/romt-pipeline/internal/service/quality"
)

// qualityJob is the signature shared by the verification job entry points.
type qualityJob func(ctx context.Context, opts *quality.Options) error

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(
		qualityCommand("fmt", "Rewrite import order and formatting in place", false, quality.Fmt),
		qualityCommand("lint", "Check lint rules and formatting without modifying files", false, quality.Lint),
		qualityCommand("lint-fix", "Apply automatic lint fixes", false, quality.LintFix),
		qualityCommand("typecheck", "Run static type analysis over src, tests and tooling", false, quality.TypeCheck),
		qualityCommand("test", "Run the test suite with coverage (extra args pass through)", true, quality.Test),
		qualityCommand("licenses", "Report license data for the frozen dependency set", true, quality.Licenses),
	)
}

// qualityCommand builds one cobra command around a verification job.
func qualityCommand(use, short string, passArgs bool, job qualityJob) *cobra.Command {
	argPolicy := cobra.NoArgs
	if passArgs {
		argPolicy = cobra.ArbitraryArgs
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  argPolicy,
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := jobContext()
			defer stop()

			return job(ctx, &quality.Options{
				ConfigPath: configPath,
				ExtraArgs:  args,
			})
		},
	}
}

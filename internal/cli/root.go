package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"NarrativeScanner/internal/app"
	"NarrativeScanner/internal/config"
	"NarrativeScanner/internal/logging"
	"NarrativeScanner/internal/usecase"
)

// NewRootCommand builds the single entry point. Only --verbose and --save are accepted.
func NewRootCommand(load func() config.Config, out io.Writer) *cobra.Command {
	var opts usecase.RunOptions

	cmd := &cobra.Command{
		Use:   "narrativescanner",
		Short: "Detect ecosystem narratives and suggest build ideas",
		Long: `narrativescanner pulls public signals (trending repositories, forum posts,
news headlines, protocol TVL, trending coins), matches them against fixed keyword
rules to surface narratives, and maps each narrative to templated build ideas.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := load()
			logger := logging.New(cfg.Logging.Level)
			application := app.New(cfg, logger, out)
			return application.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "print per-signal and per-narrative detail")
	cmd.Flags().BoolVarP(&opts.Save, "save", "s", false, "write the report to a dated JSON file")

	return cmd
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCommand(config.Load, os.Stdout).ExecuteContext(ctx)
}

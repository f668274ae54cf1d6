package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"flight_hours/internal/scheduler"
	"flight_hours/internal/tasks"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	paths := &pathFlags{}
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run processing whenever the input file changes",
		Long: `Check the input file every --interval and repeat "run" when it has changed.
Stops on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				return fmt.Errorf("--interval must be greater than 0")
			}

			inputPath, _ := paths.resolve(opts.cfg)
			ctx := cmd.Context()

			s := scheduler.New(ctx)
			s.AddTask(tasks.NewReprocessTask(inputPath, interval, func(ctx context.Context) error {
				return runFlights(ctx, opts.cfg, paths)
			}))

			slog.Info("Watching input", "input", inputPath, "interval", interval.String())
			s.Start()
			// Tasks return once ctx is cancelled
			s.Wait()
			s.Stop()
			return nil
		},
	}

	paths.register(cmd)
	cmd.Flags().DurationVar(&interval, "interval", 5*time.Second, "How often to check the input file")
	return cmd
}

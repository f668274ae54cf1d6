package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"flight_hours/internal/config"
)

// rootOptions carries state shared by every subcommand. cfg is filled in by
// the root's persistent pre-run.
type rootOptions struct {
	configPath string
	cfg        *config.Config
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	paths := &pathFlags{}

	rootCmd := &cobra.Command{
		Use:   "flight_hours",
		Short: "Monthly flight hours and overload flags per specialist",
		Long: `flight_hours reads flights and specialists, credits every crew member with the
flight's hours month by month, and flags months with more than 80 hours, a week
over 36 hours or a day over 8 hours.

Run without a subcommand it behaves like "flight_hours run".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlights(cmd.Context(), opts.cfg, paths)
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional
			_ = godotenv.Load()

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			initLogger(cfg, cmd.ErrOrStderr())
			if cfg.ConfigFile != "" {
				slog.Debug("Loaded configuration", "file", cfg.ConfigFile)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (yaml, json, toml or properties)")
	paths.register(rootCmd)

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newReportCmd(opts))
	rootCmd.AddCommand(newHistoryCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))

	return rootCmd
}

// Execute runs the root command until it finishes or the process is interrupted
func Execute(version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd()
	rootCmd.Version = version
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("Command failed", "error", err)
		return err
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"flight_hours/internal/config"
	"flight_hours/internal/database"
	"flight_hours/internal/fileio"
	"flight_hours/internal/models"
	"flight_hours/internal/notify"
	"flight_hours/internal/processor"
	"flight_hours/internal/tasks"
)

// pathFlags override the configured input and output paths
type pathFlags struct {
	input  string
	output string
}

func (p *pathFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.input, "input", "i", "", "Input file (.json, .yaml or .yml); overrides input_path")
	cmd.Flags().StringVarP(&p.output, "output", "o", "", "Output JSON file; overrides output_path")
}

func (p *pathFlags) resolve(cfg *config.Config) (input, output string) {
	input, output = cfg.InputPath, cfg.OutputPath
	if p.input != "" {
		input = p.input
	}
	if p.output != "" {
		output = p.output
	}
	return input, output
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	paths := &pathFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process flights and write monthly summaries",
		Long: `Process the input file and write the per-specialist monthly summaries as JSON.
When store.db_path is set the run is archived, and when notify.amqp_url is set
an alert is published for every flagged month.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlights(cmd.Context(), opts.cfg, paths)
		},
	}
	paths.register(cmd)
	return cmd
}

func runFlights(ctx context.Context, cfg *config.Config, paths *pathFlags) error {
	inputPath, outputPath := paths.resolve(cfg)
	run := &models.Run{
		ID:         uuid.New().String(),
		StartedAt:  time.Now().UTC(),
		InputPath:  inputPath,
		OutputPath: outputPath,
	}
	logger := slog.With("run_id", run.ID)
	logger.Info("Starting run", "input", inputPath, "output", outputPath, "workers", cfg.Workers)

	input, err := fileio.Load(inputPath)
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}

	output, err := processor.New(processor.WithWorkers(cfg.Workers)).Process(*input)
	if err != nil {
		return fmt.Errorf("process flights: %w", err)
	}

	if err := fileio.Save(outputPath, output, cfg.PrettyOutput); err != nil {
		return fmt.Errorf("save output: %w", err)
	}

	run.FlightCount = len(input.Flights)
	run.SpecialistCount = len(output.Specialists)

	if cfg.Store.DBPath != "" {
		if err := archiveRun(ctx, cfg.Store, run, output.Specialists); err != nil {
			return err
		}
	}

	if cfg.Notify.AMQPURL != "" {
		if err := publishAlerts(ctx, cfg.Notify, run.ID, output.Specialists); err != nil {
			return err
		}
	}

	logger.Info("Run complete",
		"flights", run.FlightCount,
		"specialists", run.SpecialistCount,
		"duration", time.Since(run.StartedAt).String())
	return nil
}

func archiveRun(ctx context.Context, store config.StoreConfig, run *models.Run, specialists []models.Specialist) error {
	db, err := database.New(store.DBPath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer db.Close()

	archiver := tasks.NewArchiver(db)
	archiver.BatchSize = store.BatchSize
	archiver.FlushInterval = store.FlushInterval
	return archiver.Archive(ctx, run, specialists)
}

func publishAlerts(ctx context.Context, cfg config.NotifyConfig, runID string, specialists []models.Specialist) error {
	alerts := notify.Alerts(runID, specialists)
	if len(alerts) == 0 {
		slog.Debug("No flagged months, nothing to publish", "run_id", runID)
		return nil
	}

	client, err := notify.NewClient(cfg.AMQPURL, cfg.Exchange, cfg.Queue)
	if err != nil {
		return fmt.Errorf("connect to broker: %w", err)
	}
	defer client.Close()

	return notify.PublishAll(ctx, client, alerts)
}

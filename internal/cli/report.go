package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"flight_hours/internal/fileio"
	"flight_hours/internal/processor"
	"flight_hours/internal/report"
)

func newReportCmd(opts *rootOptions) *cobra.Command {
	paths := &pathFlags{}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print monthly summaries as a table without writing output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath, _ := paths.resolve(opts.cfg)

			input, err := fileio.Load(inputPath)
			if err != nil {
				return fmt.Errorf("load input: %w", err)
			}

			output, err := processor.New(processor.WithWorkers(opts.cfg.Workers)).Process(*input)
			if err != nil {
				return fmt.Errorf("process flights: %w", err)
			}

			return report.PrintSpecialists(cmd.OutOrStdout(), output.Specialists)
		},
	}
	cmd.Flags().StringVarP(&paths.input, "input", "i", "", "Input file (.json, .yaml or .yml); overrides input_path")
	return cmd
}

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"flight_hours/internal/database"
	"flight_hours/internal/report"
)

var errNoArchive = errors.New("store.db_path is not configured")

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var (
		limit        int
		specialistID int64
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived runs, or one specialist's archived months",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.cfg.Store.DBPath == "" {
				return errNoArchive
			}
			if limit <= 0 {
				return fmt.Errorf("--limit must be greater than 0")
			}

			db, err := database.New(opts.cfg.Store.DBPath)
			if err != nil {
				return fmt.Errorf("open archive: %w", err)
			}
			defer db.Close()

			if cmd.Flags().Changed("specialist") {
				rows, err := db.SummaryRepository().ListBySpecialist(specialistID)
				if err != nil {
					return err
				}
				return report.PrintHistory(cmd.OutOrStdout(), specialistID, rows)
			}

			runs, err := db.RunRepository().List(limit)
			if err != nil {
				return err
			}
			return report.PrintRuns(cmd.OutOrStdout(), runs)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")
	cmd.Flags().Int64VarP(&specialistID, "specialist", "s", 0, "Show archived months for this specialist id")
	return cmd
}

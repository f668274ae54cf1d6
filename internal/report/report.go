// Package report renders processed and archived flight hours as text tables.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"flight_hours/internal/models"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// PrintSpecialists writes one row per specialist month. Specialists without
// flight time get a single placeholder row.
func PrintSpecialists(w io.Writer, specialists []models.Specialist) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tMONTH\tHOURS\tOVER 80H\tWEEK OVER 36H\tDAY OVER 8H")
	for _, s := range specialists {
		if len(s.MonthlyData) == 0 {
			fmt.Fprintf(tw, "%d\t%s\t-\t0\t-\t-\t-\n", s.ID, s.Name)
			continue
		}
		for _, m := range s.MonthlyData {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\t%s\n",
				s.ID, s.Name, m.Month, m.FlightTimeHours,
				yesNo(m.Flags.Over80Hours), yesNo(m.Flags.WeeksOver36Hours), yesNo(m.Flags.DaysOver8Hours))
		}
	}
	return tw.Flush()
}

// PrintRuns writes archived runs, newest first as given.
func PrintRuns(w io.Writer, runs []*models.Run) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No archived runs.")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "RUN\tSTARTED\tFLIGHTS\tSPECIALISTS\tINPUT\tOUTPUT")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n",
			r.ID, r.StartedAt.UTC().Format(time.RFC3339), r.FlightCount, r.SpecialistCount, r.InputPath, r.OutputPath)
	}
	return tw.Flush()
}

// PrintHistory writes a specialist's archived months across runs.
func PrintHistory(w io.Writer, specialistID int64, rows []*models.MonthlySummary) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintf(w, "No archived months for specialist %d.\n", specialistID)
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "RUN\tNAME\tMONTH\tHOURS\tOVER 80H\tWEEK OVER 36H\tDAY OVER 8H")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			r.RunID, r.SpecialistName, r.Month, r.FlightTimeHours,
			yesNo(r.Flags.Over80Hours), yesNo(r.Flags.WeeksOver36Hours), yesNo(r.Flags.DaysOver8Hours))
	}
	return tw.Flush()
}

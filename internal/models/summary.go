package models

import "time"

// Run describes one archived processing run.
type Run struct {
	ID              string
	StartedAt       time.Time
	InputPath       string
	OutputPath      string
	FlightCount     int
	SpecialistCount int
}

// MonthlySummary is a flattened MonthlyData row tied to a run and specialist.
type MonthlySummary struct {
	RunID           string
	SpecialistID    int64
	SpecialistName  string
	Month           string
	FlightTimeHours int64
	Flags           Flags
}

// Summaries flattens the monthly data of every specialist for archiving.
func Summaries(runID string, specialists []Specialist) []*MonthlySummary {
	var rows []*MonthlySummary
	for _, s := range specialists {
		for _, m := range s.MonthlyData {
			rows = append(rows, &MonthlySummary{
				RunID:           runID,
				SpecialistID:    s.ID,
				SpecialistName:  s.Name,
				Month:           m.Month,
				FlightTimeHours: m.FlightTimeHours,
				Flags:           m.Flags,
			})
		}
	}
	return rows
}

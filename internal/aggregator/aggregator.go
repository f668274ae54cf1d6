// Package aggregator accumulates one specialist's flight time per month and
// derives the monthly overload flags.
package aggregator

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"flight_hours/internal/hours"
	"flight_hours/internal/models"
)

// MonthlyAggregator owns the monthly data of a single specialist for the
// duration of a run. Nothing else mutates it; callers read it via Snapshot.
type MonthlyAggregator struct {
	specialistID   int64
	specialistName string
	months         map[string]*models.MonthlyData
}

// New creates an aggregator seeded with a copy of the specialist's existing
// monthly data.
func New(specialist models.Specialist) *MonthlyAggregator {
	a := &MonthlyAggregator{
		specialistID:   specialist.ID,
		specialistName: specialist.Name,
		months:         make(map[string]*models.MonthlyData, len(specialist.MonthlyData)),
	}
	for _, m := range specialist.MonthlyData {
		data := m
		a.months[m.Month] = &data
	}
	return a
}

// Aggregate merges a batch of flights into the monthly totals and recomputes
// the flags of every month the batch touched. Inverted flights are skipped.
// Daily and weekly maxima only consider the flights of this batch.
func (a *MonthlyAggregator) Aggregate(flights []models.Flight) error {
	log := slog.With("specialist_id", a.specialistID)

	monthlyHours := make(map[string]int64)
	dailyHours := make(map[hours.Date]int64)

	for _, flight := range flights {
		if flight.IsInverted() {
			log.Error("Skipping flight, takeoff is after landing",
				"specialist_name", a.specialistName,
				"takeoff_time", flight.TakeoffTime.String(),
				"landing_time", flight.LandingTime.String(),
				"aircraft_type", flight.AircraftType,
				"aircraft_number", flight.AircraftNumber,
			)
			continue
		}

		takeoff, landing := flight.TakeoffTime.Time, flight.LandingTime.Time
		total := flight.DurationHours()

		for month, h := range hours.DistributeByMonth(takeoff, landing, total) {
			monthlyHours[month] += h
		}
		for day, h := range hours.DistributeByDay(takeoff, landing, total) {
			dailyHours[day] += h
		}
	}

	touched := slices.Sorted(maps.Keys(monthlyHours))
	for _, month := range touched {
		if err := a.getOrCreate(month).AddFlightTime(monthlyHours[month]); err != nil {
			return fmt.Errorf("specialist %d: %w", a.specialistID, err)
		}
		log.Debug("Updated monthly hours", "month", month, "hours", monthlyHours[month])
	}

	dailyMax, weeklyMax := maxima(dailyHours)
	for _, month := range touched {
		a.months[month].UpdateFlags(dailyMax[month], weeklyMax[month])
	}

	return nil
}

// maxima returns, per month key, the largest single-day total among dates in
// that month and the largest ISO-week total among weeks starting in that month.
func maxima(dailyHours map[hours.Date]int64) (daily, weekly map[string]int64) {
	weekTotals := make(map[hours.Date]int64)
	daily = make(map[string]int64)
	for day, h := range dailyHours {
		weekTotals[day.WeekStart()] += h

		month := day.MonthKey()
		if h > daily[month] {
			daily[month] = h
		}
	}

	weekly = make(map[string]int64)
	for start, total := range weekTotals {
		month := start.MonthKey()
		if total > weekly[month] {
			weekly[month] = total
		}
	}
	return daily, weekly
}

func (a *MonthlyAggregator) getOrCreate(month string) *models.MonthlyData {
	if data, ok := a.months[month]; ok {
		return data
	}
	data := &models.MonthlyData{Month: month}
	a.months[month] = data
	slog.Debug("Created monthly data", "specialist_id", a.specialistID, "month", month)
	return data
}

// Snapshot returns a copy of the monthly data sorted by month. The result is
// never nil.
func (a *MonthlyAggregator) Snapshot() []models.MonthlyData {
	out := make([]models.MonthlyData, 0, len(a.months))
	for _, data := range a.months {
		out = append(out, *data)
	}
	slices.SortFunc(out, func(x, y models.MonthlyData) int {
		return strings.Compare(x.Month, y.Month)
	})
	return out
}

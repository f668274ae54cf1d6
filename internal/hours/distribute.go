package hours

import (
	"log/slog"
	"time"
)

// DurationHours returns landing minus takeoff truncated to whole hours.
// Callers must ensure takeoff is not after landing.
func DurationHours(takeoff, landing time.Time) int64 {
	return int64(landing.Sub(takeoff) / time.Hour)
}

// DistributeByDay splits totalHours across the calendar dates between takeoff
// and landing. The takeoff date gets the hours left until midnight, the landing
// date gets the hours since midnight and every date in between gets a full day,
// each capped by what remains. Hours still left after the nominal span spill
// onto the dates following the landing date, a full day at a time.
func DistributeByDay(takeoff, landing time.Time, totalHours int64) map[Date]int64 {
	days := make(map[Date]int64)
	remaining := totalHours

	assign := func(d Date, limit int64) {
		h := min(limit, remaining)
		days[d] += h
		remaining -= h
		slog.Debug("Added hours for day", "date", d.String(), "hours", h)
	}

	start, end := DateOf(takeoff), DateOf(landing)
	if start == end {
		assign(start, HoursPerDay)
	} else {
		assign(start, HoursPerDay-int64(takeoff.Hour()))
		assign(end, int64(landing.Hour()))
		for d := start.AddDays(1); d.Before(end); d = d.AddDays(1) {
			assign(d, HoursPerDay)
		}
	}

	last := end
	if last.Before(start) {
		last = start
	}
	for d := last.AddDays(1); remaining > 0; d = d.AddDays(1) {
		assign(d, HoursPerDay)
	}

	return days
}

// DistributeByMonth walks every date from takeoff to landing inclusive and
// sums the per-date share into YYYY-MM keys. It applies the same first, last
// and middle day rule as DistributeByDay but does not reuse its output, and it
// has no spill-over: a visited month always gets a key, even with zero hours.
func DistributeByMonth(takeoff, landing time.Time, totalHours int64) map[string]int64 {
	months := make(map[string]int64)
	remaining := totalHours

	start, end := DateOf(takeoff), DateOf(landing)
	for d := start; !end.Before(d); d = d.AddDays(1) {
		var limit int64
		switch d {
		case start:
			limit = HoursPerDay - int64(takeoff.Hour())
		case end:
			limit = int64(landing.Hour())
		default:
			limit = HoursPerDay
		}

		h := min(limit, remaining)
		remaining -= h

		month := d.MonthKey()
		months[month] += h
		slog.Debug("Added hours for month", "date", d.String(), "month", month, "hours", h)
	}

	return months
}

package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func sumDays(days map[Date]int64) int64 {
	var total int64
	for _, h := range days {
		total += h
	}
	return total
}

func TestDurationHours(t *testing.T) {
	tests := []struct {
		name    string
		takeoff time.Time
		landing time.Time
		want    int64
	}{
		{"zero duration", ts(2024, 11, 30, 10, 0), ts(2024, 11, 30, 10, 0), 0},
		{"whole hours", ts(2024, 10, 30, 9, 0), ts(2024, 10, 30, 18, 0), 9},
		{"truncates minutes", ts(2024, 10, 30, 9, 10), ts(2024, 10, 30, 18, 9), 8},
		{"under an hour", ts(2024, 10, 30, 9, 0), ts(2024, 10, 30, 9, 59), 0},
		{"across midnight", ts(2024, 12, 31, 22, 0), ts(2025, 1, 1, 5, 0), 7},
		{"multi day", ts(2024, 6, 30, 10, 0), ts(2024, 7, 2, 15, 0), 53},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationHours(tt.takeoff, tt.landing))
		})
	}
}

func TestDateHelpers(t *testing.T) {
	d := NewDate(2024, 12, 31)
	assert.Equal(t, NewDate(2025, 1, 1), d.AddDays(1))
	assert.Equal(t, "2024-12", d.MonthKey())
	assert.Equal(t, "2024-12-31", d.String())
	assert.True(t, d.Before(NewDate(2025, 1, 1)))
	assert.False(t, d.Before(d))
	assert.Equal(t, "0987-03", NewDate(987, 3, 1).MonthKey())
	assert.Equal(t, "2024-02", MonthKey(ts(2024, 2, 29, 23, 59)))
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		date Date
		want Date
	}{
		{NewDate(2024, 7, 1), NewDate(2024, 7, 1)},     // Monday
		{NewDate(2024, 6, 30), NewDate(2024, 6, 24)},   // Sunday
		{NewDate(2024, 10, 31), NewDate(2024, 10, 28)}, // Thursday
		{NewDate(2024, 12, 1), NewDate(2024, 11, 25)},  // Sunday
		{NewDate(2025, 1, 1), NewDate(2024, 12, 30)},   // across the year
	}
	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.WeekStart())
		})
	}
}

func TestDistributeByDay(t *testing.T) {
	t.Run("single day", func(t *testing.T) {
		days := DistributeByDay(ts(2024, 10, 30, 9, 0), ts(2024, 10, 30, 18, 0), 9)
		assert.Equal(t, map[Date]int64{NewDate(2024, 10, 30): 9}, days)
	})

	t.Run("zero duration", func(t *testing.T) {
		days := DistributeByDay(ts(2024, 11, 30, 10, 0), ts(2024, 11, 30, 10, 0), 0)
		assert.Equal(t, int64(0), sumDays(days))
	})

	t.Run("two days across month end", func(t *testing.T) {
		days := DistributeByDay(ts(2024, 6, 30, 10, 0), ts(2024, 7, 2, 15, 0), 53)
		assert.Equal(t, map[Date]int64{
			NewDate(2024, 6, 30): 14,
			NewDate(2024, 7, 1):  24,
			NewDate(2024, 7, 2):  15,
		}, days)
	})

	t.Run("landing date is capped by what remains", func(t *testing.T) {
		// 10:30 -> 15:00 two days later truncates to 52 hours; the middle
		// date only gets what is left after the first and last dates.
		days := DistributeByDay(ts(2024, 6, 30, 10, 30), ts(2024, 7, 2, 15, 0), 52)
		assert.Equal(t, int64(14), days[NewDate(2024, 6, 30)])
		assert.Equal(t, int64(15), days[NewDate(2024, 7, 2)])
		assert.Equal(t, int64(23), days[NewDate(2024, 7, 1)])
		assert.Equal(t, int64(52), sumDays(days))
	})

	t.Run("whole month in the middle", func(t *testing.T) {
		days := DistributeByDay(ts(2024, 10, 31, 22, 0), ts(2024, 12, 1, 5, 0), 727)
		assert.Len(t, days, 32)
		assert.Equal(t, int64(2), days[NewDate(2024, 10, 31)])
		assert.Equal(t, int64(5), days[NewDate(2024, 12, 1)])
		for d := NewDate(2024, 11, 1); d.Before(NewDate(2024, 12, 1)); d = d.AddDays(1) {
			assert.Equal(t, int64(24), days[d], d.String())
		}
	})

	t.Run("spill over continues after the landing date", func(t *testing.T) {
		days := DistributeByDay(ts(2024, 3, 1, 20, 0), ts(2024, 3, 2, 2, 0), 40)
		assert.Equal(t, map[Date]int64{
			NewDate(2024, 3, 1): 4,
			NewDate(2024, 3, 2): 2,
			NewDate(2024, 3, 3): 24,
			NewDate(2024, 3, 4): 10,
		}, days)
	})

	t.Run("same day spill over", func(t *testing.T) {
		days := DistributeByDay(ts(2024, 3, 1, 0, 0), ts(2024, 3, 1, 5, 0), 30)
		assert.Equal(t, int64(24), days[NewDate(2024, 3, 1)])
		assert.Equal(t, int64(6), days[NewDate(2024, 3, 2)])
	})
}

func TestDistributeByMonth(t *testing.T) {
	tests := []struct {
		name    string
		takeoff time.Time
		landing time.Time
		want    map[string]int64
	}{
		{
			name:    "single day",
			takeoff: ts(2024, 10, 30, 9, 0),
			landing: ts(2024, 10, 30, 18, 0),
			want:    map[string]int64{"2024-10": 9},
		},
		{
			name:    "zero duration still yields the month",
			takeoff: ts(2024, 11, 30, 10, 0),
			landing: ts(2024, 11, 30, 10, 0),
			want:    map[string]int64{"2024-11": 0},
		},
		{
			name:    "june into july",
			takeoff: ts(2024, 6, 30, 10, 0),
			landing: ts(2024, 7, 2, 15, 0),
			want:    map[string]int64{"2024-06": 14, "2024-07": 39},
		},
		{
			name:    "october through december",
			takeoff: ts(2024, 10, 31, 22, 0),
			landing: ts(2024, 12, 1, 5, 0),
			want:    map[string]int64{"2024-10": 2, "2024-11": 720, "2024-12": 5},
		},
		{
			name:    "month end",
			takeoff: ts(2024, 1, 31, 22, 0),
			landing: ts(2024, 2, 1, 5, 0),
			want:    map[string]int64{"2024-01": 2, "2024-02": 5},
		},
		{
			name:    "year boundary",
			takeoff: ts(2024, 12, 31, 22, 0),
			landing: ts(2025, 1, 1, 5, 0),
			want:    map[string]int64{"2024-12": 2, "2025-01": 5},
		},
		{
			name:    "landing at midnight",
			takeoff: ts(2024, 2, 29, 20, 0),
			landing: ts(2024, 3, 1, 0, 0),
			want:    map[string]int64{"2024-02": 4, "2024-03": 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := DurationHours(tt.takeoff, tt.landing)
			assert.Equal(t, tt.want, DistributeByMonth(tt.takeoff, tt.landing, total))
		})
	}
}

func TestDistributeByMonthHasNoSpillOver(t *testing.T) {
	// The day split spills excess hours past the landing date; the month
	// walk stops at the landing date. The two are kept independent.
	takeoff, landing := ts(2024, 3, 31, 20, 0), ts(2024, 3, 31, 22, 0)

	months := DistributeByMonth(takeoff, landing, 30)
	assert.Equal(t, map[string]int64{"2024-03": 4}, months)

	days := DistributeByDay(takeoff, landing, 30)
	assert.Equal(t, int64(24), days[NewDate(2024, 3, 31)])
	assert.Equal(t, int64(6), days[NewDate(2024, 4, 1)])
}

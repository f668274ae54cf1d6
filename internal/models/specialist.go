package models

import (
	"errors"
	"fmt"
)

// Overload thresholds, exclusive.
const (
	MaxMonthlyHours = 80
	MaxWeeklyHours  = 36
	MaxDailyHours   = 8
)

// ErrNegativeHours is returned when a negative amount is added to a month.
var ErrNegativeHours = errors.New("flight time cannot be negative")

// Specialist is a crew member and the months they have flown.
type Specialist struct {
	ID          int64         `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	MonthlyData []MonthlyData `json:"monthlyData" yaml:"monthlyData,omitempty"`
}

// Flags are the overload indicators of one month.
type Flags struct {
	Over80Hours      bool `json:"over80Hours" yaml:"over80Hours"`
	WeeksOver36Hours bool `json:"weeksOver36Hours" yaml:"weeksOver36Hours"`
	DaysOver8Hours   bool `json:"daysOver8Hours" yaml:"daysOver8Hours"`
}

// Any reports whether at least one flag is raised.
func (f Flags) Any() bool {
	return f.Over80Hours || f.WeeksOver36Hours || f.DaysOver8Hours
}

// MonthlyData accumulates one specialist's flight time for a YYYY-MM month.
type MonthlyData struct {
	Month           string `json:"month" yaml:"month"`
	FlightTimeHours int64  `json:"flightTimeHours" yaml:"flightTimeHours"`
	Flags           Flags  `json:"flags" yaml:"flags"`
}

// AddFlightTime adds hours to the month total. Negative values are rejected
// and leave the total unchanged.
func (m *MonthlyData) AddFlightTime(hours int64) error {
	if hours < 0 {
		return fmt.Errorf("month %s: adding %d hours: %w", m.Month, hours, ErrNegativeHours)
	}
	m.FlightTimeHours += hours
	return nil
}

// UpdateFlags recomputes all three flags from the current total and the
// given maxima. Previous flag values are overwritten, not OR-ed.
func (m *MonthlyData) UpdateFlags(dailyMaxHours, weeklyMaxHours int64) {
	m.Flags = Flags{
		Over80Hours:      m.FlightTimeHours > MaxMonthlyHours,
		WeeksOver36Hours: weeklyMaxHours > MaxWeeklyHours,
		DaysOver8Hours:   dailyMaxHours > MaxDailyHours,
	}
}

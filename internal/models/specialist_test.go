package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyData_AddFlightTime(t *testing.T) {
	m := &MonthlyData{Month: "2024-10"}

	require.NoError(t, m.AddFlightTime(5))
	require.NoError(t, m.AddFlightTime(0))
	require.NoError(t, m.AddFlightTime(3))
	assert.Equal(t, int64(8), m.FlightTimeHours)
}

func TestMonthlyData_AddFlightTime_Negative(t *testing.T) {
	m := &MonthlyData{Month: "2024-10", FlightTimeHours: 12}

	err := m.AddFlightTime(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNegativeHours))
	assert.Contains(t, err.Error(), "month 2024-10")
	assert.Equal(t, int64(12), m.FlightTimeHours, "total must be unchanged")
}

func TestMonthlyData_UpdateFlags(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		dailyMax  int64
		weeklyMax int64
		expected  Flags
	}{
		{"at thresholds", 80, 8, 36, Flags{}},
		{"over month", 81, 0, 0, Flags{Over80Hours: true}},
		{"over week", 0, 0, 37, Flags{WeeksOver36Hours: true}},
		{"over day", 0, 9, 0, Flags{DaysOver8Hours: true}},
		{"all", 720, 24, 168, Flags{Over80Hours: true, WeeksOver36Hours: true, DaysOver8Hours: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MonthlyData{Month: "2024-11", FlightTimeHours: tt.total}
			m.UpdateFlags(tt.dailyMax, tt.weeklyMax)
			assert.Equal(t, tt.expected, m.Flags)
			assert.Equal(t, tt.expected != Flags{}, m.Flags.Any())
		})
	}
}

func TestMonthlyData_UpdateFlagsOverwrites(t *testing.T) {
	m := &MonthlyData{Month: "2024-11", FlightTimeHours: 10,
		Flags: Flags{Over80Hours: true, WeeksOver36Hours: true, DaysOver8Hours: true}}

	m.UpdateFlags(2, 2)
	assert.Equal(t, Flags{}, m.Flags)
}

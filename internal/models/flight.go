package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"flight_hours/internal/hours"
)

// localTimeLayouts are the accepted wall-clock formats. Fractional seconds
// are accepted after the seconds field even though the layout omits them.
var localTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// LocalTime is a naive wall-clock timestamp without offset. It is held in UTC
// so date arithmetic never crosses a DST transition.
type LocalTime struct {
	time.Time
}

// NewLocalTime builds a LocalTime from calendar fields.
func NewLocalTime(year int, month time.Month, day, hour, minute int) LocalTime {
	return LocalTime{time.Date(year, month, day, hour, minute, 0, 0, time.UTC)}
}

// ParseLocalTime parses an ISO-8601 local date-time such as 2024-10-30T09:00:00.
func ParseLocalTime(s string) (LocalTime, error) {
	s = strings.TrimSpace(s)
	for _, layout := range localTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return LocalTime{t}, nil
		}
	}
	return LocalTime{}, fmt.Errorf("invalid local date-time %q: expected YYYY-MM-DDTHH:MM[:SS]", s)
}

// String formats the timestamp the way it is read.
func (t LocalTime) String() string {
	return t.Format(localTimeLayouts[0])
}

// MarshalJSON implements json.Marshaler
func (t LocalTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (t *LocalTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = LocalTime{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("local date-time must be a string: %w", err)
	}
	parsed, err := ParseLocalTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (t *LocalTime) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: local date-time must be a scalar", value.Line)
	}
	parsed, err := ParseLocalTime(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = parsed
	return nil
}

// Flight is a single flight record with the crew that flew it.
// A specialist listed twice in Crew is credited twice.
type Flight struct {
	AircraftType     string    `json:"aircraft_type" yaml:"aircraft_type"`
	AircraftNumber   int       `json:"aircraft_number" yaml:"aircraft_number"`
	TakeoffTime      LocalTime `json:"takeoff_time" yaml:"takeoff_time"`
	LandingTime      LocalTime `json:"landing_time" yaml:"landing_time"`
	DepartureAirport string    `json:"departure_airport" yaml:"departure_airport"`
	ArrivalAirport   string    `json:"arrival_airport" yaml:"arrival_airport"`
	Crew             []int64   `json:"crew" yaml:"crew"`
}

// DurationHours returns the flight time truncated to whole hours.
func (f Flight) DurationHours() int64 {
	return hours.DurationHours(f.TakeoffTime.Time, f.LandingTime.Time)
}

// TakeoffMonth returns the YYYY-MM key of the takeoff timestamp.
func (f Flight) TakeoffMonth() string {
	return hours.DateOf(f.TakeoffTime.Time).MonthKey()
}

// IsInverted reports whether the flight lands before it takes off.
func (f Flight) IsInverted() bool {
	return f.TakeoffTime.After(f.LandingTime.Time)
}

// InputBundle is the full batch handed to the processor.
// Specialists decides who appears in the output, flights or not.
type InputBundle struct {
	Flights     []Flight     `json:"flights" yaml:"flights"`
	Specialists []Specialist `json:"specialists" yaml:"specialists"`
}

// OutputBundle is the processed result, one entry per known specialist.
type OutputBundle struct {
	Specialists []Specialist `json:"specialists" yaml:"specialists"`
}

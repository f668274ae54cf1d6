// Package fileio reads input bundles from JSON or YAML files and writes
// output bundles as JSON.
package fileio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"flight_hours/internal/models"
)

// ErrMalformedInput wraps every decoding or validation failure of an input file.
var ErrMalformedInput = errors.New("malformed input")

// Format is the encoding of an input file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// rawInput and its element types use pointers so a missing key can be told
// apart from a zero value.
type rawInput struct {
	Flights     *[]rawFlight     `json:"flights" yaml:"flights"`
	Specialists *[]rawSpecialist `json:"specialists" yaml:"specialists"`
}

type rawFlight struct {
	AircraftType     string            `json:"aircraft_type" yaml:"aircraft_type"`
	AircraftNumber   int               `json:"aircraft_number" yaml:"aircraft_number"`
	TakeoffTime      *models.LocalTime `json:"takeoff_time" yaml:"takeoff_time"`
	LandingTime      *models.LocalTime `json:"landing_time" yaml:"landing_time"`
	DepartureAirport string            `json:"departure_airport" yaml:"departure_airport"`
	ArrivalAirport   string            `json:"arrival_airport" yaml:"arrival_airport"`
	Crew             []int64           `json:"crew" yaml:"crew"`
}

type rawSpecialist struct {
	ID          *int64               `json:"id" yaml:"id"`
	Name        string               `json:"name" yaml:"name"`
	MonthlyData []models.MonthlyData `json:"monthlyData" yaml:"monthlyData"`
}

// Load reads and validates the input bundle at path.
func Load(path string) (*models.InputBundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open input file '%s': %w", path, err)
	}
	defer f.Close()

	input, err := Decode(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("could not load '%s': %w", path, err)
	}
	return input, nil
}

// Decode reads an input bundle from r and validates it.
func Decode(r io.Reader, format Format) (*models.InputBundle, error) {
	var raw rawInput
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: could not parse YAML: %v", ErrMalformedInput, err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: could not parse JSON: %v", ErrMalformedInput, err)
		}
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}

	if raw.Flights == nil {
		return nil, fmt.Errorf("%w: missing \"flights\"", ErrMalformedInput)
	}
	if raw.Specialists == nil {
		return nil, fmt.Errorf("%w: missing \"specialists\"", ErrMalformedInput)
	}

	return raw.bundle()
}

// bundle validates the fields the processor cannot do without and converts
// to model types. Inverted flights are not rejected here; the aggregator
// skips them.
func (raw *rawInput) bundle() (*models.InputBundle, error) {
	input := &models.InputBundle{
		Flights:     make([]models.Flight, 0, len(*raw.Flights)),
		Specialists: make([]models.Specialist, 0, len(*raw.Specialists)),
	}

	for i, f := range *raw.Flights {
		if f.TakeoffTime == nil {
			return nil, fmt.Errorf("%w: flights[%d]: missing takeoff_time", ErrMalformedInput, i)
		}
		if f.LandingTime == nil {
			return nil, fmt.Errorf("%w: flights[%d]: missing landing_time", ErrMalformedInput, i)
		}
		input.Flights = append(input.Flights, models.Flight{
			AircraftType:     f.AircraftType,
			AircraftNumber:   f.AircraftNumber,
			TakeoffTime:      *f.TakeoffTime,
			LandingTime:      *f.LandingTime,
			DepartureAirport: f.DepartureAirport,
			ArrivalAirport:   f.ArrivalAirport,
			Crew:             f.Crew,
		})
	}

	for i, s := range *raw.Specialists {
		if s.ID == nil {
			return nil, fmt.Errorf("%w: specialists[%d]: missing id", ErrMalformedInput, i)
		}
		input.Specialists = append(input.Specialists, models.Specialist{
			ID:          *s.ID,
			Name:        s.Name,
			MonthlyData: s.MonthlyData,
		})
	}

	return input, nil
}

// Save writes the output bundle to path as JSON, creating parent directories.
// Nothing is written if encoding fails.
func Save(path string, output *models.OutputBundle, pretty bool) error {
	var buf bytes.Buffer
	if err := Encode(&buf, output, pretty); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create output directory '%s': %w", dir, err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write output file '%s': %w", path, err)
	}
	return nil
}

// Encode writes the output bundle as JSON to w.
func Encode(w io.Writer, output *models.OutputBundle, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(output); err != nil {
		return fmt.Errorf("could not encode output: %w", err)
	}
	return nil
}

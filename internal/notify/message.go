// Package notify publishes overload alerts for flagged months to a message broker.
package notify

import (
	"encoding/json"
	"time"

	"flight_hours/internal/models"
)

// OverloadAlert reports one specialist month with at least one flag raised
type OverloadAlert struct {
	RunID           string       `json:"run_id"`
	SpecialistID    int64        `json:"specialist_id"`
	SpecialistName  string       `json:"specialist_name"`
	Month           string       `json:"month"`
	FlightTimeHours int64        `json:"flight_time_hours"`
	Flags           models.Flags `json:"flags"`
	Timestamp       time.Time    `json:"timestamp"`
}

// ToJSON converts the alert to JSON bytes
func (a *OverloadAlert) ToJSON() ([]byte, error) {
	return json.Marshal(a)
}

// Alerts builds one alert per flagged month, in specialist then month order.
func Alerts(runID string, specialists []models.Specialist) []*OverloadAlert {
	now := time.Now().UTC()
	var alerts []*OverloadAlert
	for _, s := range specialists {
		for _, m := range s.MonthlyData {
			if !m.Flags.Any() {
				continue
			}
			alerts = append(alerts, &OverloadAlert{
				RunID:           runID,
				SpecialistID:    s.ID,
				SpecialistName:  s.Name,
				Month:           m.Month,
				FlightTimeHours: m.FlightTimeHours,
				Flags:           m.Flags,
				Timestamp:       now,
			})
		}
	}
	return alerts
}

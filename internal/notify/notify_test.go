package notify

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight_hours/internal/models"
)

type mockPublisher struct {
	published []*OverloadAlert
	failAt    int
}

func (m *mockPublisher) Publish(ctx context.Context, alert *OverloadAlert) error {
	if m.failAt > 0 && len(m.published)+1 == m.failAt {
		return assert.AnError
	}
	m.published = append(m.published, alert)
	return nil
}

func flaggedSpecialists() []models.Specialist {
	return []models.Specialist{
		{ID: 4, Name: "Danila Kozlovsky", MonthlyData: []models.MonthlyData{
			{Month: "2024-10", FlightTimeHours: 2, Flags: models.Flags{WeeksOver36Hours: true}},
			{Month: "2024-11", FlightTimeHours: 720, Flags: models.Flags{Over80Hours: true, WeeksOver36Hours: true, DaysOver8Hours: true}},
			{Month: "2024-12", FlightTimeHours: 5},
		}},
		{ID: 5, Name: "Vladimir Mashkov", MonthlyData: []models.MonthlyData{}},
		{ID: 6, Name: "Oksana Akinshina", MonthlyData: []models.MonthlyData{
			{Month: "2024-06", FlightTimeHours: 14, Flags: models.Flags{DaysOver8Hours: true}},
		}},
	}
}

func TestAlerts(t *testing.T) {
	alerts := Alerts("run-1", flaggedSpecialists())

	require.Len(t, alerts, 3)
	assert.Equal(t, "2024-10", alerts[0].Month)
	assert.Equal(t, "2024-11", alerts[1].Month)
	assert.Equal(t, int64(720), alerts[1].FlightTimeHours)
	assert.Equal(t, int64(6), alerts[2].SpecialistID)
	for _, a := range alerts {
		assert.Equal(t, "run-1", a.RunID)
		assert.True(t, a.Flags.Any())
		assert.False(t, a.Timestamp.IsZero())
	}
}

func TestAlerts_NothingFlagged(t *testing.T) {
	alerts := Alerts("run-1", []models.Specialist{
		{ID: 1, Name: "Calm", MonthlyData: []models.MonthlyData{{Month: "2024-01", FlightTimeHours: 3}}},
	})
	assert.Empty(t, alerts)
}

func TestOverloadAlert_JSON(t *testing.T) {
	alert := Alerts("run-1", flaggedSpecialists())[0]

	data, err := alert.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"specialist_name":"Danila Kozlovsky"`)
	assert.Contains(t, string(data), `"flags":{"over80Hours":false,"weeksOver36Hours":true,"daysOver8Hours":false}`)

	var decoded OverloadAlert
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, alert.Month, decoded.Month)
	assert.Equal(t, alert.Flags, decoded.Flags)
	assert.True(t, alert.Timestamp.Equal(decoded.Timestamp))
}

func TestPublishAll(t *testing.T) {
	p := &mockPublisher{}
	alerts := Alerts("run-1", flaggedSpecialists())

	require.NoError(t, PublishAll(context.Background(), p, alerts))
	assert.Equal(t, alerts, p.published)
}

func TestPublishAll_StopsAtFirstFailure(t *testing.T) {
	p := &mockPublisher{failAt: 2}
	alerts := Alerts("run-1", flaggedSpecialists())

	err := PublishAll(context.Background(), p, alerts)
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "alert 2 of 3")
	assert.Len(t, p.published, 1)
}

func TestPublishAll_Cancelled(t *testing.T) {
	p := &mockPublisher{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := PublishAll(ctx, p, Alerts("run-1", flaggedSpecialists()))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, p.published)
}

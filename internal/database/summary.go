package database

import (
	"database/sql"
	"fmt"

	"flight_hours/internal/models"
)

type SummaryRepository interface {
	InsertBatch(rows []*models.MonthlySummary) error
	ListBySpecialist(specialistID int64) ([]*models.MonthlySummary, error)
}

type summaryRepository struct {
	db *sql.DB
}

func NewSummaryRepository(db *sql.DB) SummaryRepository {
	return &summaryRepository{db: db}
}

// InsertBatch inserts monthly summaries in a single transaction
func (r *summaryRepository) InsertBatch(rows []*models.MonthlySummary) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO monthly_summaries (
		run_id, specialist_id, specialist_name, month, flight_time_hours,
		over_80_hours, weeks_over_36_hours, days_over_8_hours
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, s := range rows {
		if _, err := stmt.Exec(
			s.RunID, s.SpecialistID, s.SpecialistName, s.Month, s.FlightTimeHours,
			s.Flags.Over80Hours, s.Flags.WeeksOver36Hours, s.Flags.DaysOver8Hours,
		); err != nil {
			return fmt.Errorf("failed to insert summary: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListBySpecialist returns a specialist's archived months, newest run first
func (r *summaryRepository) ListBySpecialist(specialistID int64) ([]*models.MonthlySummary, error) {
	rows, err := r.db.Query(`SELECT s.run_id, s.specialist_id, s.specialist_name, s.month, s.flight_time_hours,
			s.over_80_hours, s.weeks_over_36_hours, s.days_over_8_hours
		FROM monthly_summaries s
		JOIN runs r ON r.id = s.run_id
		WHERE s.specialist_id = ?
		ORDER BY r.started_at DESC, s.run_id, s.month`, specialistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query summaries: %w", err)
	}
	defer rows.Close()

	var summaries []*models.MonthlySummary
	for rows.Next() {
		s := &models.MonthlySummary{}
		if err := rows.Scan(
			&s.RunID, &s.SpecialistID, &s.SpecialistName, &s.Month, &s.FlightTimeHours,
			&s.Flags.Over80Hours, &s.Flags.WeeksOver36Hours, &s.Flags.DaysOver8Hours,
		); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read summaries: %w", err)
	}
	return summaries, nil
}

package database

import (
	"database/sql"
	"fmt"

	"flight_hours/internal/models"
)

type RunRepository interface {
	Create(run *models.Run) error
	Delete(id string) error
	List(limit int) ([]*models.Run, error)
}

type runRepository struct {
	db *sql.DB
}

func NewRunRepository(db *sql.DB) RunRepository {
	return &runRepository{db: db}
}

// Create records a run. Summaries reference it, so it must exist first.
func (r *runRepository) Create(run *models.Run) error {
	_, err := r.db.Exec(`INSERT INTO runs (
		id, started_at, input_path, output_path, flight_count, specialist_count
	) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.StartedAt.UTC(),
		run.InputPath,
		run.OutputPath,
		run.FlightCount,
		run.SpecialistCount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

// Delete removes a run. Its summaries go with it through ON DELETE CASCADE.
func (r *runRepository) Delete(id string) error {
	if _, err := r.db.Exec(`DELETE FROM runs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return nil
}

// List returns the most recent runs first, at most limit of them
func (r *runRepository) List(limit int) ([]*models.Run, error) {
	rows, err := r.db.Query(`SELECT id, started_at, input_path, output_path, flight_count, specialist_count
		FROM runs ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.Run
	for rows.Next() {
		run := &models.Run{}
		if err := rows.Scan(
			&run.ID, &run.StartedAt, &run.InputPath, &run.OutputPath,
			&run.FlightCount, &run.SpecialistCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}
	return runs, nil
}

package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"flight_hours/internal/database"
	"flight_hours/internal/models"
)

// Archiver stores a processed run and its monthly summaries.
type Archiver struct {
	Runs          database.RunRepository
	Summaries     database.SummaryRepository
	BatchSize     int
	FlushInterval time.Duration
}

// NewArchiver creates an Archiver backed by db with the default batching.
func NewArchiver(db *database.DB) *Archiver {
	return &Archiver{
		Runs:          db.RunRepository(),
		Summaries:     db.SummaryRepository(),
		BatchSize:     100,
		FlushInterval: time.Second,
	}
}

// Archive records run and then streams every monthly row of specialists
// through a SummaryCollector. If any row fails to insert the run is removed
// again, taking the rows already written with it.
func (a *Archiver) Archive(ctx context.Context, run *models.Run, specialists []models.Specialist) error {
	if err := a.Runs.Create(run); err != nil {
		return fmt.Errorf("archive run %s: %w", run.ID, err)
	}

	rows := models.Summaries(run.ID, specialists)
	summaryChan := make(chan *models.MonthlySummary, a.BatchSize)
	collector := NewSummaryCollector(a.Summaries, summaryChan, a.BatchSize, a.FlushInterval)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(summaryChan)
		for _, row := range rows {
			select {
			case summaryChan <- row:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	g.Go(func() error {
		return collector.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		// A run without all of its summaries must not show up in history
		if delErr := a.Runs.Delete(run.ID); delErr != nil {
			slog.Error("Failed to remove partially archived run", "run_id", run.ID, "error", delErr)
		}
		return fmt.Errorf("archive summaries for run %s: %w", run.ID, err)
	}

	slog.Info("Archived run", "run_id", run.ID, "summaries", len(rows))
	return nil
}

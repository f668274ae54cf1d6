package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"flight_hours/internal/database"
	"flight_hours/internal/models"
)

// SummaryCollector collects monthly summaries and commits them to the archive in batches
type SummaryCollector struct {
	repo          database.SummaryRepository
	summaryChan   <-chan *models.MonthlySummary
	batchSize     int           // maximum number of rows in a batch before committing
	flushInterval time.Duration // time to flush batch even if not full
}

// NewSummaryCollector creates a collector that commits at most batchSize rows
// per transaction and flushes a partial batch once flushInterval has passed
func NewSummaryCollector(repo database.SummaryRepository, summaryChan <-chan *models.MonthlySummary, batchSize int, flushInterval time.Duration) *SummaryCollector {
	if batchSize <= 0 {
		batchSize = 1
	}
	return &SummaryCollector{
		repo:          repo,
		summaryChan:   summaryChan,
		batchSize:     batchSize,
		flushInterval: flushInterval,
	}
}

// Start drains the summary channel, writing rows in batches of batchSize or
// whenever flushInterval has passed since the last commit. It blocks until the
// channel is closed or ctx is cancelled. A failed batch is logged and the
// collector keeps going; the failures are reported when it returns.
func (c *SummaryCollector) Start(ctx context.Context) error {
	batch := make([]*models.MonthlySummary, 0, c.batchSize)
	failed := 0
	var firstErr error
	lastFlushTime := time.Now()

	flushBatch := func() {
		if len(batch) == 0 {
			return
		}
		if err := c.repo.InsertBatch(batch); err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			slog.Error("Error inserting batch of summaries", "batch_size", len(batch), "error", err)
		} else {
			lastFlushTime = time.Now()
			slog.Debug("Inserted batch of monthly summaries", "batch_size", len(batch))
		}
		batch = batch[:0]
	}

	result := func() error {
		if failed > 0 {
			return fmt.Errorf("%d summary batch(es) failed to insert: %w", failed, firstErr)
		}
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			flushBatch()
			if err := result(); err != nil {
				return err
			}
			return ctx.Err()

		case row, ok := <-c.summaryChan:
			if !ok {
				flushBatch()
				return result()
			}

			if row == nil {
				continue
			}

			batch = append(batch, row)

			slog.Debug("Added summary to batch",
				"specialist_id", row.SpecialistID,
				"month", row.Month,
				"current_batch_size", len(batch),
				"max_batch_size", c.batchSize,
			)

			if len(batch) >= c.batchSize || time.Since(lastFlushTime) >= c.flushInterval {
				flushBatch()
			}
		}
	}
}

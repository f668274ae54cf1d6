package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// ReprocessTask re-runs processing whenever the input file changes. It
// implements scheduler.Task.
type ReprocessTask struct {
	inputPath string
	interval  time.Duration
	process   func(ctx context.Context) error

	lastModTime time.Time
	lastSize    int64
	processed   bool
}

// NewReprocessTask checks inputPath every interval and calls process when
// the file's modification time or size differs from the last successful run.
func NewReprocessTask(inputPath string, interval time.Duration, process func(ctx context.Context) error) *ReprocessTask {
	return &ReprocessTask{
		inputPath: inputPath,
		interval:  interval,
		process:   process,
	}
}

func (t *ReprocessTask) Name() string {
	return "reprocess"
}

func (t *ReprocessTask) Interval() time.Duration {
	return t.interval
}

// Run is called from a single scheduler goroutine
func (t *ReprocessTask) Run(ctx context.Context) error {
	info, err := os.Stat(t.inputPath)
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}

	if t.processed && info.ModTime().Equal(t.lastModTime) && info.Size() == t.lastSize {
		slog.Debug("Input unchanged, skipping", "input", t.inputPath)
		return nil
	}

	if err := t.process(ctx); err != nil {
		return err
	}

	t.processed = true
	t.lastModTime = info.ModTime()
	t.lastSize = info.Size()
	return nil
}

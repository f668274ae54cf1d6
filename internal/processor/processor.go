// Package processor turns an input bundle of flights and specialists into
// per-specialist monthly summaries.
package processor

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"

	"flight_hours/internal/aggregator"
	"flight_hours/internal/models"
)

// FlightProcessor drives one MonthlyAggregator per specialist.
type FlightProcessor struct {
	workers int
}

// Option configures a FlightProcessor
type Option func(*FlightProcessor)

// WithWorkers sets how many specialists are aggregated concurrently.
// Values below 2 keep processing sequential.
func WithWorkers(n int) Option {
	return func(p *FlightProcessor) {
		p.workers = n
	}
}

// New creates a FlightProcessor. The default is sequential processing.
func New(opts ...Option) *FlightProcessor {
	p := &FlightProcessor{workers: 1}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// runIndex holds the lookups built for a single Process call.
type runIndex struct {
	specialists map[int64]models.Specialist
	order       []int64
	flights     map[int64][]models.Flight
}

func buildIndex(input models.InputBundle) *runIndex {
	idx := &runIndex{
		specialists: make(map[int64]models.Specialist, len(input.Specialists)),
		flights:     make(map[int64][]models.Flight),
	}

	for _, s := range input.Specialists {
		if _, seen := idx.specialists[s.ID]; !seen {
			idx.order = append(idx.order, s.ID)
		}
		idx.specialists[s.ID] = s
		slog.Debug("Indexed specialist", "specialist_id", s.ID, "name", s.Name)
	}

	for _, f := range input.Flights {
		for _, id := range f.Crew {
			idx.flights[id] = append(idx.flights[id], f)
		}
	}

	return idx
}

// Process aggregates every specialist's flights by takeoff month and returns
// the specialists with their monthly data sorted by month. The input bundle
// is not modified. Specialists keep their input order; a duplicated id keeps
// its first position and its last definition.
func (p *FlightProcessor) Process(input models.InputBundle) (*models.OutputBundle, error) {
	slog.Info("Processing input data",
		"flights", len(input.Flights),
		"specialists", len(input.Specialists),
	)

	idx := buildIndex(input)

	for _, id := range slices.Sorted(maps.Keys(idx.flights)) {
		if _, ok := idx.specialists[id]; !ok {
			slog.Warn("Specialist not found, skipping flights",
				"specialist_id", id,
				"flights", len(idx.flights[id]),
			)
		}
	}

	results := make([]models.Specialist, len(idx.order))
	if p.workers > 1 {
		var g errgroup.Group
		g.SetLimit(p.workers)
		for i, id := range idx.order {
			g.Go(func() error {
				s, err := idx.process(id)
				if err != nil {
					return err
				}
				results[i] = s
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, id := range idx.order {
			s, err := idx.process(id)
			if err != nil {
				return nil, err
			}
			results[i] = s
		}
	}

	slog.Info("Processing complete", "specialists", len(results))
	return &models.OutputBundle{Specialists: results}, nil
}

// process aggregates one specialist's flights, one batch per takeoff month in
// ascending month order.
func (idx *runIndex) process(id int64) (models.Specialist, error) {
	specialist := idx.specialists[id]
	agg := aggregator.New(specialist)

	byMonth := make(map[string][]models.Flight)
	for _, f := range idx.flights[id] {
		month := f.TakeoffMonth()
		byMonth[month] = append(byMonth[month], f)
	}

	for _, month := range slices.Sorted(maps.Keys(byMonth)) {
		slog.Debug("Aggregating flights",
			"specialist_id", id,
			"takeoff_month", month,
			"flights", len(byMonth[month]),
		)
		if err := agg.Aggregate(byMonth[month]); err != nil {
			return models.Specialist{}, fmt.Errorf("failed to aggregate %s: %w", month, err)
		}
	}

	return models.Specialist{
		ID:          specialist.ID,
		Name:        specialist.Name,
		MonthlyData: agg.Snapshot(),
	}, nil
}

// Package sweep evaluates many independent slant paths in parallel, for
// example one per elevation angle or per high-terminal height of a link
// budget curve. Traces share no mutable state, so they fan out freely over a
// fixed number of workers.
package sweep

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/star/slantpath/internal/atmosphere"
	"github.com/star/slantpath/internal/metrics"
	"github.com/star/slantpath/internal/raytrace"
)

// ErrNonFinite marks a trace that completed with NaN or Inf fields.
var ErrNonFinite = errors.New("trace produced non-finite result")

// traceJob is a unit of work for the worker pool.
type traceJob struct {
	index int
	point Point
}

// Pool manages a fixed number of goroutines for parallel tracing.
type Pool struct {
	workers int
	tracer  *raytrace.Tracer
	logger  *slog.Logger
}

// NewPool creates a worker pool with the given number of workers.
func NewPool(workers int, tracer *raytrace.Tracer, logger *slog.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers: workers,
		tracer:  tracer,
		logger:  logger,
	}
}

// Workers returns the pool size.
func (p *Pool) Workers() int {
	return p.workers
}

// Run traces every point through profile and returns one Outcome per point,
// in input order. Points not started before ctx is cancelled carry ctx.Err().
func (p *Pool) Run(ctx context.Context, points []Point, profile atmosphere.Profile) ([]Outcome, Stats) {
	if len(points) == 0 {
		return nil, Stats{}
	}

	start := time.Now()

	jobs := make(chan traceJob, p.workers*2)
	results := make(chan Outcome, p.workers*2)

	// Start workers.
	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				out := p.traceSingle(job, profile)
				select {
				case results <- out:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Feed jobs in a goroutine.
	go func() {
		defer close(jobs)
		for i, pt := range points {
			select {
			case jobs <- traceJob{index: i, point: pt}:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Close results when all workers are done.
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collect results.
	outcomes := make([]Outcome, len(points))
	done := make([]bool, len(points))
	var stats Stats

	for out := range results {
		outcomes[out.Index] = out
		done[out.Index] = true

		if out.Result.Clamped() {
			stats.Clamped++
		}
		if out.Err != nil {
			stats.Failed++
			p.logger.Warn("trace failed",
				"index", out.Index,
				"frequency_ghz", out.Point.FrequencyGHz,
				"angle_rad", out.Point.AngleRad,
				"error", out.Err,
			)
			continue
		}
		stats.Succeeded++
	}

	for i := range outcomes {
		if !done[i] {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			outcomes[i] = Outcome{Index: i, Point: points[i], Err: err}
			stats.Cancelled++
		}
	}

	duration := time.Since(start)
	metrics.RecordSweep(duration, stats.Succeeded, stats.Failed, stats.Cancelled)

	if stats.Clamped > 0 {
		p.logger.Warn("near-grazing rays clamped",
			"points", stats.Clamped,
			"total", len(points),
		)
	}
	p.logger.Debug("sweep complete",
		"points", len(points),
		"success", stats.Succeeded,
		"errors", stats.Failed,
		"cancelled", stats.Cancelled,
		"duration_ms", duration.Milliseconds(),
	)

	return outcomes, stats
}

// traceSingle evaluates one point and records its metrics.
func (p *Pool) traceSingle(job traceJob, profile atmosphere.Profile) Outcome {
	pt := job.point
	start := time.Now()

	res, err := p.tracer.SlantPath(pt.FrequencyGHz, pt.LowKm, pt.HighKm, pt.AngleRad, profile)
	if err == nil && !res.Valid() {
		err = ErrNonFinite
	}

	outcome := metrics.OutcomeOK
	switch {
	case errors.Is(err, ErrNonFinite):
		outcome = metrics.OutcomeNonFinite
	case err != nil:
		outcome = metrics.OutcomeError
	}
	metrics.RecordTrace(time.Since(start), outcome, res.ClampCount)

	return Outcome{Index: job.index, Point: pt, Result: res, Err: err}
}

package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sourcegraph/conc/pool"

	"loadprobe/internal/probe"
)

// Prober is the seam between the coordinator and the HTTP layer.
// Each prober attempts its endpoint exactly once and captures every
// failure into the returned Result.
type Prober interface {
	Probe(ctx context.Context) probe.Result
	URL() string
}

// Coordinator fans probers out over a bounded worker pool and aggregates
// their results. The tally is owned by the single collecting loop, so no
// counter is ever touched by more than one goroutine.
type Coordinator struct {
	probers []Prober
	workers int
}

// New creates a Coordinator that runs the given probers with at most
// workers requests in flight at once.
func New(probers []Prober, workers int) *Coordinator {
	return &Coordinator{
		probers: probers,
		workers: workers,
	}
}

// Run executes all probers concurrently, bounded by the worker count,
// and returns the results in completion order together with the final
// tally. Per-endpoint failures are counted, never propagated; the only
// error Run itself returns is an empty prober list.
func (c *Coordinator) Run(ctx context.Context) ([]probe.Result, probe.Tally, error) {
	if len(c.probers) == 0 {
		return nil, probe.Tally{}, fmt.Errorf("no endpoints configured")
	}

	slog.Info("starting concurrent probes",
		"endpoints", len(c.probers),
		"workers", c.workers)
	start := time.Now()

	resultChan := make(chan probe.Result, len(c.probers))

	// Workers only produce; the pool bounds how many are in flight.
	p := pool.New().WithMaxGoroutines(c.workers)
	for _, pr := range c.probers {
		pr := pr // per-iteration copy; required while go.mod targets go < 1.22
		p.Go(func() {
			resultChan <- pr.Probe(ctx)
		})
	}

	// Close the result channel when all workers are done
	go func() {
		p.Wait()
		close(resultChan)
	}()

	// Single consumer owns the tally and the completion-order slice.
	var tally probe.Tally
	results := make([]probe.Result, 0, len(c.probers))
	for result := range resultChan {
		tally.Add(result.Outcome)
		results = append(results, result)
	}

	slog.Info("all probes completed",
		"elapsed", time.Since(start),
		"success", tally.Success,
		"error", tally.Error,
		"timeout", tally.Timeout)

	return results, tally, nil
}

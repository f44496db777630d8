// Package schedule runs posting cycles on a fixed interval.
package schedule

import (
	"context"
	"time"

	"github.com/newswire-labs/chirp/internal/logging"
)

// defaultBackoff is the flat wait after a failed cycle.
const defaultBackoff = 5 * time.Minute

// Runner invokes a cycle function on a fixed interval. There is no
// retry policy beyond sleeping: a failed cycle waits the backoff
// instead of the full interval, then the loop continues.
type Runner struct {
	Interval time.Duration
	Backoff  time.Duration
	Cycle    func(context.Context) error
}

// New creates a runner for the given interval in hours.
func New(intervalHours int, cycle func(context.Context) error) *Runner {
	return &Runner{
		Interval: time.Duration(intervalHours) * time.Hour,
		Backoff:  defaultBackoff,
		Cycle:    cycle,
	}
}

// Run executes cycles until the context is cancelled. The first cycle
// runs immediately. Errors never crash the loop.
func (r *Runner) Run(ctx context.Context) {
	for {
		wait := r.Interval

		if err := r.Cycle(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			logging.Error("cycle failed", "err", err)
			wait = r.Backoff
		}

		logging.Info("waiting until next cycle", "wait", wait)
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

package runner

import (
	"log/slog"
	"time"

	"github.com/aretw0/arbor/pkg/behavior"
)

// DefaultInterval is the tick period used when none is configured.
const DefaultInterval = 100 * time.Millisecond

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithInterval sets the period between ticks.
func WithInterval(d time.Duration) Option {
	return func(r *Runner) {
		r.interval = d
	}
}

// WithMaxTicks stops the runner after n ticks. Zero means no limit.
func WithMaxTicks(n uint64) Option {
	return func(r *Runner) {
		r.maxTicks = n
	}
}

// WithStopOn stops the runner as soon as the tree returns one of statuses.
func WithStopOn(statuses ...behavior.Status) Option {
	return func(r *Runner) {
		for _, s := range statuses {
			r.stopOn[s] = true
		}
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithOnTick registers a callback invoked after every tick with the tick count
// and the tree's status. It runs on the ticker goroutine, between ticks, so it
// may safely mutate state the tree's leaves read.
func WithOnTick(fn func(n uint64, status behavior.Status)) Option {
	return func(r *Runner) {
		r.onTick = fn
	}
}

package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	bt "github.com/joeycumines/go-behaviortree"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/adapters/gobt"
	"github.com/aretw0/arbor/pkg/behavior"
)

// ErrNoTree is returned by Run when the runner was built without a tree.
var ErrNoTree = errors.New("runner: tree is required")

// ErrInvalidInterval is returned by Run when the interval is not positive.
var ErrInvalidInterval = errors.New("runner: interval must be positive")

// errStop ends the ticker loop once a stop condition is met.
var errStop = errors.New("runner: stop condition reached")

// Result summarizes a finished Run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string
	// Ticks is the number of times the tree was ticked.
	Ticks uint64
	// Last is the status of the final tick. It is Failure when no tick happened.
	Last behavior.Status
	// Stopped reports whether Last matched one of the stop statuses.
	Stopped bool
}

// Runner ticks a Tree at a fixed interval.
type Runner struct {
	tree     *arbor.Tree
	interval time.Duration
	maxTicks uint64
	stopOn   map[behavior.Status]bool
	logger   *slog.Logger
	onTick   func(uint64, behavior.Status)
}

// New creates a Runner for tree.
func New(tree *arbor.Tree, opts ...Option) *Runner {
	r := &Runner{
		tree:     tree,
		interval: DefaultInterval,
		stopOn:   make(map[behavior.Status]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run ticks the tree until ctx is done or a stop condition is met. It returns
// nil when a stop status or the tick limit ended the run, and the context's
// error when cancellation did.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	var res Result
	if r.tree == nil {
		return res, ErrNoTree
	}
	if r.interval <= 0 {
		return res, fmt.Errorf("%w: %s", ErrInvalidInterval, r.interval)
	}

	res.RunID = uuid.NewString()
	logger := r.logger.With("run_id", res.RunID)
	logger.Info("runner started",
		"tree", r.tree.Name(),
		"interval", r.interval,
		"max_ticks", r.maxTicks,
	)

	ticker := bt.NewTicker(ctx, r.interval, bt.New(func([]bt.Node) (bt.Status, error) {
		status := r.tree.Run()
		res.Ticks++
		res.Last = status
		logger.Debug("tick", "n", res.Ticks, "status", status.String())

		if r.onTick != nil {
			r.onTick(res.Ticks, status)
		}
		if r.stopOn[status] {
			res.Stopped = true
			return gobt.Status(status), errStop
		}
		if r.maxTicks > 0 && res.Ticks >= r.maxTicks {
			return gobt.Status(status), errStop
		}
		return gobt.Status(status), nil
	}))
	<-ticker.Done()

	err := ticker.Err()
	switch {
	case errors.Is(err, errStop):
		err = nil
	case err == nil && ctx.Err() != nil:
		err = ctx.Err()
	}

	logger.Info("runner stopped",
		"ticks", res.Ticks,
		"last", res.Last.String(),
		"stopped", res.Stopped,
		"error", err,
	)
	return res, err
}

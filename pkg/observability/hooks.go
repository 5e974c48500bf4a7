package observability

import (
	"log/slog"
	"time"

	"github.com/aretw0/arbor/pkg/behavior"
)

// TickEvent describes one completed Run of a tree.
type TickEvent struct {
	Tree     string
	Seq      uint64
	Status   behavior.Status
	Duration time.Duration
}

// LeafErrorEvent describes an error swallowed by a leaf during a tick.
type LeafErrorEvent struct {
	Tree        string
	Seq         uint64
	Type        string
	Description string
	Err         error
}

// Hooks defines callbacks for tree observability. Nil fields are skipped.
type Hooks struct {
	OnTickStart func(tree string, seq uint64)
	OnTickEnd   func(TickEvent)
	OnLeafError func(LeafErrorEvent)
}

// Combine returns hooks that call each of the given hooks in order.
func Combine(hooks ...Hooks) Hooks {
	var out Hooks
	for _, h := range hooks {
		if h.OnTickStart != nil {
			prev := out.OnTickStart
			out.OnTickStart = func(tree string, seq uint64) {
				if prev != nil {
					prev(tree, seq)
				}
				h.OnTickStart(tree, seq)
			}
		}
		if h.OnTickEnd != nil {
			prev := out.OnTickEnd
			out.OnTickEnd = func(e TickEvent) {
				if prev != nil {
					prev(e)
				}
				h.OnTickEnd(e)
			}
		}
		if h.OnLeafError != nil {
			prev := out.OnLeafError
			out.OnLeafError = func(e LeafErrorEvent) {
				if prev != nil {
					prev(e)
				}
				h.OnLeafError(e)
			}
		}
	}
	return out
}

// Logging returns hooks that log tick results at debug level and leaf errors
// at warn level.
func Logging(logger *slog.Logger) Hooks {
	return Hooks{
		OnTickEnd: func(e TickEvent) {
			logger.Debug("tick",
				"tree", e.Tree,
				"seq", e.Seq,
				"status", e.Status.String(),
				"duration", e.Duration,
			)
		},
		OnLeafError: func(e LeafErrorEvent) {
			logger.Warn("leaf failed",
				"tree", e.Tree,
				"seq", e.Seq,
				"type", e.Type,
				"description", e.Description,
				"error", e.Err,
			)
		},
	}
}

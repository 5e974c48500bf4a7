package arbor

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/arbor/pkg/behavior"
	"github.com/aretw0/arbor/pkg/observability"
)

// Tree is the high-level entry point for the arbor library.
// It owns a root node and ticks it once per Run, reporting to the configured
// logger and hooks.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	root   behavior.Node
	name   string
	logger *slog.Logger
	hooks  observability.Hooks
	sink   behavior.ErrorSink
	seq    uint64
}

// Option defines a functional option for configuring the Tree.
type Option func(*Tree)

// WithName labels the tree in logs, hooks and metrics.
func WithName(name string) Option {
	return func(t *Tree) {
		t.name = name
	}
}

// WithLogger sets a custom structured logger for the tree.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) {
		t.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks observability.Hooks) Option {
	return func(t *Tree) {
		t.hooks = hooks
	}
}

// WithErrorSink sets where leaf errors go. The default logs them through the
// tree's logger.
func WithErrorSink(sink behavior.ErrorSink) Option {
	return func(t *Tree) {
		t.sink = sink
	}
}

// New creates a Tree. root may be nil and set later with SetRoot.
func New(root behavior.Node, opts ...Option) *Tree {
	t := &Tree{}
	for _, opt := range opts {
		opt(t)
	}

	// Ensure logger is initialized so leaves never fall back to the global default.
	if t.logger == nil {
		t.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if t.name != "" {
		t.logger = t.logger.With("tree", t.name)
	}

	t.SetRoot(root)
	return t
}

// SetRoot replaces the root node. Leaves below it that have no error sink of
// their own get the tree's sink.
func (t *Tree) SetRoot(root behavior.Node) {
	t.root = root
	if root == nil {
		return
	}
	sink := t.leafSink()
	behavior.Walk(root, func(n behavior.Node, _ int) bool {
		if r, ok := n.(behavior.Reporter); ok && r.ErrorSink() == nil {
			r.SetErrorSink(sink)
		}
		return true
	})
}

// Root returns the current root node, or nil.
func (t *Tree) Root() behavior.Node {
	return t.root
}

// Name returns the tree's label.
func (t *Tree) Name() string {
	return t.name
}

// Ticks returns how many times Run has ticked the root.
func (t *Tree) Ticks() uint64 {
	return t.seq
}

// Run ticks the root once and returns its status, or Failure when no root is set.
func (t *Tree) Run() behavior.Status {
	if t.root == nil {
		t.logger.Debug("run without root")
		return behavior.Failure
	}

	t.seq++
	if h := t.hooks.OnTickStart; h != nil {
		h(t.name, t.seq)
	}

	start := time.Now()
	status := t.root.Tick()

	if h := t.hooks.OnTickEnd; h != nil {
		h(observability.TickEvent{
			Tree:     t.name,
			Seq:      t.seq,
			Status:   status,
			Duration: time.Since(start),
		})
	}
	return status
}

// Reset restores every node below the root to its initial state.
func (t *Tree) Reset() {
	if t.root == nil {
		return
	}
	t.logger.Debug("reset", "ticks", t.seq)
	t.root.Reset()
}

func (t *Tree) leafSink() behavior.ErrorSink {
	base := t.sink
	if base == nil {
		base = behavior.LogErrors(t.logger)
	}
	return func(n behavior.Node, err error) {
		base(n, err)
		if h := t.hooks.OnLeafError; h != nil {
			h(observability.LeafErrorEvent{
				Tree:        t.name,
				Seq:         t.seq,
				Type:        n.Type(),
				Description: n.Description(),
				Err:         err,
			})
		}
	}
}

package behavior

import (
	"fmt"
	"slices"
)

// Node type tags, as reported by Node.Type.
const (
	TypeAction         = "action"
	TypeCondition      = "condition"
	TypeSequence       = "sequence"
	TypeFallback       = "fallback"
	TypeSequenceMemory = "sequence_memory"
	TypeFallbackMemory = "fallback_memory"
	TypeParallel       = "parallel"
	TypeSkipper        = "skipper"
	TypeNot            = "not"
	TypeLatch          = "latch"
	TypeIfThen         = "if_then"
	TypeIfThenElse     = "if_then_else"
	TypeTryElse        = "try_else"
)

// Node is the unit of execution in a behavior tree.
//
// Tick runs the node once and returns its status. Reset restores the node and
// all of its descendants to their freshly constructed state. Type, Description
// and Children are read-only introspection.
//
// Custom nodes should embed Base, which supplies everything except Tick and
// enforces single ownership of children.
type Node interface {
	Tick() Status
	Reset()
	Type() string
	Description() string
	Children() []Node
}

// attacher is satisfied by every type embedding Base.
type attacher interface {
	attach(parent string) error
	owner() string
}

// Base carries the identity and children shared by all nodes.
type Base struct {
	kind        string
	description string
	children    []Node
	parent      string
}

// NewBase builds the common part of a node and claims ownership of children.
// It panics if a child is nil, already owned by another node, or listed twice.
// Every child is checked before any is claimed, so a panic leaves them all free.
func NewBase(kind, description string, children ...Node) Base {
	seen := make(map[attacher]int, len(children))
	for i, child := range children {
		if child == nil {
			panic(fmt.Errorf("%s %q: child %d: %w", kind, description, i, ErrNilChild))
		}
		a, ok := child.(attacher)
		if !ok {
			continue
		}
		if p := a.owner(); p != "" {
			panic(fmt.Errorf("%s %q: child %d: %w (%s)", kind, description, i, ErrAlreadyAttached, p))
		}
		if j, dup := seen[a]; dup {
			panic(fmt.Errorf("%s %q: child %d: %w (also child %d)", kind, description, i, ErrAlreadyAttached, j))
		}
		seen[a] = i
	}
	for i, child := range children {
		if a, ok := child.(attacher); ok {
			if err := a.attach(kind + " " + description); err != nil {
				panic(fmt.Errorf("%s %q: child %d: %w", kind, description, i, err))
			}
		}
	}
	return Base{
		kind:        kind,
		description: description,
		children:    slices.Clone(children),
	}
}

func (b *Base) attach(parent string) error {
	if b.parent != "" {
		return fmt.Errorf("%w (%s)", ErrAlreadyAttached, b.parent)
	}
	b.parent = parent
	return nil
}

func (b *Base) owner() string { return b.parent }

// Type returns the node's type tag.
func (b *Base) Type() string { return b.kind }

// Description returns the human readable description given at construction.
func (b *Base) Description() string { return b.description }

// Children returns a copy of the node's ordered children.
func (b *Base) Children() []Node { return slices.Clone(b.children) }

// Reset resets every child. Nodes with their own state override it.
func (b *Base) Reset() {
	for _, child := range b.children {
		child.Reset()
	}
}

func requireChildren(kind, description string, children []Node) {
	if len(children) == 0 {
		panic(fmt.Errorf("%s %q: %w", kind, description, ErrNoChildren))
	}
}

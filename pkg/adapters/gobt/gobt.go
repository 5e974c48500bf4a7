// Package gobt adapts arbor nodes to and from github.com/joeycumines/go-behaviortree.
//
// The two libraries agree on the three statuses but differ in shape: a
// go-behaviortree node is a factory returning its tick function and children,
// while an arbor node carries its own state and children. Node exposes an arbor
// subtree as an opaque go-behaviortree leaf, and Leaf goes the other way.
package gobt

import (
	"errors"

	bt "github.com/joeycumines/go-behaviortree"

	"github.com/aretw0/arbor/pkg/behavior"
)

// ErrNilNode is returned when ticking a nil arbor node through the adapter.
var ErrNilNode = errors.New("gobt: nil node")

// Status converts an arbor status to its go-behaviortree counterpart.
func Status(s behavior.Status) bt.Status {
	switch s {
	case behavior.Success:
		return bt.Success
	case behavior.Running:
		return bt.Running
	default:
		return bt.Failure
	}
}

// FromStatus converts a go-behaviortree status to its arbor counterpart.
// Unknown values map to Failure.
func FromStatus(s bt.Status) behavior.Status {
	switch s {
	case bt.Success:
		return behavior.Success
	case bt.Running:
		return behavior.Running
	default:
		return behavior.Failure
	}
}

// Node exposes n as a go-behaviortree node without children. Ticking it ticks
// n, so n keeps its own cursors and latches across ticks.
func Node(n behavior.Node) bt.Node {
	return bt.New(func([]bt.Node) (bt.Status, error) {
		if n == nil {
			return bt.Failure, ErrNilNode
		}
		return Status(n.Tick()), nil
	})
}

// Leaf wraps a go-behaviortree node as an arbor condition. An error from the
// wrapped tick becomes Failure and goes to the condition's error sink.
func Leaf(n bt.Node, description string) *behavior.Condition {
	return behavior.NewCondition(func() (behavior.Status, error) {
		status, err := n.Tick()
		if err != nil {
			return behavior.Failure, err
		}
		return FromStatus(status), nil
	}, description)
}

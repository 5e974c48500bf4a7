/*
Package arbor is a behavior-tree execution engine for driving robots and agents one step at a time.

A behavior tree composes small reusable nodes (actions, conditions and control-flow
composites) into a hierarchy that is ticked on a fixed schedule. Each tick is a
synchronous call returning Success, Failure or Running; Running means "call me
again next cycle", never a blocked goroutine.

# Concept

The node model lives in package behavior. This package wraps a root node in a
Tree, which adds a name, structured logging, observability hooks and a single
place to install the sink that receives errors swallowed by leaves. Package
runner ticks a Tree at a fixed interval.

# Usage

	package main

	import (
		"fmt"

		"github.com/aretw0/arbor"
		"github.com/aretw0/arbor/pkg/behavior"
	)

	func main() {
		initialized := false

		root := behavior.NewFallback("ensure initialized",
			behavior.NewPredicate(func() bool { return initialized }, "Check Robot Initialized"),
			behavior.NewDo(func() { initialized = true }, "Initialize Robot"),
		)

		tree := arbor.New(root, arbor.WithName("robot"))
		for i := 0; i < 2; i++ {
			fmt.Println(tree.Run())
		}
	}
*/
package arbor

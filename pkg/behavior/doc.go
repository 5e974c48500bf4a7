/*
Package behavior implements the node and status model of the arbor behavior-tree engine.

A tree is built once from leaves (Action, Condition) and control-flow nodes
(Sequence, Fallback, their Memory variants, Parallel, Skipper, Not, Latch, IfThen,
IfThenElse, TryElse) and is then ticked repeatedly by a driver. Every Tick is a
synchronous call that returns one of three statuses:

  - Success: the node finished and achieved its goal.
  - Failure: the node finished without achieving its goal.
  - Running: the node needs more ticks. Running is a value, not a blocked call.

# Ownership

A node belongs to exactly one parent. Constructors panic when handed a nil child,
an empty child list, or a node that is already attached elsewhere, because the
resumption cursors of the memory composites are per instance.

# Errors

Leaf callables report problems by returning an error (or panicking). The leaf
converts that into Failure and forwards the error to its ErrorSink; errors never
travel up the tree.

# Concurrency

A tree is single-threaded. Ticking one tree from several goroutines at once is
not supported.
*/
package behavior

/*
Package runner drives an arbor Tree on a fixed schedule.

A Runner calls Tree.Run once per interval, on a go-behaviortree ticker, until the
context is cancelled, a configured number of ticks has elapsed, or the tree
returns one of the configured stop statuses. The tree is only ever ticked from
the ticker goroutine, which keeps the single-threaded contract of the tree.
*/
package runner

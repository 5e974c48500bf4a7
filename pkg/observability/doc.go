/*
Package observability provides hooks and Prometheus metrics for monitoring arbor trees.

Hooks are plain callbacks invoked by arbor.Tree around every Run and whenever a
leaf swallows an error. Metrics turns those callbacks into Prometheus series,
and Logging turns them into structured log records. Combine merges several
hook sets into one.
*/
package observability

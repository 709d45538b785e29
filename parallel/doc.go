// Package parallel provides a fork/join worker-pool abstraction: data-parallel
// loops that partition a range of work items across a fixed worker count and
// join before returning. There are no long-lived tasks, no futures, no
// asynchronous suspension.
//
// The goroutine-per-unit-of-work, wait-for-completion shape is the same one
// katalvlaran/lvlath's core package uses to prove thread-safety (see
// core/concurrency_test.go's sync.WaitGroup-driven goroutine fan-out). Here
// it is promoted from a test helper to a package, and built on
// golang.org/x/sync/errgroup rather than a bare WaitGroup, because ForEach's
// workers run real, fallible code (graphidx and dijkstra return errors) —
// errgroup.Group gives first-error propagation for free instead of
// hand-rolled error aggregation.
package parallel

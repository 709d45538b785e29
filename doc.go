// Package steiner computes minimum Steiner trees in edge-weighted graphs
// using the Erickson-Monma-Veinott algorithm: a dynamic program over
// (terminal-subset, vertex) pairs whose exponential term depends only on
// the number of terminals K, not the graph size, making it practical on
// large sparse graphs with a handful of terminals.
//
// Under the hood, everything is organized by concern:
//
//	graphidx/  — dense-integer CSR adjacency with virtual-source slots
//	pqueue/    — indexed binary heap (O(log N) decrease-key)
//	dijkstra/  — shortest paths over a graphidx.Index
//	subset/    — bitmask iteration helpers for the terminal-subset DP
//	parallel/  — fork/join worker pool shared by every DP layer
//	emv/       — the Steiner tree DP kernel itself
//	traceback/ — reconstructs the tree's edges from the DP's back table
//	steinlib/  — SteinLib text-format instance reader
//	gen/       — deterministic synthetic instance generator for tests
//	cmd/steiner-solve/ — command-line driver
//
// This package itself holds no exported API; it exists for the module-level
// godoc entry point, the way lvlath's own root package does for its graph
// primitives.
//
//	go get github.com/Yishanmys/steiner-edge-linear
package steiner

// Package emv implements the Erickson-Monma-Veinott dynamic program for the
// Steiner tree problem in graphs (Erickson, Monma & Veinott, "Send-and-Split
// Method for Minimum-Concave-Cost Network Flows", Mathematics of Operations
// Research, 1987): a bottom-up DP over (terminal-subset, vertex) pairs that
// calls dijkstra.Run once per singleton terminal and once per composed
// subset, using a virtual source whose outgoing weights are rewritten
// between calls to fold a "minimum over many candidate attachment points"
// into a single shortest-path query. Running time is polynomial in the edge
// count and exponential only in the terminal count, since the DP's subset
// domain ranges over terminals rather than vertices.
//
// The table layout and "grow subset size" loop structure are the same shape
// tsp's Held-Karp solver (tsp/exact.go) uses for its flat
// dp[mask*n+j]/parent[mask*n+j] arrays and masksBySize precomputation,
// generalised from a single endpoint-vs-endpoint relaxation to this DP's
// two-phase combine-then-relax step.
//
// Concurrency is fork/join: Phase 0 parallelises over the K-1 non-root
// terminals,
// Phase 1 parallelises over the masks of each popcount layer via
// parallel.ForEach, and a hard barrier (ForEach's blocking return) separates
// each popcount from the next. Each worker owns one graphidx virtual-source
// slot and one dijkstra.Scratch for the lifetime of a Solve call.
package emv

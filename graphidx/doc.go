// Package graphidx builds the immutable CSR-style graph index the Steiner
// solver runs on: a packed adjacency array augmented with a small number of
// synthetic "virtual source" vertices whose outgoing weights are rewritten
// between Dijkstra calls by the emv package.
//
// The package is split into two halves with very different lifecycles:
//
//   - Graph is a mutable, thread-safe edge-list builder. Callers (the
//     steinlib parser, the gen package, or hand-written tests) fix the
//     vertex count at NewGraph, then add edges and terminals under a pair
//     of RWMutex locks — one for the edge
//     list, one for the terminal list — the same split-lock idiom
//     katalvlaran/lvlath's core.Graph uses for its vertex/edge maps.
//   - Index is the frozen, read-only result of Graph.Compile: a CSR
//     adjacency (Pos/Adj) plus Workers virtual-source slots appended after
//     the n real vertices. It is never mutated after Compile returns, except
//     for the Workers virtual-source weight slots, which are thread-local
//     scratch owned one-per-worker by the emv kernel.
//
// Complexity:
//
//   - Compile: O(n + m + Workers·n) time and space.
//   - Reachable: O(n + m) time, O(n) space (BFS).
package graphidx

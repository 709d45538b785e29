// Package gen builds small, deterministic Steiner tree test instances: a
// fixed vertex/edge topology (path, cycle, grid, complete, star, or
// Erdős–Rényi-style random sparse) plus a terminal selection, ready to be
// compiled into a graphidx.Index.
//
// It is a narrow, integer-weighted descendant of builder's topology
// constructors (impl_path.go, impl_cycle.go, impl_grid.go, impl_complete.go,
// impl_star.go, impl_random_sparse.go): the same closures-over-(n, seed)
// shape and the same "validate size, emit vertices in index order, emit
// edges in a stable documented order" discipline, but returning a plain
// (edges, terminals) tuple instead of mutating a core.Graph, and sampling
// int64 weights instead of float64 — this package exists purely to feed
// emv and graphidx test/benchmark fixtures, not as a general-purpose graph
// construction API.
package gen

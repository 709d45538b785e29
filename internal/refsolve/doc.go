// Package refsolve is a test-only reference oracle: slow, obviously
// correct algorithms to cross-check emv.Solve against on small instances.
//
// FloydWarshall is matrix/impl_floydwarshall.go's fixed k-i-j loop order,
// adapted from a dense float64 matrix to an int64 distance table using
// graphidx.Inf as the "no path" sentinel instead of math.Inf(1). MST is
// prim_kruskal/kruskal.go's sort-edges-and-union-find approach, adapted
// from core.Graph/string vertex ids to plain int64 ids and edge slices.
// BruteForceSteiner composes both: it enumerates every subset of
// non-terminal vertices as candidate Steiner points (feasible only because
// callers restrict this package to tiny instances) and takes the cheapest
// MST over terminals-plus-subset in the all-pairs metric closure — the
// textbook reduction of exact small-instance Steiner tree to MST over a
// vertex subset.
package refsolve

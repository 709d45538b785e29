// Package traceback reconstructs the edge set of an optimum Steiner tree
// from the BackTable an emv.Solve call with Options.Traceback built
// alongside its cost table.
//
// The shape of the recursion — walk a parent array back from a sink to a
// base case, emitting one edge per step — mirrors the path reconstruction
// bfs.ShortestPath and dijkstra itself already do from a parent slice; what
// is new here is that each step walks back through either a real graph edge
// (the DP's "relax" step) or a branch into two independent subtrees over the
// same vertex (the DP's "combine" step), so the walk is a traversal of a
// binary recursion tree rather than a single linear chain.
package traceback

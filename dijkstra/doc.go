// Package dijkstra computes one-to-all shortest paths over a graphidx.Index,
// writing results into caller-provided Scratch rather than allocating fresh
// maps per call.
//
// This is a from-scratch rewrite of katalvlaran/lvlath's dijkstra package
// against a very different contract: lvlath's Dijkstra returns map[string]
// int64 distance/predecessor maps for a core.Graph and uses "lazy"
// decrease-key (push duplicates, skip stale pops on a container/heap). Here,
// here the engine runs against the dense-int CSR adjacency of
// graphidx.Index (including its virtual-source slots), writes into
// pre-allocated int64/bitset scratch so the emv kernel can reuse one
// Scratch per worker across thousands of calls, and uses pqueue's true
// O(log N) decrease-key.
//
// Unlike lvlath's pre-scan for negative weights, Run does not validate
// edge weights: negative weights are undefined behaviour at this layer
// (callers must filter), and graphidx.Graph.AddEdge already rejects them
// once at build time rather than on every one of the many Dijkstra calls a
// single EMV solve makes.
//
// Complexity: O((V+E) log V) time, O(V+E) space, where V = idx.Size() and E
// counts each undirected edge once per endpoint.
package dijkstra

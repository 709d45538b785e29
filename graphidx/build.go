package graphidx

import "fmt"

// Compile freezes the builder into an immutable Index. It implements the
// five-step algorithm:
//
//  1. count degrees into a size array;
//  2. size each virtual-source slot at 2n (one (neighbour, weight) pair per
//     real vertex);
//  3. exclusive prefix-sum the sizes with one extra slot per vertex for the
//     degree header, producing Pos;
//  4. scatter edges into Adj using a running per-vertex counter stored
//     directly in the degree-header cell — the counter and the final degree
//     are the same number once every incident edge has been placed, so no
//     separate "rewrite header" pass is needed;
//  5. populate virtual slots with an edge to every real vertex, weight Inf.
//
// Compile is a read-only operation on g's accumulated edges/terminals; it
// may be called more than once (e.g. after adding more edges) and always
// produces a fresh Index, so building twice from identical input yields
// byte-identical Pos/Adj.
func (g *Graph) Compile() (*Index, error) {
	g.muTerm.RLock()
	terminals := make([]int64, len(g.terminals))
	copy(terminals, g.terminals)
	g.muTerm.RUnlock()

	if len(terminals) == 0 {
		return nil, ErrNoTerminals
	}
	if len(terminals) > MaxTerminals {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyTerminals, len(terminals))
	}

	g.muEdges.RLock()
	edges := make([]rawEdge, len(g.edges))
	copy(edges, g.edges)
	g.muEdges.RUnlock()

	n := g.n
	w := g.workers
	if w <= 0 {
		return nil, ErrBadWorkerCount
	}

	total := n + int64(w)
	sizes := make([]int64, total)
	for _, e := range edges {
		sizes[e.u] += 2
		sizes[e.v] += 2
	}
	for s := 0; s < w; s++ {
		sizes[n+int64(s)] = 2 * n
	}

	pos := make([]int64, total)
	var run int64
	for i := int64(0); i < total; i++ {
		pos[i] = run
		run += sizes[i] + 1 // +1 for the degree-header cell
	}

	adj := make([]int64, run)
	for u := int64(0); u < total; u++ {
		adj[pos[u]] = 0 // running counter, doubles as the final degree
	}

	place := func(at, neighbor, weight int64) {
		header := adj[at]
		slot := at + 1 + 2*header
		adj[slot] = neighbor
		adj[slot+1] = weight
		adj[at] = header + 1
	}
	for _, e := range edges {
		place(pos[e.u], e.v, e.w)
		place(pos[e.v], e.u, e.w)
	}

	for s := 0; s < w; s++ {
		u := n + int64(s)
		base := pos[u]
		adj[base] = n
		for v := int64(0); v < n; v++ {
			adj[base+1+2*v] = v
			adj[base+1+2*v+1] = Inf
		}
	}

	return &Index{
		N:         n,
		M:         int64(len(edges)),
		Workers:   w,
		Terminals: terminals,
		Pos:       pos,
		Adj:       adj,
	}, nil
}

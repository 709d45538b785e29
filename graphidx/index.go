package graphidx

// Index is the immutable CSR-style adjacency produced by Graph.Compile.
//
// Layout: Pos has n+Workers entries. For vertex u, Pos[u] is the
// offset into Adj of u's degree header; Adj[Pos[u]] holds deg(u), followed
// by deg(u) (neighbour, weight) pairs. Slots [n, n+Workers) are virtual
// sources: each has exactly n outgoing edges, one per real vertex, whose
// weights are rewritten in place by the emv kernel between Dijkstra calls.
type Index struct {
	N         int64
	M         int64
	Workers   int
	Terminals []int64 // ordered; Terminals[len-1] is the root terminal q

	Pos []int64
	Adj []int64
}

// VirtualSource returns the vertex id of worker w's virtual-source slot.
func (idx *Index) VirtualSource(worker int) int64 { return idx.N + int64(worker) }

// Size returns the total number of index slots: real vertices plus one
// virtual source per worker.
func (idx *Index) Size() int64 { return idx.N + int64(idx.Workers) }

// Degree returns the number of outgoing edges recorded for vertex u (real
// or virtual).
func (idx *Index) Degree(u int64) int64 {
	return idx.Adj[idx.Pos[u]]
}

// Neighbor returns the i-th (neighbour, weight) pair of u's adjacency list,
// 0 <= i < Degree(u).
func (idx *Index) Neighbor(u int64, i int64) (v int64, w int64) {
	base := idx.Pos[u] + 1 + 2*i
	return idx.Adj[base], idx.Adj[base+1]
}

// SetVirtualWeight overwrites the weight of the edge from virtual source
// n+worker to real vertex v. This is the only mutation Index permits after
// Compile, and is only ever safe when each worker owns a distinct slot so
// concurrent callers never write the same slot.
func (idx *Index) SetVirtualWeight(worker int, v int64, weight int64) {
	s := idx.VirtualSource(worker)
	base := idx.Pos[s] + 1 + 2*v
	idx.Adj[base+1] = weight
}

// RootTerminal returns q = Terminals[len(Terminals)-1].
func (idx *Index) RootTerminal() int64 {
	return idx.Terminals[len(idx.Terminals)-1]
}

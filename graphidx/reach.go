package graphidx

// Reachable runs an unweighted breadth-first search from source over the
// real vertices of idx (virtual-source slots are never visited) and reports
// which vertices were reached. emv.Solve uses it as a connectivity
// precondition ahead of kernel entry: a Steiner tree exists only if every
// terminal lies in the same component. Adapted from katalvlaran/lvlath's
// bfs.BFS queue-driven walker, specialised to dense int64 ids and the CSR
// adjacency instead of core.Graph's map-based Neighbors.
func (idx *Index) Reachable(source int64) []bool {
	visited := make([]bool, idx.N)
	visited[source] = true

	queue := make([]int64, 0, idx.N)
	queue = append(queue, source)

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		deg := idx.Degree(u)
		for i := int64(0); i < deg; i++ {
			v, _ := idx.Neighbor(u, i)
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}

	return visited
}

// TerminalsConnected reports whether every terminal in idx.Terminals lies in
// the same connected component of the real graph (ignoring edge weights).
func (idx *Index) TerminalsConnected() bool {
	if len(idx.Terminals) == 0 {
		return true
	}
	reach := idx.Reachable(idx.Terminals[0])
	for _, t := range idx.Terminals {
		if !reach[t] {
			return false
		}
	}
	return true
}

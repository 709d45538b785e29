package refsolve

import (
	"sort"

	"github.com/Yishanmys/steiner-edge-linear/graphidx"
)

// mstCost computes the minimum spanning tree weight over the complete
// graph induced by dist (an n*n row-major distance table, from
// FloydWarshall) restricted to the vertices in points, via Kruskal's
// algorithm with a union-find over point indices — the same
// sort-edges-then-union-find shape as prim_kruskal.Kruskal, specialised to
// a dense metric closure instead of a sparse core.Graph edge list.
//
// Returns ErrDisconnected if any pair of points has distance graphidx.Inf.
func mstCost(n int64, dist []int64, points []int64) (int64, error) {
	if len(points) <= 1 {
		return 0, nil
	}

	type edge struct {
		i, j int
		w    int64
	}
	var edges []edge
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			w := dist[points[i]*n+points[j]]
			if w >= graphidx.Inf {
				return 0, ErrDisconnected
			}
			edges = append(edges, edge{i, j, w})
		}
	}
	sort.SliceStable(edges, func(a, b int) bool { return edges[a].w < edges[b].w })

	parent := make([]int, len(points))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	var total int64
	joined := 0
	for _, e := range edges {
		ri, rj := find(e.i), find(e.j)
		if ri == rj {
			continue
		}
		parent[ri] = rj
		total += e.w
		joined++
		if joined == len(points)-1 {
			break
		}
	}
	if joined < len(points)-1 {
		return 0, ErrDisconnected
	}
	return total, nil
}

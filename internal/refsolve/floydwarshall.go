package refsolve

import "github.com/Yishanmys/steiner-edge-linear/graphidx"

// FloydWarshall computes the all-pairs shortest-path closure of an
// n-vertex graph given as an edge list, returning a dense row-major int64
// distance table (dist[i*n+j]). Parallel edges are reduced to their
// minimum weight before the closure runs; graphidx.Inf marks unreachable
// pairs.
//
// Loop order is fixed k, i, j (matrix/impl_floydwarshall.go's order),
// skipping a k or i that cannot reach onward exactly as that routine does,
// for the same reason: once d[i][k] is Inf, no candidate through k can
// improve row i at all.
func FloydWarshall(n int64, edges [][3]int64) []int64 {
	dist := make([]int64, n*n)
	for i := int64(0); i < n; i++ {
		for j := int64(0); j < n; j++ {
			if i == j {
				dist[i*n+j] = 0
			} else {
				dist[i*n+j] = graphidx.Inf
			}
		}
	}
	for _, e := range edges {
		u, v, w := e[0], e[1], e[2]
		if w < dist[u*n+v] {
			dist[u*n+v] = w
			dist[v*n+u] = w
		}
	}

	for k := int64(0); k < n; k++ {
		for i := int64(0); i < n; i++ {
			dik := dist[i*n+k]
			if dik >= graphidx.Inf {
				continue
			}
			for j := int64(0); j < n; j++ {
				dkj := dist[k*n+j]
				if dkj >= graphidx.Inf {
					continue
				}
				if cand := dik + dkj; cand < dist[i*n+j] {
					dist[i*n+j] = cand
				}
			}
		}
	}
	return dist
}

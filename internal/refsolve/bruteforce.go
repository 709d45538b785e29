package refsolve

import "github.com/Yishanmys/steiner-edge-linear/graphidx"

// maxBruteForceVertices bounds the subset enumeration BruteForceSteiner
// performs: 2^(n-k) candidate Steiner-point sets, each costing an MST over
// up to n points. Anything larger belongs to emv, not a cross-check oracle.
const maxBruteForceVertices = 20

// BruteForceSteiner computes the exact minimum Steiner tree cost for a
// small n-vertex graph by enumerating every subset of non-terminal
// vertices as candidate additional tree vertices, and taking the cheapest
// minimum spanning tree (via mstCost) over terminals plus that subset in
// the graph's all-pairs metric closure. This is the standard reduction for
// small instances and needs no dynamic programming of its own, making it
// an independent check on emv's DP.
func BruteForceSteiner(n int64, edges [][3]int64, terminals []int64) (int64, error) {
	if n > maxBruteForceVertices {
		return 0, ErrTooManyVertices
	}

	dist := FloydWarshall(n, edges)

	termSet := make(map[int64]bool, len(terminals))
	for _, t := range terminals {
		termSet[t] = true
	}
	var others []int64
	for v := int64(0); v < n; v++ {
		if !termSet[v] {
			others = append(others, v)
		}
	}

	best := graphidx.Inf
	found := false
	total := int64(1) << uint(len(others))
	for mask := int64(0); mask < total; mask++ {
		points := make([]int64, 0, len(terminals)+len(others))
		points = append(points, terminals...)
		for i, v := range others {
			if mask&(int64(1)<<uint(i)) != 0 {
				points = append(points, v)
			}
		}
		cost, err := mstCost(n, dist, points)
		if err != nil {
			continue
		}
		if !found || cost < best {
			best = cost
			found = true
		}
	}
	if !found {
		return 0, ErrDisconnected
	}
	return best, nil
}

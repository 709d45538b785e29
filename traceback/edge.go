package traceback

import "github.com/Yishanmys/steiner-edge-linear/graphidx"

// Edge is one edge of a reconstructed Steiner tree, carrying the weight
// actually charged for it (spec Open Question 1: the tree's own edges are
// looked up against idx rather than reported as a synthetic unit weight).
type Edge struct {
	U, V   int64
	Weight int64
}

// edgeWeight returns the cheapest recorded weight between u and v in idx's
// adjacency, matching the edge Dijkstra would have relaxed across when
// parallel edges exist between the same pair.
func edgeWeight(idx *graphidx.Index, u, v int64) (int64, error) {
	best := graphidx.Inf
	found := false
	deg := idx.Degree(u)
	for i := int64(0); i < deg; i++ {
		nb, w := idx.Neighbor(u, i)
		if nb == v && w < best {
			best = w
			found = true
		}
	}
	if !found {
		return 0, ErrMissingEdge
	}
	return best, nil
}

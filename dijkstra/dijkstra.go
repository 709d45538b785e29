package dijkstra

import (
	"github.com/Yishanmys/steiner-edge-linear/graphidx"
)

// Run computes shortest distances from source to every vertex (real or
// virtual) present in idx, writing into sc. sc must be sized for idx.Size()
// and is fully reinitialised on entry, so it is safe — and expected — to
// reuse the same Scratch across repeated calls against the same idx.
//
// Algorithm: classical eager Dijkstra with an indexed heap.
// Every vertex is inserted up front with key ∞, except source at key 0.
// On each extraction the vertex is marked visited and its outgoing edges
// are relaxed; on strict improvement the neighbour's key is decreased and
// its parent recorded. Ties never update (sc.Dist[v] must strictly
// improve). The routine terminates when the heap empties; unreached
// vertices retain graphidx.Inf in sc.Dist and Undefined in sc.Parent.
func Run(idx *graphidx.Index, source int64, sc *Scratch) error {
	sc.reset(source)

	size := idx.Size()
	for v := int64(0); v < size; v++ {
		if err := sc.heap.Insert(int(v), sc.Dist[v]); err != nil {
			return err
		}
	}

	for sc.heap.Len() > 0 {
		item, err := sc.heap.DeleteMin()
		if err != nil {
			return err
		}
		u := int64(item)
		sc.Visited.Set(uint(u))

		du := sc.Dist[u]
		if du == graphidx.Inf {
			// Remaining heap entries are all unreachable; no relaxation
			// can ever improve them and du+w could overflow int64 if w
			// is itself Inf, so stop relaxing from this vertex entirely.
			continue
		}

		deg := idx.Degree(u)
		for i := int64(0); i < deg; i++ {
			v, w := idx.Neighbor(u, i)
			if sc.Visited.Test(uint(v)) {
				continue
			}
			nd := du + w
			if nd < sc.Dist[v] {
				sc.Dist[v] = nd
				sc.Parent[v] = u
				if err := sc.heap.DecreaseKey(int(v), nd); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

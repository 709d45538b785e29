package emv

import (
	"github.com/Yishanmys/steiner-edge-linear/dijkstra"
	"github.com/Yishanmys/steiner-edge-linear/graphidx"
	"github.com/Yishanmys/steiner-edge-linear/parallel"
	"github.com/Yishanmys/steiner-edge-linear/subset"
)

// Solve computes the minimum Steiner tree cost over idx's terminals. It runs
// a bottom-up dynamic program over (terminal-subset, vertex) pairs: terminal
// indices [0, K-2] form the DP's subset domain, the last terminal,
// idx.RootTerminal(), is the DP's fixed root and never appears in a mask,
// and Full = (1<<(K-1))-1 is the all-non-root-terminals mask, so the answer
// is f[Full][root].
//
// K == 1 is a degenerate case the general recurrence can't express (there
// is no non-root terminal to seed a singleton from): the tree is a single
// vertex and costs 0. K == 2 needs no special case — it falls out of the
// general loop automatically, since Phase 1 only runs for popcounts 2..
// (K-1) and K-1 == 1 leaves Phase 1's range empty, so the answer is just
// Phase 0's singleton distance from the one non-root terminal to the root.
// This subsumes a "single Dijkstra" shortcut for two terminals without
// needing to special-case it in code.
func Solve(idx *graphidx.Index, opts Options) (Result, error) {
	K := len(idx.Terminals)
	switch {
	case K == 0:
		return Result{}, ErrNoTerminals
	case K > graphidx.MaxTerminals:
		return Result{}, ErrTooManyTerminals
	case idx.Workers <= 0:
		return Result{}, ErrWorkerMismatch
	case !idx.TerminalsConnected():
		return Result{}, ErrDisconnected
	}

	root := idx.RootTerminal()
	numBits := K - 1
	full := uint64(1)<<uint(numBits) - 1

	if numBits == 0 {
		return Result{Cost: 0, Root: root, Full: 0, K: K}, nil
	}

	n := idx.N
	workers := idx.Workers
	f := newFTable(n, numBits)
	var bt *BackTable
	if opts.Traceback {
		bt = newBackTable(n, numBits)
	}

	scratches := make([]*dijkstra.Scratch, workers)
	for w := range scratches {
		scratches[w] = dijkstra.NewScratch(int(idx.Size()))
	}

	// Phase 0: one Dijkstra per non-root terminal, seeding the singleton-mask
	// rows of f directly from shortest-path distances.
	err := parallel.ForEach(numBits, workers, func(worker, i int) error {
		t := idx.Terminals[i]
		sc := scratches[worker]
		if err := dijkstra.Run(idx, t, sc); err != nil {
			return err
		}
		mask := uint64(1) << uint(i)
		for v := int64(0); v < n; v++ {
			f.set(mask, v, sc.Dist[v])
			if bt != nil && sc.Parent[v] != dijkstra.Undefined {
				bt.setRelax(mask, v, sc.Parent[v])
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	// Phase 1: grow subset size m from 2 to numBits. Every mask
	// of popcount m is independent of every other mask of the same
	// popcount (each only reads strictly smaller masks), so a popcount
	// layer parallelises freely; the hard barrier between ForEach calls
	// stops a layer m+1 mask from ever reading a layer m row mid-write.
	for m := 2; m <= numBits; m++ {
		var masks []uint64
		for X := range subset.MasksOfPopcount(numBits, m) {
			masks = append(masks, X)
		}

		err := parallel.ForEach(len(masks), workers, func(worker, i int) error {
			X := masks[i]
			sc := scratches[worker]
			vs := idx.VirtualSource(worker)

			// Combine step: v splits its tree into two subtrees over a
			// bipartition of X's non-root terminals.
			for v := int64(0); v < n; v++ {
				best := graphidx.Inf
				var bestXd uint64
				for Xd := range subset.ProperNonEmptySubmasks(X) {
					Xc := X &^ Xd
					cand := f.get(Xd, v) + f.get(Xc, v)
					if cand < best {
						best = cand
						bestXd = Xd
					}
				}
				f.set(X, v, best)
				if bt != nil {
					bt.setCombine(X, v, bestXd)
				}
			}

			// Relax step: treat the combine results as tentative
			// attachment costs, fold in the cheaper "drop one terminal
			// and re-attach through it" alternative at each terminal
			// slot, then let one Dijkstra from the virtual source
			// propagate every candidate through the real graph at once.
			for v := int64(0); v < n; v++ {
				idx.SetVirtualWeight(worker, v, f.get(X, v))
			}
			for i := 0; i < numBits; i++ {
				bit := uint64(1) << uint(i)
				if X&bit == 0 {
					continue
				}
				u := idx.Terminals[i]
				Xu := X &^ bit
				idx.SetVirtualWeight(worker, u, f.get(Xu, u))
			}
			if err := dijkstra.Run(idx, vs, sc); err != nil {
				return err
			}
			for v := int64(0); v < n; v++ {
				nd := sc.Dist[v]
				if nd < f.get(X, v) {
					f.set(X, v, nd)
					if bt != nil {
						bt.setRelax(X, v, sc.Parent[v])
					}
				}
			}
			return nil
		})
		if err != nil {
			return Result{}, err
		}
	}

	cost := f.get(full, root)
	if cost >= graphidx.Inf {
		return Result{}, ErrDisconnected
	}
	return Result{Cost: cost, Root: root, Full: full, K: K, Back: bt}, nil
}

package traceback

import (
	"github.com/Yishanmys/steiner-edge-linear/emv"
	"github.com/Yishanmys/steiner-edge-linear/graphidx"
)

// Expand reconstructs the edge set of the optimum Steiner tree res
// describes. It requires res.Back (built by passing emv.Options{Traceback:
// true} to emv.Solve); ErrNoBackTable otherwise.
//
// A single-terminal result (res.Full == 0, the DP's degenerate case) is
// a tree with one vertex and no edges, regardless of whether a back table
// was built, so it is handled before that check.
//
// The walk starts at (res.Root, res.Full) and, at each (v, X), consults
// res.Back.Parent(X, v):
//
//   - no entry: v is a Phase 0 singleton terminal with nothing upstream of
//     it — the recursion's base case.
//   - u == v: a combine step; v is the branch vertex splitting its tree
//     into submask Xd and its complement, both still rooted at v — recurse
//     into both halves, no edge emitted.
//   - u != v: a relax step; the path to v passed through real edge (u, v)
//     — emit it, then continue the same subset from u.
func Expand(idx *graphidx.Index, res emv.Result) ([]Edge, error) {
	if res.Full == 0 {
		return nil, nil
	}
	if res.Back == nil {
		return nil, ErrNoBackTable
	}

	var edges []Edge
	var walk func(v int64, X uint64) error
	walk = func(v int64, X uint64) error {
		u, Xd, ok := res.Back.Parent(X, v)
		if !ok {
			return nil
		}
		if u == v {
			if err := walk(v, Xd); err != nil {
				return err
			}
			return walk(v, X^Xd)
		}
		w, err := edgeWeight(idx, u, v)
		if err != nil {
			return err
		}
		edges = append(edges, Edge{U: u, V: v, Weight: w})
		return walk(u, X)
	}

	if err := walk(res.Root, res.Full); err != nil {
		return nil, err
	}
	return edges, nil
}

package emv

// fTable is the DP cost table f[X][v], flattened row-major by subset mask:
// f[X][v] lives at index int64(X)*n + v. X ranges over [0, 1<<(K-1)), v over
// [0, n) (real vertices only; virtual sources never appear as a DP
// coordinate). This layout is the same one tsp/exact.go uses for its
// dp[mask*n+j] table, generalised from a single TSP tour table to one table
// per subset-size layer's worth of (subset, vertex) pairs.
type fTable struct {
	n    int64
	data []int64
}

func newFTable(n int64, k int) *fTable {
	return &fTable{
		n:    n,
		data: make([]int64, (int64(1)<<uint(k))*n),
	}
}

func (t *fTable) idx(X uint64, v int64) int64 { return int64(X)*t.n + v }

func (t *fTable) get(X uint64, v int64) int64   { return t.data[t.idx(X, v)] }
func (t *fTable) set(X uint64, v int64, c int64) { t.data[t.idx(X, v)] = c }

// BackTable is the optional traceback companion to fTable: for each (X, v)
// it records one step of how f[X][v] was attained, in one of two shapes:
//
//   - a combine step: U[X][v] = v (unchanged), Xp[X][v] = Xd, meaning
//     f[X][v] = f[Xd][v] + f[X^Xd][v] — v splits into two subtrees.
//   - a relax step: U[X][v] = p (p != v), Xp[X][v] = X, meaning the
//     shortest path from the virtual source to v passed through p — walk
//     to p and keep the same subset.
//
// Unset entries carry U == Unset.
type BackTable struct {
	n    int64
	U    []int64
	Xp   []uint64
}

// Unset marks a BackTable entry nothing has written yet (the DP coordinate
// is unreachable, or is a Phase 0 singleton root).
const Unset int64 = -1

func newBackTable(n int64, k int) *BackTable {
	size := (int64(1) << uint(k)) * n
	bt := &BackTable{
		n:  n,
		U:  make([]int64, size),
		Xp: make([]uint64, size),
	}
	for i := range bt.U {
		bt.U[i] = Unset
	}
	return bt
}

func (bt *BackTable) idx(X uint64, v int64) int64 { return int64(X)*bt.n + v }

// Parent returns the recorded (u, Xd) step for f[X][v], and whether one was
// ever recorded.
func (bt *BackTable) Parent(X uint64, v int64) (u int64, Xd uint64, ok bool) {
	i := bt.idx(X, v)
	if bt.U[i] == Unset {
		return 0, 0, false
	}
	return bt.U[i], bt.Xp[i], true
}

func (bt *BackTable) setCombine(X uint64, v int64, Xd uint64) {
	i := bt.idx(X, v)
	bt.U[i] = v
	bt.Xp[i] = Xd
}

func (bt *BackTable) setRelax(X uint64, v int64, p int64) {
	i := bt.idx(X, v)
	bt.U[i] = p
	bt.Xp[i] = X
}

// Options controls a Solve call.
type Options struct {
	// Traceback requests that a BackTable be built alongside the cost
	// table, at roughly double the memory cost, so the tree itself (not
	// just its weight) can be recovered afterwards via package traceback.
	Traceback bool
}

// Result is the outcome of a successful Solve.
type Result struct {
	// Cost is the total weight of the optimum Steiner tree.
	Cost int64

	// Root is q, the distinguished terminal the DP is rooted at
	// (idx.RootTerminal()).
	Root int64

	// Full is the full terminal mask excluding q: (1<<(K-1))-1. Root's
	// subtree, f[Full][Root], is the answer; Full is also the starting
	// mask for traceback.Expand.
	Full uint64

	// K is the terminal count Full was built against.
	K int

	// Back is the traceback table, present only when Options.Traceback was
	// set.
	Back *BackTable
}

package graphidx_test

import (
	"testing"

	"github.com/Yishanmys/steiner-edge-linear/graphidx"
	"github.com/stretchr/testify/require"
)

func buildS1(t *testing.T) *graphidx.Index {
	t.Helper()
	g, err := graphidx.NewGraph(4, graphidx.WithWorkers(2))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(0, 3, 10))
	require.NoError(t, g.AddTerminal(0))
	require.NoError(t, g.AddTerminal(2))

	idx, err := g.Compile()
	require.NoError(t, err)
	return idx
}

func TestCompileLayoutInvariants(t *testing.T) {
	idx := buildS1(t)

	require.EqualValues(t, 4, idx.N)
	require.EqualValues(t, 4, idx.M)
	require.Equal(t, 2, idx.Workers)
	require.Equal(t, []int64{0, 2}, idx.Terminals)

	// pos monotone non-decreasing, and block size = 1 + 2*degree.
	for u := int64(0); u < idx.Size(); u++ {
		deg := idx.Degree(u)
		var want int64
		if u+1 < idx.Size() {
			want = idx.Pos[u+1] - idx.Pos[u]
		} else {
			want = int64(len(idx.Adj)) - idx.Pos[u]
		}
		require.Equal(t, 1+2*deg, want, "vertex %d", u)
	}

	// vertex 0 has degree 2: edges to 1 (w=1) and 3 (w=10).
	require.EqualValues(t, 2, idx.Degree(0))
}

func TestCompileSymmetricAdjacency(t *testing.T) {
	idx := buildS1(t)

	has := func(u, v, w int64) bool {
		deg := idx.Degree(u)
		for i := int64(0); i < deg; i++ {
			nv, nw := idx.Neighbor(u, i)
			if nv == v && nw == w {
				return true
			}
		}
		return false
	}

	require.True(t, has(0, 1, 1))
	require.True(t, has(1, 0, 1))
	require.True(t, has(2, 3, 1))
	require.True(t, has(3, 2, 1))
}

func TestVirtualSourceSlotsInitInf(t *testing.T) {
	idx := buildS1(t)

	for worker := 0; worker < idx.Workers; worker++ {
		s := idx.VirtualSource(worker)
		require.EqualValues(t, idx.N, idx.Degree(s))
		for v := int64(0); v < idx.N; v++ {
			nv, nw := idx.Neighbor(s, v)
			require.Equal(t, v, nv)
			require.Equal(t, graphidx.Inf, nw)
		}
	}
}

func TestSetVirtualWeightMutatesOnlyOwnSlot(t *testing.T) {
	idx := buildS1(t)

	idx.SetVirtualWeight(0, 2, 42)
	_, w0 := idx.Neighbor(idx.VirtualSource(0), 2)
	require.EqualValues(t, 42, w0)

	_, w1 := idx.Neighbor(idx.VirtualSource(1), 2)
	require.Equal(t, graphidx.Inf, w1)
}

func TestCompileIdempotent(t *testing.T) {
	g, err := graphidx.NewGraph(4, graphidx.WithWorkers(3))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 3, 2))
	require.NoError(t, g.AddTerminal(0))
	require.NoError(t, g.AddTerminal(3))

	a, err := g.Compile()
	require.NoError(t, err)
	b, err := g.Compile()
	require.NoError(t, err)

	require.Equal(t, a.Pos, b.Pos)
	require.Equal(t, a.Adj, b.Adj)
}

func TestCompileRejectsTooManyTerminals(t *testing.T) {
	g, err := graphidx.NewGraph(40)
	require.NoError(t, err)
	for i := int64(0); i < 33; i++ {
		require.NoError(t, g.AddTerminal(i))
	}
	_, err = g.Compile()
	require.ErrorIs(t, err, graphidx.ErrTooManyTerminals)
}

func TestAddEdgeRejectsOutOfRangeAndNegative(t *testing.T) {
	g, err := graphidx.NewGraph(3)
	require.NoError(t, err)
	require.ErrorIs(t, g.AddEdge(0, 5, 1), graphidx.ErrVertexRange)
	require.ErrorIs(t, g.AddEdge(0, 1, -1), graphidx.ErrNegativeWeight)
}

func TestAddTerminalRejectsDuplicate(t *testing.T) {
	g, err := graphidx.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddTerminal(1))
	require.ErrorIs(t, g.AddTerminal(1), graphidx.ErrDuplicateTerminal)
}

func TestReachableDetectsDisconnection(t *testing.T) {
	g, err := graphidx.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	// 2,3 left isolated from {0,1}.
	require.NoError(t, g.AddTerminal(0))
	require.NoError(t, g.AddTerminal(2))

	idx, err := g.Compile()
	require.NoError(t, err)
	require.False(t, idx.TerminalsConnected())
}

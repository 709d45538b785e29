package emv_test

import (
	"testing"

	"github.com/Yishanmys/steiner-edge-linear/emv"
	"github.com/Yishanmys/steiner-edge-linear/graphidx"
	"github.com/stretchr/testify/require"
)

func mustIndex(t *testing.T, n int64, edges [][3]int64, terminals []int64, workers int) *graphidx.Index {
	t.Helper()
	g, err := graphidx.NewGraph(n, graphidx.WithWorkers(workers))
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], e[2]))
	}
	for _, term := range terminals {
		require.NoError(t, g.AddTerminal(term))
	}
	idx, err := g.Compile()
	require.NoError(t, err)
	return idx
}

func TestSolveSingleTerminalCostsZero(t *testing.T) {
	idx := mustIndex(t, 3, nil, []int64{1}, 2)
	res, err := emv.Solve(idx, emv.Options{})
	require.NoError(t, err)
	require.Equal(t, int64(0), res.Cost)
	require.Equal(t, int64(1), res.Root)
	require.Equal(t, uint64(0), res.Full)
}

func TestSolveTwoTerminalsIsShortestPath(t *testing.T) {
	// 0 --1-- 1 --4-- 2
	idx := mustIndex(t, 3, [][3]int64{{0, 1, 1}, {1, 2, 4}}, []int64{0, 2}, 2)
	res, err := emv.Solve(idx, emv.Options{})
	require.NoError(t, err)
	require.Equal(t, int64(5), res.Cost)
}

func TestSolveThreeTerminalsPrefersHubOverDirectEdges(t *testing.T) {
	// Terminals 0,1,2 each cheaply reach hub vertex 3, but are far apart
	// directly: the optimum Steiner tree branches at the hub (cost 3), not
	// at any pairwise direct edge (cost 10 for two of the three).
	idx := mustIndex(t, 4, [][3]int64{
		{0, 3, 1}, {1, 3, 1}, {2, 3, 1},
		{0, 1, 5}, {1, 2, 5}, {0, 2, 5},
	}, []int64{0, 1, 2}, 2)

	res, err := emv.Solve(idx, emv.Options{Traceback: true})
	require.NoError(t, err)
	require.Equal(t, int64(3), res.Cost)
	require.Equal(t, int64(2), res.Root)
	require.Equal(t, uint64(3), res.Full)
	require.NotNil(t, res.Back)
}

func TestSolveDisconnectedTerminalsFail(t *testing.T) {
	idx := mustIndex(t, 4, [][3]int64{{0, 1, 1}}, []int64{0, 1, 2}, 1)
	_, err := emv.Solve(idx, emv.Options{})
	require.ErrorIs(t, err, emv.ErrDisconnected)
}

func TestSolveFourTerminalsSquareWithCenter(t *testing.T) {
	// A square of 4 terminals (0,1,2,3) each at distance 2 from a center
	// vertex 4, with square-side edges of cost 3: the optimal Steiner tree
	// is the 4-spoke star through the center, cost 8, beating any
	// 3-edges-of-the-square spanning tree (cost 9).
	idx := mustIndex(t, 5, [][3]int64{
		{0, 4, 2}, {1, 4, 2}, {2, 4, 2}, {3, 4, 2},
		{0, 1, 3}, {1, 2, 3}, {2, 3, 3}, {3, 0, 3},
	}, []int64{0, 1, 2, 3}, 4)

	res, err := emv.Solve(idx, emv.Options{})
	require.NoError(t, err)
	require.Equal(t, int64(8), res.Cost)
}

func TestCompileRejectsTooManyTerminalsBeforeSolve(t *testing.T) {
	g, err := graphidx.NewGraph(40)
	require.NoError(t, err)
	for i := int64(0); i < 33; i++ {
		require.NoError(t, g.AddTerminal(i))
	}
	_, err = g.Compile()
	require.ErrorIs(t, err, graphidx.ErrTooManyTerminals)
}

func TestSolveIsDeterministicAcrossWorkerCounts(t *testing.T) {
	edges := [][3]int64{
		{0, 3, 1}, {1, 3, 1}, {2, 3, 1},
		{0, 1, 5}, {1, 2, 5}, {0, 2, 5},
	}
	idx1 := mustIndex(t, 4, edges, []int64{0, 1, 2}, 1)
	idx4 := mustIndex(t, 4, edges, []int64{0, 1, 2}, 4)

	res1, err := emv.Solve(idx1, emv.Options{})
	require.NoError(t, err)
	res4, err := emv.Solve(idx4, emv.Options{})
	require.NoError(t, err)
	require.Equal(t, res1.Cost, res4.Cost)
}

package gen_test

import (
	"math/rand"
	"testing"

	"github.com/Yishanmys/steiner-edge-linear/gen"
	"github.com/stretchr/testify/require"
)

func TestPathHasNMinusOneEdges(t *testing.T) {
	inst, err := gen.Path(5)
	require.NoError(t, err)
	require.Equal(t, int64(5), inst.N)
	require.Len(t, inst.Edges, 4)
}

func TestCycleHasNEdges(t *testing.T) {
	inst, err := gen.Cycle(6)
	require.NoError(t, err)
	require.Len(t, inst.Edges, 6)
}

func TestCycleRejectsTooFewVertices(t *testing.T) {
	_, err := gen.Cycle(2)
	require.ErrorIs(t, err, gen.ErrTooFewVertices)
}

func TestStarHasNMinusOneEdgesAllTouchingCenter(t *testing.T) {
	inst, err := gen.Star(4)
	require.NoError(t, err)
	require.Len(t, inst.Edges, 3)
	for _, e := range inst.Edges {
		require.True(t, e[0] == 0 || e[1] == 0)
	}
}

func TestCompleteHasBinomialEdgeCount(t *testing.T) {
	inst, err := gen.Complete(5)
	require.NoError(t, err)
	require.Len(t, inst.Edges, 10) // C(5,2)
}

func TestGridHasExpectedVertexAndEdgeCounts(t *testing.T) {
	inst, err := gen.Grid(3, 4)
	require.NoError(t, err)
	require.Equal(t, int64(12), inst.N)
	// interior connections: rows*(cols-1) horizontal + (rows-1)*cols vertical
	require.Len(t, inst.Edges, 3*3+2*4)
}

func TestRandomSparseIsDeterministicForFixedSeed(t *testing.T) {
	inst1, err := gen.RandomSparse(20, 0.3, gen.WithSeed(42))
	require.NoError(t, err)
	inst2, err := gen.RandomSparse(20, 0.3, gen.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, inst1, inst2)
}

func TestRandomSparseRejectsBadProbability(t *testing.T) {
	_, err := gen.RandomSparse(5, 1.5)
	require.Error(t, err)
}

func TestUniformWeightFnStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	fn := gen.UniformWeightFn(10, 20)
	for i := 0; i < 100; i++ {
		w := fn(rng)
		require.GreaterOrEqual(t, w, int64(10))
		require.LessOrEqual(t, w, int64(20))
	}
}

func TestRandomTerminalsAreDistinctAndInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	terms, err := gen.RandomTerminals(10, 4, rng)
	require.NoError(t, err)
	require.Len(t, terms, 4)
	seen := make(map[int64]bool)
	for _, v := range terms {
		require.GreaterOrEqual(t, v, int64(0))
		require.Less(t, v, int64(10))
		require.False(t, seen[v])
		seen[v] = true
	}
}

func TestBuildIndexRoundTrips(t *testing.T) {
	inst, err := gen.Path(4)
	require.NoError(t, err)
	idx, err := gen.BuildIndex(inst, []int64{0, 3})
	require.NoError(t, err)
	require.Equal(t, int64(4), idx.N)
	require.Equal(t, []int64{0, 3}, idx.Terminals)
}

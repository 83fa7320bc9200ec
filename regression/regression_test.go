package regression_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/cutrank/regression"
	"github.com/stretchr/testify/require"
)

func TestTrianglePairCutRank(t *testing.T) {
	st, err := regression.TrianglePair()
	require.NoError(t, err)
	require.Equal(t, 2, st.CutRank())
}

func TestCompleteBipartiteSeparatingTriadsHasCutRankOne(t *testing.T) {
	st, err := regression.CompleteBipartite([]bool{true, true, true, false, false, false})
	require.NoError(t, err)
	require.Equal(t, 1, st.CutRank())
}

func TestCompleteBipartiteOtherSplitHasHigherCutRank(t *testing.T) {
	st, err := regression.CompleteBipartite([]bool{true, false, true, false, true, false})
	require.NoError(t, err)
	require.GreaterOrEqual(t, st.CutRank(), 2)
}

func TestGridLowerBound(t *testing.T) {
	for _, n := range []int{3, 4, 5} {
		cutRank, err := regression.GridLowerBound(n, regression.DefaultSchedule(), 11)
		require.NoErrorf(t, err, "GridLowerBound(%d)", n)
		require.GreaterOrEqualf(t, cutRank, n, "GridLowerBound(%d) = %d, want >= %d", n, cutRank, n)
	}
}

func TestRankReduceAgreement(t *testing.T) {
	mismatches, err := regression.RankReduceAgreement(100, 10, 0.3, 5)
	require.NoError(t, err)
	require.Zero(t, mismatches)
}

func TestSparseErdosRenyiAverageIsDeterministic(t *testing.T) {
	ctx := context.Background()
	avg1, err := regression.SparseErdosRenyiAverage(ctx, 10, 20, 3.0, 1234)
	require.NoError(t, err)
	avg2, err := regression.SparseErdosRenyiAverage(ctx, 10, 20, 3.0, 1234)
	require.NoError(t, err)
	require.Equal(t, avg1, avg2)
}

func TestSparseErdosRenyiAverageRejectsZeroTrials(t *testing.T) {
	_, err := regression.SparseErdosRenyiAverage(context.Background(), 0, 20, 3.0, 1)
	require.ErrorIs(t, err, regression.ErrTooFewTrials)
}

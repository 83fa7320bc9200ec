package partition_test

import (
	"testing"

	"github.com/katalvlaran/cutrank/gf2"
	"github.com/katalvlaran/cutrank/partition"
	"github.com/stretchr/testify/require"
)

func setEdge(m *gf2.Matrix, a, b int) {
	m.Set(a, b, 1)
	m.Set(b, a, 1)
}

// pathGraph builds the adjacency matrix of the path 0-1-2-...-(n-1).
func pathGraph(n int) *gf2.Matrix {
	m, _ := gf2.NewMatrix(n, n)
	for i := 0; i < n-1; i++ {
		setEdge(m, i, i+1)
	}
	return m
}

func TestNewRejectsNonSquare(t *testing.T) {
	m, _ := gf2.NewMatrix(3, 4)
	_, err := partition.New(m, []bool{true, true, false})
	require.Error(t, err)
}

func TestNewRejectsNonZeroDiagonal(t *testing.T) {
	m := pathGraph(4)
	m.Set(1, 1, 1)
	_, err := partition.New(m, []bool{true, true, false, false})
	require.ErrorIs(t, err, partition.ErrNonZeroDiagonal)
}

func TestNewRejectsAsymmetric(t *testing.T) {
	m := pathGraph(4)
	m.Set(0, 2, 1) // breaks symmetry since m.Get(2,0) stays 0
	_, err := partition.New(m, []bool{true, true, false, false})
	require.ErrorIs(t, err, partition.ErrNonSymmetricAdjacency)
}

func TestNewRejectsBadSideFlagLength(t *testing.T) {
	m := pathGraph(4)
	_, err := partition.New(m, []bool{true, false})
	require.ErrorIs(t, err, partition.ErrSideFlagLength)
}

func TestNewComputesCutRank(t *testing.T) {
	m := pathGraph(4) // 0-1-2-3
	// rows = {0,2}, cols = {1,3}; block = [[1,0],[1,1]], rank 2.
	st, err := partition.New(m, []bool{true, false, true, false})
	require.NoError(t, err)
	require.Equal(t, 2, st.CutRank())
	require.Len(t, st.BaseRows(), st.CutRank())
	require.Len(t, st.BaseCols(), st.CutRank())
	require.Equal(t, len(st.Rows()), len(st.FreeRows())+len(st.BaseRows()))
}

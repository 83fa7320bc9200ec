package gf2_test

import (
	"testing"

	"github.com/katalvlaran/cutrank/gf2"
	"github.com/stretchr/testify/require"
)

func TestRankReduceFullRank(t *testing.T) {
	m, err := gf2.NewMatrix(4, 4)
	require.NoError(t, err)
	// rows {0,1} x cols {2,3}: identity block, rank 2.
	m.Set(0, 2, 1)
	m.Set(1, 3, 1)

	selRows, selCols := gf2.RankReduce(m, []int{0, 1}, []int{2, 3})
	require.Len(t, selRows, 2)
	require.Len(t, selCols, 2)
}

func TestRankReduceRankDeficient(t *testing.T) {
	m, err := gf2.NewMatrix(4, 4)
	require.NoError(t, err)
	// rows {0,1} x cols {2,3}: both rows identical, rank 1.
	m.Set(0, 2, 1)
	m.Set(0, 3, 1)
	m.Set(1, 2, 1)
	m.Set(1, 3, 1)

	selRows, selCols := gf2.RankReduce(m, []int{0, 1}, []int{2, 3})
	require.Len(t, selRows, 1)
	require.Len(t, selCols, 1)
}

func TestRankReduceZeroBlock(t *testing.T) {
	m, err := gf2.NewMatrix(4, 4)
	require.NoError(t, err)
	selRows, selCols := gf2.RankReduce(m, []int{0, 1}, []int{2, 3})
	require.Empty(t, selRows)
	require.Empty(t, selCols)
}

package anneal_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/cutrank/anneal"
	"github.com/katalvlaran/cutrank/gf2"
	"github.com/katalvlaran/cutrank/partition"
	"github.com/stretchr/testify/require"
)

func setEdge(m *gf2.Matrix, a, b int) {
	m.Set(a, b, 1)
	m.Set(b, a, 1)
}

func gridGraph(rows, cols int) *gf2.Matrix {
	n := rows * cols
	m, _ := gf2.NewMatrix(n, n)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := c + r*cols
			if r > 0 {
				setEdge(m, pos, pos-cols)
			}
			if c > 0 {
				setEdge(m, pos, pos-1)
			}
		}
	}
	return m
}

func sorted(a []int) []int {
	b := append([]int(nil), a...)
	sort.Ints(b)
	return b
}

func TestIncrementalMatchesDirect(t *testing.T) {
	sideFlags := make([]bool, 16)
	for i := range sideFlags {
		sideFlags[i] = i%2 == 0
	}
	adj := gridGraph(4, 4)

	st, err := partition.New(adj, sideFlags)
	require.NoError(t, err)
	startRows := append([]int(nil), st.Rows()...)
	startCols := append([]int(nil), st.Cols()...)
	startCutRank := st.CutRank()

	opts := anneal.Options{Temperatures: []float64{4, 2, 1}, Seed: 42}

	wantRows, wantCols, wantCutRank, err := anneal.Direct(adj, startRows, startCols, startCutRank, opts)
	require.NoError(t, err)

	require.NoError(t, anneal.Incremental(st, opts))

	require.Equal(t, wantCutRank, st.CutRank(), "Incremental cut-rank vs Direct")
	require.Equal(t, sorted(wantRows), sorted(st.Rows()), "Incremental rows vs Direct")
	require.Equal(t, sorted(wantCols), sorted(st.Cols()), "Incremental cols vs Direct")
}

func TestDirectIsDeterministic(t *testing.T) {
	adj := gridGraph(3, 3)
	sideFlags := make([]bool, 9)
	for i := range sideFlags {
		sideFlags[i] = i%2 == 0
	}
	st, err := partition.New(adj, sideFlags)
	require.NoError(t, err)

	opts := anneal.Options{Temperatures: []float64{3, 1.5}, Seed: 7}
	r1, c1, rank1, err := anneal.Direct(adj, st.Rows(), st.Cols(), st.CutRank(), opts)
	require.NoError(t, err)
	r2, c2, rank2, err := anneal.Direct(adj, st.Rows(), st.Cols(), st.CutRank(), opts)
	require.NoError(t, err)

	require.Equal(t, rank1, rank2)
	require.Equal(t, r1, r2)
	require.Equal(t, c1, c2)
}

func TestOptionsValidation(t *testing.T) {
	adj := gridGraph(2, 2)
	_, _, _, err := anneal.Direct(adj, []int{0, 1}, []int{2, 3}, 0, anneal.Options{})
	require.ErrorIs(t, err, anneal.ErrNoTemperatures)

	_, _, _, err = anneal.Direct(adj, []int{0, 1}, []int{2, 3}, 0, anneal.Options{Temperatures: []float64{0}})
	require.ErrorIs(t, err, anneal.ErrNonPositiveTemperature)
}

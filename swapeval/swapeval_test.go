package swapeval_test

import (
	"testing"

	"github.com/katalvlaran/cutrank/gf2"
	"github.com/katalvlaran/cutrank/partition"
	"github.com/katalvlaran/cutrank/swapeval"
	"github.com/stretchr/testify/require"
)

func setEdge(m *gf2.Matrix, a, b int) {
	m.Set(a, b, 1)
	m.Set(b, a, 1)
}

// gridGraph builds the adjacency matrix of a rows x cols 4-neighbor grid,
// nodes numbered pos = c + r*cols.
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

// directSwappedRank recomputes, from scratch, the rank the adjacency block
// would have if row and column swapped sides.
func directSwappedRank(adjacency *gf2.Matrix, rows, cols []int, row, column int) int {
	newRows := make([]int, 0, len(rows))
	for _, r := range rows {
		if r == row {
			newRows = append(newRows, column)
		} else {
			newRows = append(newRows, r)
		}
	}
	newCols := make([]int, 0, len(cols))
	for _, c := range cols {
		if c == column {
			newCols = append(newCols, row)
		} else {
			newCols = append(newCols, c)
		}
	}
	buf := adjacency.Clone()
	selRows, _ := gf2.RankReduce(buf, newRows, newCols)
	return len(selRows)
}

func newGridState(t *testing.T, rows, cols int, sideFlags []bool) (*gf2.Matrix, *partition.State) {
	t.Helper()
	adj := gridGraph(rows, cols)
	st, err := partition.New(adj, sideFlags)
	require.NoError(t, err)
	return adj, st
}

func alternatingFlags(n int) []bool {
	f := make([]bool, n)
	for i := range f {
		f[i] = i%2 == 0
	}
	return f
}

func TestSingleMatchesDirectRecomputation(t *testing.T) {
	adj, st := newGridState(t, 3, 3, alternatingFlags(9))

	for _, row := range st.Rows() {
		for _, column := range st.Cols() {
			got := swapeval.Single(st, row, column)
			want := directSwappedRank(adj, st.Rows(), st.Cols(), row, column)
			require.Equalf(t, want, got, "Single(%d,%d)", row, column)
		}
	}
}

func TestSingleAgreesWithApplySwap(t *testing.T) {
	_, st := newGridState(t, 3, 3, alternatingFlags(9))

	rows := append([]int(nil), st.Rows()...)
	cols := append([]int(nil), st.Cols()...)
	for _, row := range rows {
		for _, col := range cols {
			if !st.IsRow(row) || st.IsRow(col) {
				continue
			}
			predicted := swapeval.Single(st, row, col)
			require.NoError(t, st.ApplySwap(row, col))
			require.Equalf(t, predicted, st.CutRank(), "Single(%d,%d) predicted before swap", row, col)
		}
	}
}

func TestRowMatchesSingle(t *testing.T) {
	_, st := newGridState(t, 3, 3, alternatingFlags(9))

	row := st.Rows()[0]
	out := make([]int, st.NumNodes())
	untouched := -1
	for i := range out {
		out[i] = untouched
	}
	swapeval.Row(st, row, out)

	for _, column := range st.Cols() {
		want := swapeval.Single(st, row, column)
		require.Equalf(t, want, out[column], "Row()[%d]", column)
	}
	for n := 0; n < st.NumNodes(); n++ {
		if st.IsRow(n) {
			require.Equalf(t, untouched, out[n], "Row() wrote to non-column position %d", n)
		}
	}
}

func TestAllMatchesSingle(t *testing.T) {
	_, st := newGridState(t, 3, 3, alternatingFlags(9))

	n := st.NumNodes()
	untouched := -1
	out := make([][]int, n)
	for i := range out {
		out[i] = make([]int, n)
		for j := range out[i] {
			out[i][j] = untouched
		}
	}
	swapeval.All(st, out)

	for _, row := range st.Rows() {
		for _, column := range st.Cols() {
			want := swapeval.Single(st, row, column)
			require.Equalf(t, want, out[row][column], "All()[%d][%d]", row, column)
		}
	}
	for _, column := range st.Cols() {
		require.Equalf(t, untouched, out[column][column], "All() wrote to a non-row index %d", column)
	}
}

package swapeval

import "github.com/katalvlaran/cutrank/partition"

// All fills out[x][y] with the cut-rank the partition would report after
// swapping x with y, for every x in st.Rows() and y in st.Cols(), without
// applying any swap. out must already be shaped st.NumNodes() x
// st.NumNodes(); positions at x not in st.Rows(), or y not in st.Cols(),
// are left untouched.
//
// Complexity: O(|Rows()| * |Cols()| * n).
func All(st *partition.State, out [][]int) {
	n := st.NumNodes()
	if len(out) < n {
		panic("swapeval: All: out is shorter than st.NumNodes()")
	}
	for _, row := range st.Rows() {
		if len(out[row]) < n {
			panic("swapeval: All: out[row] is shorter than st.NumNodes()")
		}
		Row(st, row, out[row])
	}
}

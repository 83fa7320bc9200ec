package swapeval

import "github.com/katalvlaran/cutrank/partition"

// Row fills out[y] with the cut-rank the partition would report after
// swapping row with y, for every y in st.Cols(), without applying any
// swap. out must be sized st.NumNodes(); positions at y not in st.Cols()
// are left untouched.
//
// Complexity: O(|Cols()| * n).
func Row(st *partition.State, row int, out []int) {
	if len(out) < st.NumNodes() {
		panic("swapeval: Row: out is shorter than st.NumNodes()")
	}
	for _, column := range st.Cols() {
		out[column] = Single(st, row, column)
	}
}

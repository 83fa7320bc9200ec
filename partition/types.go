// Package partition maintains a bipartition of a simple graph's nodes into a
// row side and a column side, together with the GF(2) cut-rank of the
// adjacency submatrix spanning the two sides and the algebraic bookkeeping
// (an invertible core block and three derived Schur-complement matrices)
// needed to update that rank in less than cubic time when a single row is
// swapped with a single column.
//
// The bookkeeping mirrors a classical rank-one-update scheme: a subset of
// rows and an equal-size subset of columns are chosen so that the adjacency
// block they span is invertible and of maximal size (the "core"); its
// inverse and three products derived from it let ApplySwap patch the whole
// structure in O(n^2) instead of recomputing the rank from scratch.
package partition

import "github.com/katalvlaran/cutrank/gf2"

// State holds a graph's adjacency matrix, a bipartition of its nodes, and
// the algebraic structures used to track the cut-rank of that bipartition
// incrementally across swaps.
type State struct {
	n     int   // number of graph nodes
	nodes []int // 0..n-1, fixed for the lifetime of the State

	rowFlag []bool // rowFlag[v] is true when v currently sits on the row side
	rows    []int  // nodes with rowFlag[v] == true
	cols    []int  // nodes with rowFlag[v] == false

	baseFlag []bool // baseFlag[v] is true when v is part of the invertible core
	baseRows []int  // rows belonging to the core, len(baseRows) == cutRank
	baseCols []int  // columns belonging to the core, len(baseCols) == cutRank
	freeRows []int  // rows not in baseRows
	freeCols []int  // columns not in baseCols
	cutRank  int    // GF(2) rank of adjacency[rows, cols]

	adjacency *gf2.Matrix // the graph's n x n adjacency matrix, fixed for the lifetime of the State

	// baseInverse stores C^-1 at block [baseCols, baseRows], where
	// C = adjacency[baseRows, baseCols] is the invertible core.
	baseInverse *gf2.Matrix

	// adjBInverse stores D = adjacency[nodes, baseCols] * C^-1 at block
	// [nodes, baseRows].
	adjBInverse *gf2.Matrix

	// bInverseAdj stores E = C^-1 * adjacency[baseRows, nodes] at block
	// [baseCols, nodes].
	bInverseAdj *gf2.Matrix

	// adjBInvAdj stores F = D * adjacency[baseRows, nodes] + adjacency at
	// block [nodes, nodes].
	adjBInvAdj *gf2.Matrix

	// buffer is scratch space reused by reduceBase and extendBase to avoid
	// per-swap allocation.
	buffer *gf2.Matrix
}

// filterFlagged returns the subsequence of idx whose entries are flagged
// true in flag, preserving order.
func filterFlagged(idx []int, flag []bool) []int {
	out := make([]int, 0, len(idx))
	for _, v := range idx {
		if flag[v] {
			out = append(out, v)
		}
	}
	return out
}

// indexOf returns the position of v in s, or -1 if absent.
func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

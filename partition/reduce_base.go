package partition

import "github.com/katalvlaran/cutrank/gf2"

// reduceBase removes removedRows and removedCols from the core, shrinking
// cutRank by len(removedRows) and patching baseInverse, adjBInverse,
// bInverseAdj, and adjBInvAdj in place. It is a no-op when removedRows is
// empty.
//
// Complexity: O(n^2 * |removed|) per matrix patch, worst case.
func (s *State) reduceBase(removedRows, removedCols []int) {
	if len(removedRows) == 0 {
		return
	}

	for _, row := range removedRows {
		s.baseFlag[row] = false
	}
	for _, col := range removedCols {
		s.baseFlag[col] = false
	}
	s.baseRows = filterFlagged(s.rows, s.baseFlag)
	s.baseCols = filterFlagged(s.cols, s.baseFlag)
	s.cutRank = len(s.baseRows)

	// Z is the inverse of the witness block being folded out of the core.
	gf2.Copy(s.baseInverse, s.buffer, removedCols, removedRows)
	if err := gf2.Inverse(s.buffer, s.buffer, removedCols, removedRows); err != nil {
		panicInvariant("reduce-base: witness block is singular")
	}

	gf2.ZeroFill(s.adjBInverse, s.nodes, removedCols)
	gf2.AddProduct(s.adjBInverse, s.buffer, s.adjBInverse, s.nodes, removedRows, removedCols)
	gf2.AddProduct(s.adjBInverse, s.bInverseAdj, s.adjBInvAdj, s.nodes, removedCols, s.nodes)
	gf2.AddProduct(s.adjBInverse, s.baseInverse, s.adjBInverse, s.nodes, removedCols, s.baseRows)

	gf2.ZeroFill(s.adjBInverse, s.nodes, removedCols)
	gf2.AddProduct(s.baseInverse, s.buffer, s.adjBInverse, s.baseCols, removedRows, removedCols)
	gf2.AddProduct(s.adjBInverse, s.bInverseAdj, s.bInverseAdj, s.baseCols, removedCols, s.nodes)
	gf2.AddProduct(s.adjBInverse, s.baseInverse, s.baseInverse, s.baseCols, removedCols, s.baseRows)
}

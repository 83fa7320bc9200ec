package partition

import "github.com/katalvlaran/cutrank/gf2"

// extendBase adds addedRows and addedCols to the core, growing cutRank by
// len(addedRows) and patching baseInverse, adjBInverse, bInverseAdj, and
// adjBInvAdj in place. It is a no-op when addedRows is empty.
//
// Complexity: O(n^2 * |added|) per matrix patch, worst case.
func (s *State) extendBase(addedRows, addedCols []int) {
	if len(addedRows) == 0 {
		return
	}

	for _, row := range addedRows {
		s.baseFlag[row] = true
	}
	for _, col := range addedCols {
		s.baseFlag[col] = true
	}
	newBaseRows := filterFlagged(s.rows, s.baseFlag)
	newBaseCols := filterFlagged(s.cols, s.baseFlag)

	// Z is the witness block; its inverse seeds the enlarged core's inverse.
	gf2.Copy(s.adjacency, s.buffer, addedRows, addedCols)
	gf2.ZeroFill(s.buffer, addedRows, s.baseRows)
	gf2.AddProduct(s.adjacency, s.baseInverse, s.buffer, addedRows, s.baseCols, s.baseRows)
	gf2.AddProduct(s.buffer, s.adjacency, s.buffer, addedRows, s.baseRows, addedCols)
	gf2.ZeroFill(s.baseInverse, addedCols, newBaseRows)
	gf2.ZeroFill(s.baseInverse, s.baseCols, addedRows)
	if err := gf2.Inverse(s.buffer, s.baseInverse, addedRows, addedCols); err != nil {
		panicInvariant("extend-base: witness block is singular")
	}

	gf2.ZeroFill(s.buffer, s.baseCols, addedCols)
	gf2.AddProduct(s.baseInverse, s.adjacency, s.buffer, s.baseCols, s.baseRows, addedCols)
	gf2.AddProduct(s.baseInverse, s.buffer, s.baseInverse, addedCols, addedRows, s.baseRows)
	gf2.AddProduct(s.buffer, s.baseInverse, s.baseInverse, s.baseCols, addedCols, newBaseRows)

	gf2.Copy(s.adjacency, s.adjBInverse, s.nodes, addedCols)
	gf2.AddProduct(s.adjBInverse, s.adjacency, s.adjBInverse, s.nodes, s.baseRows, addedCols)
	gf2.ZeroFill(s.adjBInverse, s.nodes, addedRows)
	gf2.AddProduct(s.adjBInverse, s.baseInverse, s.adjBInverse, s.nodes, addedCols, newBaseRows)

	gf2.Copy(s.adjacency, s.bInverseAdj, addedRows, s.nodes)
	gf2.AddProduct(s.adjacency, s.bInverseAdj, s.bInverseAdj, addedRows, s.baseCols, s.nodes)
	gf2.ZeroFill(s.bInverseAdj, addedCols, s.nodes)
	gf2.AddProduct(s.baseInverse, s.bInverseAdj, s.bInverseAdj, newBaseCols, addedRows, s.nodes)

	gf2.ZeroFill(s.buffer, addedCols, s.nodes)
	gf2.AddProduct(s.baseInverse, s.bInverseAdj, s.buffer, addedCols, addedRows, s.nodes)
	gf2.AddProduct(s.adjBInverse, s.buffer, s.adjBInvAdj, s.nodes, addedCols, s.nodes)

	s.baseRows = newBaseRows
	s.baseCols = newBaseCols
	s.cutRank = len(s.baseRows)
}

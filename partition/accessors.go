package partition

import "github.com/katalvlaran/cutrank/gf2"

// NumNodes returns the number of graph nodes.
func (s *State) NumNodes() int { return s.n }

// CutRank returns the GF(2) rank of adjacency[Rows(), Cols()] for the
// current bipartition.
func (s *State) CutRank() int { return s.cutRank }

// Rows returns the nodes currently on the row side. The returned slice must
// not be modified by the caller.
func (s *State) Rows() []int { return s.rows }

// Cols returns the nodes currently on the column side. The returned slice
// must not be modified by the caller.
func (s *State) Cols() []int { return s.cols }

// BaseRows returns the row-side nodes that belong to the invertible core.
// The returned slice must not be modified by the caller.
func (s *State) BaseRows() []int { return s.baseRows }

// BaseCols returns the column-side nodes that belong to the invertible
// core. The returned slice must not be modified by the caller.
func (s *State) BaseCols() []int { return s.baseCols }

// FreeRows returns the row-side nodes outside the invertible core. The
// returned slice must not be modified by the caller.
func (s *State) FreeRows() []int { return s.freeRows }

// FreeCols returns the column-side nodes outside the invertible core. The
// returned slice must not be modified by the caller.
func (s *State) FreeCols() []int { return s.freeCols }

// IsRow reports whether v currently sits on the row side.
func (s *State) IsRow(v int) bool { return s.rowFlag[v] }

// IsBase reports whether v currently belongs to the invertible core.
func (s *State) IsBase(v int) bool { return s.baseFlag[v] }

// Adjacency returns the graph's adjacency matrix. It must not be modified
// by the caller.
func (s *State) Adjacency() *gf2.Matrix { return s.adjacency }

// BaseInverse returns C^-1 stored at block [BaseCols(), BaseRows()]. It must
// not be modified by the caller.
func (s *State) BaseInverse() *gf2.Matrix { return s.baseInverse }

// AdjBInverse returns D = adjacency * C^-1 stored at block
// [nodes, BaseRows()]. It must not be modified by the caller.
func (s *State) AdjBInverse() *gf2.Matrix { return s.adjBInverse }

// BInverseAdj returns E = C^-1 * adjacency stored at block
// [BaseCols(), nodes]. It must not be modified by the caller.
func (s *State) BInverseAdj() *gf2.Matrix { return s.bInverseAdj }

// AdjBInvAdj returns F = D * adjacency + adjacency stored at block
// [nodes, nodes]. It must not be modified by the caller.
func (s *State) AdjBInvAdj() *gf2.Matrix { return s.adjBInvAdj }

package partition

import "github.com/katalvlaran/cutrank/gf2"

// New builds a State from a simple graph's adjacency matrix and an initial
// bipartition of its nodes.
//
// Stage 1 (Validate): adjacency must be non-nil and square, symmetric, and
// zero on the diagonal; sideFlags must carry exactly one entry per node.
// Stage 2 (Build): a maximal invertible core of the adjacency block spanned
// by the two sides is extracted and inverted, and the three derived
// matrices used by ApplySwap are computed from it.
//
// Complexity: O(n^3) for the initial rank extraction and inversion.
func New(adjacency *gf2.Matrix, sideFlags []bool) (*State, error) {
	if err := gf2.ValidateSquare(adjacency); err != nil {
		return nil, errorf("New", ErrNonSquareAdjacency)
	}
	n := adjacency.Rows()
	if len(sideFlags) != n {
		return nil, errorf("New", ErrSideFlagLength)
	}
	for i := 0; i < n; i++ {
		if adjacency.Get(i, i) != 0 {
			return nil, errorf("New", ErrNonZeroDiagonal)
		}
		for j := i + 1; j < n; j++ {
			if adjacency.Get(i, j) != adjacency.Get(j, i) {
				return nil, errorf("New", ErrNonSymmetricAdjacency)
			}
		}
	}

	s := &State{
		n:         n,
		nodes:     make([]int, n),
		rowFlag:   append([]bool(nil), sideFlags...),
		adjacency: adjacency,
	}
	for i := 0; i < n; i++ {
		s.nodes[i] = i
	}
	s.rows = filterFlagged(s.nodes, s.rowFlag)
	notRowFlag := make([]bool, n)
	for i, v := range s.rowFlag {
		notRowFlag[i] = !v
	}
	s.cols = filterFlagged(s.nodes, notRowFlag)

	s.buildMatrices()
	return s, nil
}

func (s *State) emptyMatrix() *gf2.Matrix {
	m, _ := gf2.NewMatrix(s.n, s.n)
	return m
}

// buildMatrices extracts a maximal invertible core of adjacency[rows, cols],
// inverts it, and derives adjBInverse, bInverseAdj, and adjBInvAdj from it.
func (s *State) buildMatrices() {
	s.baseInverse = s.emptyMatrix()
	gf2.Copy(s.adjacency, s.baseInverse, s.rows, s.cols)
	s.baseRows, s.baseCols = gf2.RankReduce(s.baseInverse, s.rows, s.cols)
	s.cutRank = len(s.baseRows)

	gf2.Copy(s.adjacency, s.baseInverse, s.baseRows, s.baseCols)
	if err := gf2.Inverse(s.baseInverse, s.baseInverse, s.baseRows, s.baseCols); err != nil {
		panicInvariant("build-matrices: core block reported by RankReduce is singular")
	}

	s.adjBInverse = s.emptyMatrix()
	gf2.AddProduct(s.adjacency, s.baseInverse, s.adjBInverse, s.nodes, s.baseCols, s.baseRows)

	s.bInverseAdj = s.emptyMatrix()
	gf2.AddProduct(s.baseInverse, s.adjacency, s.bInverseAdj, s.baseCols, s.baseRows, s.nodes)

	s.adjBInvAdj = s.emptyMatrix()
	gf2.Copy(s.adjacency, s.adjBInvAdj, s.nodes, s.nodes)
	gf2.AddProduct(s.adjBInverse, s.adjacency, s.adjBInvAdj, s.nodes, s.baseRows, s.nodes)

	s.buffer = s.emptyMatrix()

	s.baseFlag = make([]bool, s.n)
	for _, r := range s.baseRows {
		s.baseFlag[r] = true
	}
	for _, c := range s.baseCols {
		s.baseFlag[c] = true
	}
	s.buildFreeNodes()
}

func (s *State) buildFreeNodes() {
	s.freeRows = filterFlagged(s.rows, negate(s.n, s.baseFlag))
	s.freeCols = filterFlagged(s.cols, negate(s.n, s.baseFlag))
}

func negate(n int, flag []bool) []bool {
	out := make([]bool, n)
	for i, v := range flag {
		out[i] = !v
	}
	return out
}

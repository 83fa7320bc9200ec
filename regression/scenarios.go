// SPDX-License-Identifier: MIT
package regression

import (
	"math/rand"

	"github.com/katalvlaran/cutrank/gf2"
	"github.com/katalvlaran/cutrank/graphgen"
	"github.com/katalvlaran/cutrank/partition"
)

func setEdge(m *gf2.Matrix, a, b int) {
	m.Set(a, b, 1)
	m.Set(b, a, 1)
}

// TrianglePair builds the two-triangles-plus-a-bridge graph on 6 nodes
// (edges 01, 02, 12, 34, 35, 45, 03) with the bipartition (T, T, F, T, F, F)
// and returns the resulting State. Expected cut-rank is 2.
func TrianglePair() (*partition.State, error) {
	m, err := gf2.NewMatrix(6, 6)
	if err != nil {
		return nil, errorf("TrianglePair", err)
	}
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 2}, {3, 4}, {3, 5}, {4, 5}, {0, 3}} {
		setEdge(m, e[0], e[1])
	}
	st, err := partition.New(m, []bool{true, true, false, true, false, false})
	if err != nil {
		return nil, errorf("TrianglePair", err)
	}
	return st, nil
}

// CompleteBipartite builds K_{3,3} on 6 nodes (A[i,j]=1 iff i<3 XOR j<3)
// with the bipartition sideFlags and returns the resulting State.
//
// Separating {0,1,2} from {3,4,5} yields cut-rank 1; any other balanced
// split yields cut-rank >= 2.
func CompleteBipartite(sideFlags []bool) (*partition.State, error) {
	m, err := gf2.NewMatrix(6, 6)
	if err != nil {
		return nil, errorf("CompleteBipartite", err)
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if (i < 3) != (j < 3) {
				m.Set(i, j, 1)
			}
		}
	}
	st, err := partition.New(m, sideFlags)
	if err != nil {
		return nil, errorf("CompleteBipartite", err)
	}
	return st, nil
}

// RankReduceAgreement draws trials random bipartitions of random n-node,
// edgeProbability graphs and counts how many disagree between
// partition.State.CutRank() and an independent gf2.RankReduce computation
// over the same rows/cols. A correct implementation always returns 0.
func RankReduceAgreement(trials, nodes int, edgeProbability float64, seed int64) (mismatches int, err error) {
	if trials <= 0 {
		return 0, errorf("RankReduceAgreement", ErrTooFewTrials)
	}

	rng := rand.New(rand.NewSource(seed))
	for t := 0; t < trials; t++ {
		adjacency, genErr := graphgen.Random(nodes, edgeProbability, graphgen.WithRand(rng))
		if genErr != nil {
			return mismatches, errorf("RankReduceAgreement", genErr)
		}
		st, genErr := graphgen.RandomPartition(adjacency, 0.5, graphgen.WithRand(rng))
		if genErr != nil {
			return mismatches, errorf("RankReduceAgreement", genErr)
		}

		buffer := adjacency.Clone()
		selRows, _ := gf2.RankReduce(buffer, st.Rows(), st.Cols())
		if len(selRows) != st.CutRank() {
			mismatches++
		}
	}
	return mismatches, nil
}

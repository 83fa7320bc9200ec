// SPDX-License-Identifier: MIT
package regression

import (
	"github.com/katalvlaran/cutrank/anneal"
	"github.com/katalvlaran/cutrank/graphgen"
)

// DefaultSchedule returns the 10 linearly spaced temperatures from 1.0 down
// to 0.1 used as the default annealing schedule throughout this package.
func DefaultSchedule() []float64 {
	const samples = 10
	const start, end = 1.0, 0.1
	schedule := make([]float64, samples)
	for i := range schedule {
		schedule[i] = start + (end-start)*float64(i)/float64(samples-1)
	}
	return schedule
}

// GridLowerBound builds a balanced random bipartition of the n x n grid
// graph and anneals it through schedule, returning the final cut-rank.
//
// Grid graphs are known to never admit a cut-rank below n; callers use
// this to assert that bound, it is not enforced here.
func GridLowerBound(n int, schedule []float64, seed int64) (cutRank int, err error) {
	adjacency, err := graphgen.Grid(n, n)
	if err != nil {
		return 0, errorf("GridLowerBound", err)
	}
	st, err := graphgen.RandomPartition(adjacency, 0.5, graphgen.WithSeed(seed))
	if err != nil {
		return 0, errorf("GridLowerBound", err)
	}

	opts := anneal.Options{Temperatures: schedule, Seed: seed}
	if err := anneal.Incremental(st, opts); err != nil {
		return 0, errorf("GridLowerBound", err)
	}
	return st.CutRank(), nil
}

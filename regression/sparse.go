// SPDX-License-Identifier: MIT
package regression

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cutrank/anneal"
	"github.com/katalvlaran/cutrank/graphgen"
)

// maxConcurrentTrials bounds how many trials SparseErdosRenyiAverage runs
// at once; each trial owns its own State and RNG, so raising this only
// costs memory, not correctness.
const maxConcurrentTrials = 8

// SparseErdosRenyiAverage runs trials independent annealing runs on G(n,
// c/n) graphs (n=nodes, c=averageDegree) and returns the average final
// cut-rank reached under DefaultSchedule.
//
// Every trial is its own single-threaded anneal.Incremental sweep over its
// own partition.State; trials are fanned out across a bounded worker group
// (golang.org/x/sync/errgroup) purely to shorten wall-clock time, never to
// parallelise an individual sweep. Per-trial seeds are derived from seed so
// the whole batch stays deterministic regardless of scheduling.
func SparseErdosRenyiAverage(ctx context.Context, trials, nodes int, averageDegree float64, seed int64) (average float64, err error) {
	if trials <= 0 {
		return 0, errorf("SparseErdosRenyiAverage", ErrTooFewTrials)
	}

	seedSource := rand.New(rand.NewSource(seed))
	trialSeeds := make([]int64, trials)
	for i := range trialSeeds {
		trialSeeds[i] = seedSource.Int63()
	}

	ranks := make([]int, trials)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentTrials)

	edgeProbability := averageDegree / float64(nodes)
	for i := 0; i < trials; i++ {
		i, trialSeed := i, trialSeeds[i]
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			rank, err := runSparseTrial(nodes, edgeProbability, trialSeed)
			if err != nil {
				return err
			}
			ranks[i] = rank
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return 0, errorf("SparseErdosRenyiAverage", err)
	}

	total := 0
	for _, r := range ranks {
		total += r
	}
	return float64(total) / float64(trials), nil
}

func runSparseTrial(nodes int, edgeProbability float64, seed int64) (int, error) {
	adjacency, err := graphgen.Random(nodes, edgeProbability, graphgen.WithSeed(seed))
	if err != nil {
		return 0, err
	}
	st, err := graphgen.RandomPartition(adjacency, 0.5, graphgen.WithSeed(seed))
	if err != nil {
		return 0, err
	}
	if err := anneal.Incremental(st, anneal.Options{Temperatures: DefaultSchedule(), Seed: seed}); err != nil {
		return 0, err
	}
	return st.CutRank(), nil
}

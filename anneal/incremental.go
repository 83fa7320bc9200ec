package anneal

import (
	"github.com/katalvlaran/cutrank/partition"
	"github.com/katalvlaran/cutrank/swapeval"
)

// Incremental runs simulated annealing against st, predicting each
// candidate's cut-rank with swapeval.Row instead of recomputing it from
// scratch, and committing at most one real ApplySwap per row per
// temperature step.
//
// Given the same Options.Seed and Options.Temperatures, Incremental accepts
// exactly the same swaps as Direct would starting from the same assignment,
// but each row costs O(n) candidates at O(n) apiece instead of O(n)
// candidates at O(n^3) apiece.
//
// Complexity: O(len(Temperatures) * len(Rows()) * len(Cols()) * n).
func Incremental(st *partition.State, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	// rows/cols mirror the real partition's assignment and are mutated
	// hypothetically within a row's sweep; ApplySwap re-syncs the real
	// partition at the end of that sweep.
	rows := append([]int(nil), st.Rows()...)
	cols := append([]int(nil), st.Cols()...)
	rng := rngFromSeed(opts.Seed)
	rowRanks := make([]int, st.NumNodes())
	cutRank := st.CutRank()

	for _, temp := range opts.Temperatures {
		limits := acceptanceLimits(temp)

		for i, row := range rows {
			swapeval.Row(st, row, rowRanks)

			swapCol := -1
			for j, column := range cols {
				newCutRank := rowRanks[column]
				deltaRank := newCutRank - cutRank
				if deltaRank <= 0 || rng.Float64() < limits[deltaRank-1] {
					swapCol = cols[j]
					rows[i], cols[j] = cols[j], rows[i]
					cutRank = newCutRank
				}
			}

			if swapCol >= 0 {
				if err := st.ApplySwap(row, swapCol); err != nil {
					return err
				}
			}
			if st.CutRank() != cutRank {
				return ErrRankMismatch
			}
		}

		if opts.Logger != nil {
			opts.Logger(temp, cutRank)
		}
	}

	return nil
}

package anneal

import "github.com/katalvlaran/cutrank/gf2"

// Direct runs simulated annealing over a plain row/column assignment,
// recomputing the candidate cut-rank from scratch after every hypothetical
// swap via Gauss-Jordan elimination on adjacency. It never touches a
// partition.State: it is a reference driver used to cross-check Incremental
// against an independent rank computation, not a production code path.
//
// rows and cols are the starting assignment; adjacency must be square and
// symmetric with a zero diagonal (as partition.New requires, though Direct
// does not itself validate this). cutRank must be the GF(2) rank of
// adjacency[rows,cols].
//
// Direct does not mutate rows or cols in place; it returns the final
// assignment and cut-rank reached after sweeping every temperature in
// opts.Temperatures.
//
// Complexity: O(len(Temperatures) * len(rows) * len(cols) * n^3).
func Direct(adjacency *gf2.Matrix, rows, cols []int, cutRank int, opts Options) (finalRows, finalCols []int, finalCutRank int, err error) {
	if err := opts.validate(); err != nil {
		return nil, nil, 0, err
	}

	rows = append([]int(nil), rows...)
	cols = append([]int(nil), cols...)
	rng := rngFromSeed(opts.Seed)
	buffer := adjacency.Clone()

	for _, temp := range opts.Temperatures {
		limits := acceptanceLimits(temp)

		for i := range rows {
			for j := range cols {
				rows[i], cols[j] = cols[j], rows[i]

				gf2.Copy(adjacency, buffer, rows, cols)
				selRows, _ := gf2.RankReduce(buffer, rows, cols)
				newCutRank := len(selRows)
				deltaRank := newCutRank - cutRank

				if deltaRank <= 0 || rng.Float64() < limits[deltaRank-1] {
					cutRank = newCutRank
				} else {
					rows[i], cols[j] = cols[j], rows[i]
				}
			}
		}

		if opts.Logger != nil {
			opts.Logger(temp, cutRank)
		}
	}

	return rows, cols, cutRank, nil
}

package gf2

// RankReduce performs a greedy GF(2) Gauss-Jordan elimination on the block
// addressed by rows×cols, mutating m in place, and returns a maximal subset
// of rows and the corresponding subset of cols whose intersection forms a
// full-rank (indeed, identity-after-elimination) submatrix.
//
// Selection rule: scan (row, col) pairs in the caller-supplied order; the
// first unmarked pair with a 1 entry is selected as a pivot and used to
// eliminate every other 1 in its row and column within the block. Already
// selected rows/columns are skipped. The returned index lists preserve the
// relative order of rows and cols.
//
// Complexity: O(|rows|*|cols|) pivot scans, each pivot's elimination
// O(|rows|*|cols|).
func RankReduce(m *Matrix, rows, cols []int) (selRows, selCols []int) {
	n := m.Rows()
	selected := make([]bool, n)

	for _, row := range rows {
		for _, col := range cols {
			if selected[row] || selected[col] || m.Get(row, col) != 1 {
				continue
			}
			selected[row] = true
			selected[col] = true

			// Eliminate the 1s below/above the pivot in column col.
			for _, r := range rows {
				if !selected[r] && m.Get(r, col) == 1 {
					for _, c := range cols {
						if m.Get(row, c) == 1 {
							m.Flip(r, c)
						}
					}
				}
			}
			// Eliminate the 1s left/right of the pivot in row row.
			for _, c := range cols {
				if !selected[c] && m.Get(row, c) == 1 {
					for _, r := range rows {
						if m.Get(r, col) == 1 {
							m.Flip(r, c)
						}
					}
				}
			}
		}
	}

	for _, row := range rows {
		if selected[row] {
			selRows = append(selRows, row)
		}
	}
	for _, col := range cols {
		if selected[col] {
			selCols = append(selCols, col)
		}
	}
	return selRows, selCols
}

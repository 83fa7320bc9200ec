package gf2

// Inverse computes the GF(2) inverse of the |rows|x|cols| block M_in[rows,
// cols] of src and stores it at M_out[cols, rows] of dst. |rows| must equal
// |cols|. src and dst may be the same *Matrix, which is the common case in
// package partition: the working block and the result block occupy disjoint
// regions of the same n×n matrix because rows and cols are drawn from
// opposite sides of the bipartition.
//
// Elimination proceeds pivot-by-pivot through the paired (rows[n], cols[n])
// diagonal. When the current pivot is zero, a later row with a 1 in the
// pivot column is located and its content is swapped into place (both in
// src and, symmetrically, in the corresponding column of dst); if no such
// row exists the block is singular, which never happens for a genuine core
// submatrix and is reported via ErrSingular.
//
// Complexity: O(size^3) in the worst case, where size = |rows|.
func Inverse(src, dst *Matrix, rows, cols []int) error {
	size := len(rows)
	if size != len(cols) {
		return errorf("Inverse", ErrIndexOutOfBounds)
	}
	if size == 0 {
		return nil
	}

	// Seed dst[cols,rows] with the identity before elimination.
	ZeroFill(dst, cols, rows)
	for n := 0; n < size; n++ {
		dst.Set(cols[n], rows[n], 1)
	}

	for n := 0; n < size; n++ {
		row := rows[n]
		col := cols[n]

		if src.Get(row, col) == 0 {
			nSwap := -1
			for nn := n + 1; nn < size; nn++ {
				if src.Get(rows[nn], col) == 1 {
					nSwap = nn
					break
				}
			}
			if nSwap < 0 {
				return errorf("Inverse", ErrSingular)
			}

			// Swap the physical row content in src.
			rowSwap := rows[nSwap]
			for _, c := range cols {
				a, b := src.Get(row, c), src.Get(rowSwap, c)
				src.Set(row, c, b)
				src.Set(rowSwap, c, a)
			}
			// Mirror the swap in dst's corresponding column pair.
			colSwap := cols[nSwap]
			for _, r := range rows {
				a, b := dst.Get(col, r), dst.Get(colSwap, r)
				dst.Set(col, r, b)
				dst.Set(colSwap, r, a)
			}
		}

		for n2 := 0; n2 < size; n2++ {
			if n2 == n || src.Get(rows[n2], col) != 1 {
				continue
			}
			toRow := rows[n2]
			for _, c := range cols {
				if src.Get(row, c) == 1 {
					src.Flip(toRow, c)
				}
			}
			toCol := cols[n2]
			for _, r := range rows {
				if dst.Get(col, r) == 1 {
					dst.Flip(toCol, r)
				}
			}
		}
	}
	return nil
}

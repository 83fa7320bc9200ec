package gf2

// ZeroFill sets M[r,c] = 0 for every r in R and c in C.
//
// Complexity: O(|R|*|C|).
func ZeroFill(m *Matrix, rows, cols []int) {
	for _, r := range rows {
		for _, c := range cols {
			m.Set(r, c, 0)
		}
	}
}

// Copy sets D[r,c] = S[r,c] for every r in R and c in C.
//
// Complexity: O(|R|*|C|).
func Copy(src, dst *Matrix, rows, cols []int) {
	for _, r := range rows {
		for _, c := range cols {
			dst.Set(r, c, src.Get(r, c))
		}
	}
}

// Add sets D[r,c] ^= S[r,c] for every r in R and c in C (GF(2) addition).
//
// Complexity: O(|R|*|C|).
func Add(src, dst *Matrix, rows, cols []int) {
	for _, r := range rows {
		for _, c := range cols {
			if src.Get(r, c) == 1 {
				dst.Flip(r, c)
			}
		}
	}
}

// AddProduct accumulates D[r,c] ^= XOR-summed-over-K( P[r,k] & Q[k,c] ) for
// every r in R, c in C. Aliasing of D with P or Q is permitted only when the
// caller has ensured the written cells are disjoint from the cells read (the
// partitioned-graph maintenance routines rely on exactly this).
//
// Complexity: O(|R|*|K|*|C|) worst case; short-circuits whenever P[r,k]==0.
func AddProduct(p, q, dst *Matrix, rows, common, cols []int) {
	for _, r := range rows {
		for _, k := range common {
			if p.Get(r, k) == 0 {
				continue
			}
			for _, c := range cols {
				if q.Get(k, c) == 1 {
					dst.Flip(r, c)
				}
			}
		}
	}
}

// IsZero reports whether every cell in the block addressed by R×C is 0.
//
// Complexity: O(|R|*|C|) worst case; short-circuits on the first 1.
func IsZero(m *Matrix, rows, cols []int) bool {
	for _, r := range rows {
		for _, c := range cols {
			if m.Get(r, c) == 1 {
				return false
			}
		}
	}
	return true
}

// IsIdentity reports whether the square block addressed by idx×idx is the
// identity matrix (1 on the diagonal, 0 elsewhere).
//
// Complexity: O(|idx|^2) worst case; short-circuits on the first mismatch.
func IsIdentity(m *Matrix, idx []int) bool {
	for _, r := range idx {
		for _, c := range idx {
			want := uint8(0)
			if r == c {
				want = 1
			}
			if m.Get(r, c) != want {
				return false
			}
		}
	}
	return true
}

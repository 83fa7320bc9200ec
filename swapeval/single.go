package swapeval

import "github.com/katalvlaran/cutrank/partition"

// Single returns the cut-rank the partition would report after swapping row
// (currently a row) with column (currently a column), without applying the
// swap.
//
// Complexity: O(|FreeRows()| + |FreeCols()|).
func Single(st *partition.State, row, column int) int {
	old := st.CutRank()
	d := st.AdjBInverse()
	e := st.BInverseAdj()
	f := st.AdjBInvAdj()
	c := st.BaseInverse()

	anyFreeRow := func(pred func(int) bool) bool {
		for _, k := range st.FreeRows() {
			if pred(k) {
				return true
			}
		}
		return false
	}
	anyFreeCol := func(pred func(int) bool) bool {
		for _, l := range st.FreeCols() {
			if pred(l) {
				return true
			}
		}
		return false
	}
	findFreeRow := func(pred func(int) bool) int {
		for _, k := range st.FreeRows() {
			if pred(k) {
				return k
			}
		}
		return -1
	}
	findFreeCol := func(pred func(int) bool) int {
		for _, l := range st.FreeCols() {
			if pred(l) {
				return l
			}
		}
		return -1
	}

	if !st.IsBase(column) {
		if !st.IsBase(row) {
			// row in X^D, column in Y^D
			s2 := anyFreeRow(func(k2 int) bool { return k2 != row && f.Get(k2, row) == 1 })
			t2 := anyFreeCol(func(l2 int) bool { return l2 != column && f.Get(column, l2) == 1 })
			switch {
			case s2 && t2:
				return old + 2
			case s2, t2:
				return old + 1
			case f.Get(column, row) == 1:
				return old + 1
			default:
				return old
			}
		}

		// row in X^B, column in Y^D
		k1 := findFreeRow(func(k1 int) bool { return d.Get(k1, row) == 1 })
		if k1 >= 0 {
			var s2 bool
			if f.Get(k1, row) == 1 {
				s2 = anyFreeRow(func(k2 int) bool { return k2 != k1 && f.Get(k2, row) != d.Get(k2, row) })
			} else {
				s2 = anyFreeRow(func(k2 int) bool { return k2 != k1 && f.Get(k2, row) == 1 })
			}
			t2 := anyFreeCol(func(l2 int) bool { return l2 != column && f.Get(column, l2) == 1 })
			switch {
			case s2 && t2:
				return old + 2
			case s2, t2:
				return old + 1
			case f.Get(column, row) != (d.Get(column, row) & f.Get(k1, row)):
				return old + 1
			default:
				return old
			}
		}
		s2 := anyFreeRow(func(k2 int) bool { return f.Get(k2, row) == 1 })
		if d.Get(column, row) == 1 {
			if s2 {
				return old + 1
			}
			return old
		}
		t2 := anyFreeCol(func(l2 int) bool { return l2 != column && f.Get(column, l2) == 1 })
		switch {
		case s2 && t2:
			return old + 1
		case s2, t2:
			return old
		case f.Get(column, row) == 1:
			return old
		default:
			return old - 1
		}
	}

	if !st.IsBase(row) {
		// row in X^D, column in Y^B
		l1 := findFreeCol(func(l1 int) bool { return e.Get(column, l1) == 1 })
		if l1 >= 0 {
			var t2 bool
			if f.Get(column, l1) == 1 {
				t2 = anyFreeCol(func(l2 int) bool { return l2 != l1 && f.Get(column, l2) != e.Get(column, l2) })
			} else {
				t2 = anyFreeCol(func(l2 int) bool { return l2 != l1 && f.Get(column, l2) == 1 })
			}
			s2 := anyFreeRow(func(k2 int) bool { return k2 != row && f.Get(k2, row) == 1 })
			switch {
			case t2 && s2:
				return old + 2
			case t2, s2:
				return old + 1
			case f.Get(column, row) != (e.Get(column, row) & f.Get(column, l1)):
				return old + 1
			default:
				return old
			}
		}
		t2 := anyFreeCol(func(l2 int) bool { return f.Get(column, l2) == 1 })
		if e.Get(column, row) == 1 {
			if t2 {
				return old + 1
			}
			return old
		}
		s2 := anyFreeRow(func(k2 int) bool { return k2 != row && f.Get(k2, row) == 1 })
		switch {
		case t2 && s2:
			return old + 1
		case t2, s2:
			return old
		case f.Get(column, row) == 1:
			return old
		default:
			return old - 1
		}
	}

	// row in X^B, column in Y^B
	k1 := findFreeRow(func(k1 int) bool { return d.Get(k1, row) == 1 })
	l1 := findFreeCol(func(l1 int) bool { return e.Get(column, l1) == 1 })

	if c.Get(column, row) == 1 {
		// Full rank matrix with row and column removed is invertible.
		if k1 >= 0 && l1 >= 0 {
			var s2 bool
			if f.Get(k1, row) == 1 {
				s2 = anyFreeRow(func(k2 int) bool { return k2 != k1 && f.Get(k2, row) != d.Get(k2, row) })
			} else {
				s2 = anyFreeRow(func(k2 int) bool { return k2 != k1 && f.Get(k2, row) == 1 })
			}
			var t2 bool
			if f.Get(column, l1) == 1 {
				t2 = anyFreeCol(func(l2 int) bool { return l2 != l1 && f.Get(column, l2) != e.Get(column, l2) })
			} else {
				t2 = anyFreeCol(func(l2 int) bool { return l2 != l1 && f.Get(column, l2) == 1 })
			}
			switch {
			case s2 && t2:
				return old + 2
			case s2, t2:
				return old + 1
			default:
				lhs := (f.Get(k1, row) & f.Get(column, l1)) ^ (f.Get(k1, row) & d.Get(column, row)) ^ (f.Get(column, l1) & e.Get(column, row))
				if lhs != f.Get(column, row) {
					return old + 1
				}
				return old
			}
		}
		q4 := anyFreeRow(func(k int) bool { return f.Get(k, row) != (d.Get(k, row) & e.Get(column, row)) })
		q5 := anyFreeCol(func(l int) bool { return f.Get(column, l) != (d.Get(column, row) & e.Get(column, l)) })
		switch {
		case q4 && q5:
			return old + 1
		case q4, q5:
			return old
		case f.Get(column, row) != (d.Get(column, row) & e.Get(column, row)):
			return old
		default:
			return old - 1
		}
	}

	// Full rank matrix with row and column removed is singular.
	switch {
	case k1 >= 0 && l1 >= 0:
		var s2 bool
		if f.Get(k1, row) == 1 {
			s2 = anyFreeRow(func(k2 int) bool { return k2 != k1 && f.Get(k2, row) != d.Get(k2, row) })
		} else {
			s2 = anyFreeRow(func(k2 int) bool { return k2 != k1 && f.Get(k2, row) == 1 })
		}
		var t2 bool
		if f.Get(column, l1) == 1 {
			t2 = anyFreeCol(func(l2 int) bool { return l2 != l1 && f.Get(column, l2) != e.Get(column, l2) })
		} else {
			t2 = anyFreeCol(func(l2 int) bool { return l2 != l1 && f.Get(column, l2) == 1 })
		}
		switch {
		case s2 && t2:
			return old + 2
		case s2, t2:
			return old + 1
		default:
			lhs := (f.Get(k1, row) & d.Get(column, row)) ^ (f.Get(column, l1) & e.Get(column, row))
			if lhs != f.Get(column, row) {
				return old + 1
			}
			return old
		}

	case k1 >= 0:
		t2 := anyFreeCol(func(l2 int) bool { return f.Get(column, l2) == 1 })
		if t2 {
			if e.Get(column, row) == 1 {
				return old + 1
			}
			var s2 bool
			if f.Get(k1, row) == 1 {
				s2 = anyFreeRow(func(k2 int) bool { return k2 != k1 && f.Get(k2, row) != d.Get(k2, row) })
			} else {
				s2 = anyFreeRow(func(k2 int) bool { return k2 != k1 && f.Get(k2, row) == 1 })
			}
			if s2 {
				return old + 1
			}
			return old
		}
		if e.Get(column, row) == 1 {
			return old
		}
		var s2 bool
		if f.Get(k1, row) == 1 {
			s2 = anyFreeRow(func(k2 int) bool { return k2 != k1 && f.Get(k2, row) != d.Get(k2, row) })
		} else {
			s2 = anyFreeRow(func(k2 int) bool { return k2 != k1 && f.Get(k2, row) == 1 })
		}
		if s2 {
			return old
		}
		if (f.Get(k1, row) & d.Get(column, row)) != f.Get(column, row) {
			return old
		}
		return old - 1

	case l1 >= 0:
		s2 := anyFreeRow(func(k2 int) bool { return f.Get(k2, row) == 1 })
		if s2 {
			if d.Get(column, row) == 1 {
				return old + 1
			}
			var t2 bool
			if f.Get(column, l1) == 1 {
				t2 = anyFreeCol(func(l2 int) bool { return l2 != l1 && f.Get(column, l2) != e.Get(column, l2) })
			} else {
				t2 = anyFreeCol(func(l2 int) bool { return l2 != l1 && f.Get(column, l2) == 1 })
			}
			if t2 {
				return old + 1
			}
			return old
		}
		if d.Get(column, row) == 1 {
			return old
		}
		var t2 bool
		if f.Get(column, l1) == 1 {
			t2 = anyFreeCol(func(l2 int) bool { return l2 != l1 && f.Get(column, l2) != e.Get(column, l2) })
		} else {
			t2 = anyFreeCol(func(l2 int) bool { return l2 != l1 && f.Get(column, l2) == 1 })
		}
		if t2 {
			return old
		}
		if (f.Get(column, l1) & e.Get(column, row)) != f.Get(column, row) {
			return old
		}
		return old - 1

	default:
		if d.Get(column, row) == 1 {
			if e.Get(column, row) == 1 {
				return old
			}
			if anyFreeRow(func(k2 int) bool { return f.Get(k2, row) == 1 }) {
				return old
			}
			return old - 1
		}
		if e.Get(column, row) == 1 {
			if anyFreeCol(func(l2 int) bool { return f.Get(column, l2) == 1 }) {
				return old
			}
			return old - 1
		}
		s2 := anyFreeRow(func(k2 int) bool { return f.Get(k2, row) == 1 })
		t2 := anyFreeCol(func(l2 int) bool { return f.Get(column, l2) == 1 })
		switch {
		case s2 && t2:
			return old
		case s2, t2:
			return old - 1
		case f.Get(column, row) == 1:
			return old - 1
		default:
			return old - 2
		}
	}
}

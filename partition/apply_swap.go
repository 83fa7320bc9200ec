package partition

// findWitness returns the first element of candidates satisfying pred, or
// -1 if none does.
func findWitness(candidates []int, pred func(int) bool) int {
	for _, c := range candidates {
		if pred(c) {
			return c
		}
	}
	return -1
}

// mustFindWitness is findWitness for witnesses the core invariants
// guarantee exist; failure to find one means the bookkeeping has drifted.
func mustFindWitness(candidates []int, pred func(int) bool, tag string) int {
	w := findWitness(candidates, pred)
	if w < 0 {
		panicInvariant(tag)
	}
	return w
}

// ApplySwap moves row from the row side to the column side and column from
// the column side to the row side, then updates the invertible core and
// its derived matrices (and therefore CutRank) to match the new
// bipartition.
//
// row must currently be a row and column must currently be a column;
// ApplySwap reports ErrInvalidSwapEndpoints otherwise.
//
// Complexity: O(n^2).
func (s *State) ApplySwap(row, column int) error {
	if row < 0 || row >= s.n || column < 0 || column >= s.n {
		return errorf("ApplySwap", ErrIndexOutOfRange)
	}
	if !s.rowFlag[row] || s.rowFlag[column] {
		return errorf("ApplySwap", ErrInvalidSwapEndpoints)
	}

	var removeRows, removeCols, addRows, addCols []int
	switch {
	case !s.baseFlag[column] && !s.baseFlag[row]:
		addRows, addCols = s.swapFreeFree(row, column)
	case !s.baseFlag[column] && s.baseFlag[row]:
		removeRows, removeCols, addRows, addCols = s.swapBaseRowFreeCol(row, column)
	case s.baseFlag[column] && !s.baseFlag[row]:
		removeRows, removeCols, addRows, addCols = s.swapFreeRowBaseCol(row, column)
	default:
		removeRows, removeCols, addRows, addCols = s.swapBaseBase(row, column)
	}

	s.rowFlag[row] = false
	s.rowFlag[column] = true
	s.rows[indexOf(s.rows, row)] = column
	s.cols[indexOf(s.cols, column)] = row

	s.reduceBase(removeRows, removeCols)
	s.extendBase(addRows, addCols)
	s.buildFreeNodes()
	return nil
}

// swapFreeFree handles row in X^D (free rows), column in Y^D (free columns):
// neither endpoint touches the core, so nothing is ever removed from it.
func (s *State) swapFreeFree(row, column int) (addRows, addCols []int) {
	f := s.adjBInvAdj
	k2 := findWitness(s.freeRows, func(k2 int) bool { return k2 != row && f.Get(k2, row) == 1 })
	l2 := findWitness(s.freeCols, func(l2 int) bool { return l2 != column && f.Get(column, l2) == 1 })

	switch {
	case k2 >= 0 && l2 >= 0:
		return []int{column, k2}, []int{row, l2}
	case k2 >= 0:
		return []int{k2}, []int{row}
	case l2 >= 0:
		return []int{column}, []int{l2}
	case f.Get(column, row) == 1:
		return []int{column}, []int{row}
	default:
		return nil, nil
	}
}

// swapBaseRowFreeCol handles row in X^B (base rows), column in Y^D (free
// columns): row always leaves the core, alongside the column alpha that
// pairs with it in the core.
func (s *State) swapBaseRowFreeCol(row, column int) (removeRows, removeCols, addRows, addCols []int) {
	c := s.baseInverse
	d := s.adjBInverse
	f := s.adjBInvAdj

	alpha := mustFindWitness(s.baseCols, func(a int) bool { return c.Get(a, row) == 1 }, "swap-base-row-free-col: missing alpha")
	removeRows, removeCols = []int{row}, []int{alpha}

	k1 := findWitness(s.freeRows, func(k1 int) bool { return d.Get(k1, row) == 1 })
	if k1 >= 0 {
		var k2 int
		if f.Get(k1, row) == 1 {
			k2 = findWitness(s.freeRows, func(k2 int) bool { return k2 != k1 && f.Get(k2, row) != d.Get(k2, row) })
		} else {
			k2 = findWitness(s.freeRows, func(k2 int) bool { return k2 != k1 && f.Get(k2, row) == 1 })
		}
		l2 := findWitness(s.freeCols, func(l2 int) bool { return l2 != column && f.Get(column, l2) == 1 })

		switch {
		case k2 >= 0 && l2 >= 0:
			return removeRows, removeCols, []int{column, k1, k2}, []int{row, l2, alpha}
		case k2 >= 0:
			return removeRows, removeCols, []int{k1, k2}, []int{row, alpha}
		case l2 >= 0:
			return removeRows, removeCols, []int{column, k1}, []int{l2, alpha}
		case f.Get(column, row) != (d.Get(column, row) & f.Get(k1, row)):
			return removeRows, removeCols, []int{column, k1}, []int{row, alpha}
		default:
			return removeRows, removeCols, []int{k1}, []int{alpha}
		}
	}

	k2 := findWitness(s.freeRows, func(k2 int) bool { return f.Get(k2, row) == 1 })
	if d.Get(column, row) == 1 {
		if k2 >= 0 {
			return removeRows, removeCols, []int{column, k2}, []int{row, alpha}
		}
		return removeRows, removeCols, []int{column}, []int{alpha}
	}

	l2 := findWitness(s.freeCols, func(l2 int) bool { return l2 != column && f.Get(column, l2) == 1 })
	switch {
	case k2 >= 0 && l2 >= 0:
		return removeRows, removeCols, []int{column, k2}, []int{row, l2}
	case k2 >= 0:
		return removeRows, removeCols, []int{k2}, []int{row}
	case l2 >= 0:
		return removeRows, removeCols, []int{column}, []int{l2}
	case f.Get(column, row) == 1:
		return removeRows, removeCols, []int{column}, []int{row}
	default:
		return removeRows, removeCols, nil, nil
	}
}

// swapFreeRowBaseCol handles row in X^D (free rows), column in Y^B (base
// columns): column always leaves the core, alongside the row beta that
// pairs with it in the core.
func (s *State) swapFreeRowBaseCol(row, column int) (removeRows, removeCols, addRows, addCols []int) {
	c := s.baseInverse
	e := s.bInverseAdj
	f := s.adjBInvAdj

	beta := mustFindWitness(s.baseRows, func(b int) bool { return c.Get(column, b) == 1 }, "swap-free-row-base-col: missing beta")
	removeRows, removeCols = []int{beta}, []int{column}

	l1 := findWitness(s.freeCols, func(l1 int) bool { return e.Get(column, l1) == 1 })
	if l1 >= 0 {
		var l2 int
		if f.Get(column, l1) == 1 {
			l2 = findWitness(s.freeCols, func(l2 int) bool { return l2 != l1 && f.Get(column, l2) != e.Get(column, l2) })
		} else {
			l2 = findWitness(s.freeCols, func(l2 int) bool { return l2 != l1 && f.Get(column, l2) == 1 })
		}
		k2 := findWitness(s.freeRows, func(k2 int) bool { return k2 != row && f.Get(k2, row) == 1 })

		switch {
		case l2 >= 0 && k2 >= 0:
			return removeRows, removeCols, []int{column, k2, beta}, []int{row, l1, l2}
		case l2 >= 0:
			return removeRows, removeCols, []int{column, beta}, []int{l1, l2}
		case k2 >= 0:
			return removeRows, removeCols, []int{k2, beta}, []int{row, l1}
		case f.Get(column, row) != (e.Get(column, row) & f.Get(column, l1)):
			return removeRows, removeCols, []int{column, beta}, []int{row, l1}
		default:
			return removeRows, removeCols, []int{beta}, []int{l1}
		}
	}

	l2 := findWitness(s.freeCols, func(l2 int) bool { return f.Get(column, l2) == 1 })
	if e.Get(column, row) == 1 {
		if l2 >= 0 {
			return removeRows, removeCols, []int{column, beta}, []int{row, l2}
		}
		return removeRows, removeCols, []int{beta}, []int{row}
	}

	k2 := findWitness(s.freeRows, func(k2 int) bool { return k2 != row && f.Get(k2, row) == 1 })
	switch {
	case l2 >= 0 && k2 >= 0:
		return removeRows, removeCols, []int{column, k2}, []int{row, l2}
	case l2 >= 0:
		return removeRows, removeCols, []int{column}, []int{l2}
	case k2 >= 0:
		return removeRows, removeCols, []int{k2}, []int{row}
	case f.Get(column, row) == 1:
		return removeRows, removeCols, []int{column}, []int{row}
	default:
		return removeRows, removeCols, nil, nil
	}
}

// swapBaseBase handles row in X^B (base rows), column in Y^B (base
// columns): the core loses row and column, and may also lose a
// complementary alpha/beta pair if the block left behind is singular.
func (s *State) swapBaseBase(row, column int) (removeRows, removeCols, addRows, addCols []int) {
	c := s.baseInverse
	d := s.adjBInverse
	e := s.bInverseAdj

	k1 := findWitness(s.freeRows, func(k1 int) bool { return d.Get(k1, row) == 1 })
	l1 := findWitness(s.freeCols, func(l1 int) bool { return e.Get(column, l1) == 1 })

	if c.Get(column, row) == 1 {
		removeRows, removeCols = []int{row}, []int{column}
		addRows, addCols = s.swapBaseBaseInvertible(row, column, k1, l1)
		return removeRows, removeCols, addRows, addCols
	}

	alpha := mustFindWitness(s.baseCols, func(a int) bool { return c.Get(a, row) == 1 }, "swap-base-base: missing alpha")
	beta := mustFindWitness(s.baseRows, func(b int) bool { return c.Get(column, b) == 1 }, "swap-base-base: missing beta")
	removeRows, removeCols = []int{row, beta}, []int{column, alpha}
	addRows, addCols = s.swapBaseBaseSingular(row, column, alpha, beta, k1, l1)
	return removeRows, removeCols, addRows, addCols
}

// swapBaseBaseInvertible is the base_inverse[column][row] == 1 branch of
// swapBaseBase: the full-rank block with row and column removed stays
// invertible, so only row and column leave the core.
func (s *State) swapBaseBaseInvertible(row, column, k1, l1 int) (addRows, addCols []int) {
	d := s.adjBInverse
	e := s.bInverseAdj
	f := s.adjBInvAdj

	if k1 >= 0 && l1 >= 0 {
		var k2 int
		if f.Get(k1, row) == 1 {
			k2 = findWitness(s.freeRows, func(k2 int) bool { return k2 != k1 && f.Get(k2, row) != d.Get(k2, row) })
		} else {
			k2 = findWitness(s.freeRows, func(k2 int) bool { return k2 != k1 && f.Get(k2, row) == 1 })
		}
		var l2 int
		if f.Get(column, l1) == 1 {
			l2 = findWitness(s.freeCols, func(l2 int) bool { return l2 != l1 && f.Get(column, l2) != e.Get(column, l2) })
		} else {
			l2 = findWitness(s.freeCols, func(l2 int) bool { return l2 != l1 && f.Get(column, l2) == 1 })
		}

		switch {
		case k2 >= 0 && l2 >= 0:
			return []int{column, k1, k2}, []int{row, l1, l2}
		case k2 >= 0:
			return []int{k1, k2}, []int{row, l1}
		case l2 >= 0:
			return []int{column, k1}, []int{l1, l2}
		default:
			lhs := (f.Get(k1, row) & f.Get(column, l1)) ^ (f.Get(k1, row) & d.Get(column, row)) ^ (f.Get(column, l1) & e.Get(column, row))
			if lhs != f.Get(column, row) {
				return []int{column, k1}, []int{row, l1}
			}
			return []int{k1}, []int{l1}
		}
	}

	k := findWitness(s.freeRows, func(k int) bool { return f.Get(k, row) != (d.Get(k, row) & e.Get(column, row)) })
	l := findWitness(s.freeCols, func(l int) bool { return f.Get(column, l) != (d.Get(column, row) & e.Get(column, l)) })
	switch {
	case k >= 0 && l >= 0:
		return []int{column, k}, []int{row, l}
	case k >= 0:
		return []int{k}, []int{row}
	case l >= 0:
		return []int{column}, []int{l}
	case f.Get(column, row) != (d.Get(column, row) & e.Get(column, row)):
		return []int{column}, []int{row}
	default:
		return nil, nil
	}
}

// swapBaseBaseSingular is the base_inverse[column][row] == 0 branch of
// swapBaseBase: the full-rank block with row and column removed is
// singular, so the complementary alpha/beta pair leaves the core too.
func (s *State) swapBaseBaseSingular(row, column, alpha, beta, k1, l1 int) (addRows, addCols []int) {
	d := s.adjBInverse
	e := s.bInverseAdj
	f := s.adjBInvAdj

	switch {
	case k1 >= 0 && l1 >= 0:
		var k2 int
		if f.Get(k1, row) == 1 {
			k2 = findWitness(s.freeRows, func(k2 int) bool { return k2 != k1 && f.Get(k2, row) != d.Get(k2, row) })
		} else {
			k2 = findWitness(s.freeRows, func(k2 int) bool { return k2 != k1 && f.Get(k2, row) == 1 })
		}
		var l2 int
		if f.Get(column, l1) == 1 {
			l2 = findWitness(s.freeCols, func(l2 int) bool { return l2 != l1 && f.Get(column, l2) != e.Get(column, l2) })
		} else {
			l2 = findWitness(s.freeCols, func(l2 int) bool { return l2 != l1 && f.Get(column, l2) == 1 })
		}
		switch {
		case k2 >= 0 && l2 >= 0:
			return []int{column, k1, k2, beta}, []int{row, l1, l2, alpha}
		case k2 >= 0:
			return []int{k1, k2, beta}, []int{row, l1, alpha}
		case l2 >= 0:
			return []int{column, k1, beta}, []int{l1, l2, alpha}
		default:
			lhs := (f.Get(k1, row) & d.Get(column, row)) ^ (f.Get(column, l1) & e.Get(column, row))
			if lhs != f.Get(column, row) {
				return []int{column, k1, beta}, []int{row, l1, alpha}
			}
			return []int{k1, beta}, []int{l1, alpha}
		}

	case k1 >= 0:
		l2 := findWitness(s.freeCols, func(l2 int) bool { return f.Get(column, l2) == 1 })
		if l2 >= 0 {
			if e.Get(column, row) == 1 {
				return []int{column, k1, beta}, []int{row, l2, alpha}
			}
			var k2 int
			if f.Get(k1, row) == 1 {
				k2 = findWitness(s.freeRows, func(k2 int) bool { return k2 != k1 && f.Get(k2, row) != d.Get(k2, row) })
			} else {
				k2 = findWitness(s.freeRows, func(k2 int) bool { return k2 != k1 && f.Get(k2, row) == 1 })
			}
			if k2 >= 0 {
				return []int{column, k1, k2}, []int{row, l2, alpha}
			}
			return []int{column, k1}, []int{l2, alpha}
		}
		if e.Get(column, row) == 1 {
			return []int{k1, beta}, []int{row, alpha}
		}
		var k2 int
		if f.Get(k1, row) == 1 {
			k2 = findWitness(s.freeRows, func(k2 int) bool { return k2 != k1 && f.Get(k2, row) != d.Get(k2, row) })
		} else {
			k2 = findWitness(s.freeRows, func(k2 int) bool { return k2 != k1 && f.Get(k2, row) == 1 })
		}
		if k2 >= 0 {
			return []int{k1, k2}, []int{row, alpha}
		}
		if (f.Get(k1, row) & d.Get(column, row)) != f.Get(column, row) {
			return []int{column, k1}, []int{row, alpha}
		}
		return []int{k1}, []int{alpha}

	case l1 >= 0:
		k2 := findWitness(s.freeRows, func(k2 int) bool { return f.Get(k2, row) == 1 })
		if k2 >= 0 {
			if d.Get(column, row) == 1 {
				return []int{column, k2, beta}, []int{row, l1, alpha}
			}
			var l2 int
			if f.Get(column, l1) == 1 {
				l2 = findWitness(s.freeCols, func(l2 int) bool { return l2 != l1 && f.Get(column, l2) != e.Get(column, l2) })
			} else {
				l2 = findWitness(s.freeCols, func(l2 int) bool { return l2 != l1 && f.Get(column, l2) == 1 })
			}
			if l2 >= 0 {
				return []int{column, k2, beta}, []int{row, l1, l2}
			}
			return []int{k2, beta}, []int{row, l1}
		}
		if d.Get(column, row) == 1 {
			return []int{column, beta}, []int{l1, alpha}
		}
		var l2 int
		if f.Get(column, l1) == 1 {
			l2 = findWitness(s.freeCols, func(l2 int) bool { return l2 != l1 && f.Get(column, l2) != e.Get(column, l2) })
		} else {
			l2 = findWitness(s.freeCols, func(l2 int) bool { return l2 != l1 && f.Get(column, l2) == 1 })
		}
		if l2 >= 0 {
			return []int{column, beta}, []int{l1, l2}
		}
		if (f.Get(column, l1) & e.Get(column, row)) != f.Get(column, row) {
			return []int{column, beta}, []int{row, l1}
		}
		return []int{beta}, []int{l1}

	default:
		if d.Get(column, row) == 1 {
			if e.Get(column, row) == 1 {
				return []int{column, beta}, []int{row, alpha}
			}
			k2 := findWitness(s.freeRows, func(k2 int) bool { return f.Get(k2, row) == 1 })
			if k2 >= 0 {
				return []int{column, k2}, []int{row, alpha}
			}
			return []int{column}, []int{alpha}
		}
		if e.Get(column, row) == 1 {
			l2 := findWitness(s.freeCols, func(l2 int) bool { return f.Get(column, l2) == 1 })
			if l2 >= 0 {
				return []int{column, beta}, []int{row, l2}
			}
			return []int{beta}, []int{row}
		}
		k2 := findWitness(s.freeRows, func(k2 int) bool { return f.Get(k2, row) == 1 })
		l2 := findWitness(s.freeCols, func(l2 int) bool { return f.Get(column, l2) == 1 })
		switch {
		case k2 >= 0 && l2 >= 0:
			return []int{column, k2}, []int{row, l2}
		case k2 >= 0:
			return []int{k2}, []int{row}
		case l2 >= 0:
			return []int{column}, []int{l2}
		case f.Get(column, row) == 1:
			return []int{column}, []int{row}
		default:
			return nil, nil
		}
	}
}

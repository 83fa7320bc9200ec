package gf2_test

import (
	"testing"

	"github.com/katalvlaran/cutrank/gf2"
	"github.com/stretchr/testify/require"
)

func TestInverseRoundTripsToIdentity(t *testing.T) {
	n := 4
	rows := []int{0, 1}
	cols := []int{2, 3}

	m, err := gf2.NewMatrix(n, n)
	require.NoError(t, err)
	// C = [[1,1],[0,1]], invertible over GF(2).
	m.Set(0, 2, 1)
	m.Set(0, 3, 1)
	m.Set(1, 3, 1)

	// Inverse reduces the source block in place, so keep a copy of C.
	c := m.Clone()
	require.NoError(t, gf2.Inverse(m, m, rows, cols))

	check, err := gf2.NewMatrix(n, n)
	require.NoError(t, err)
	gf2.AddProduct(c, m, check, rows, cols, rows)
	require.True(t, gf2.IsIdentity(check, rows), "C * C^-1 did not reduce to the identity")
}

func TestInverseSingularBlock(t *testing.T) {
	n := 4
	rows := []int{0, 1}
	cols := []int{2, 3}

	m, err := gf2.NewMatrix(n, n) // all-zero block is singular
	require.NoError(t, err)
	err = gf2.Inverse(m, m, rows, cols)
	require.ErrorIs(t, err, gf2.ErrSingular)
}

package gf2_test

import (
	"testing"

	"github.com/katalvlaran/cutrank/gf2"
	"github.com/stretchr/testify/require"
)

func fill(t *testing.T, m *gf2.Matrix, bits [][]uint8) {
	t.Helper()
	for r, row := range bits {
		for c, v := range row {
			m.Set(r, c, v)
		}
	}
}

func TestZeroFillRestrictedToBlock(t *testing.T) {
	m, err := gf2.NewMatrix(3, 3)
	require.NoError(t, err)
	fill(t, m, [][]uint8{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})

	gf2.ZeroFill(m, []int{0, 1}, []int{0, 1})

	want := [][]uint8{{0, 0, 1}, {0, 0, 1}, {1, 1, 1}}
	for r := range want {
		for c := range want[r] {
			require.EqualValuesf(t, want[r][c], m.Get(r, c), "cell [%d,%d]", r, c)
		}
	}
}

func TestCopyAndAdd(t *testing.T) {
	src, err := gf2.NewMatrix(2, 2)
	require.NoError(t, err)
	fill(t, src, [][]uint8{{1, 0}, {0, 1}})
	dst, err := gf2.NewMatrix(2, 2)
	require.NoError(t, err)

	idx := []int{0, 1}
	gf2.Copy(src, dst, idx, idx)
	require.EqualValues(t, 1, dst.Get(0, 0))
	require.EqualValues(t, 1, dst.Get(1, 1))

	gf2.Add(src, dst, idx, idx) // dst ^= src -> should return to zero
	require.True(t, gf2.IsZero(dst, idx, idx), "dst should be zero after XOR-ing itself via Add")
}

func TestAddProductIdentityTimesMatrix(t *testing.T) {
	id, err := gf2.NewMatrix(3, 3)
	require.NoError(t, err)
	id.Set(0, 0, 1)
	id.Set(1, 1, 1)
	id.Set(2, 2, 1)

	q, err := gf2.NewMatrix(3, 3)
	require.NoError(t, err)
	fill(t, q, [][]uint8{{1, 0, 1}, {0, 1, 1}, {1, 1, 0}})

	dst, err := gf2.NewMatrix(3, 3)
	require.NoError(t, err)
	idx := []int{0, 1, 2}
	gf2.AddProduct(id, q, dst, idx, idx, idx)

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			require.EqualValuesf(t, q.Get(r, c), dst.Get(r, c), "I*Q mismatch at [%d,%d]", r, c)
		}
	}
}

func TestIsIdentity(t *testing.T) {
	m, err := gf2.NewMatrix(3, 3)
	require.NoError(t, err)
	m.Set(0, 0, 1)
	m.Set(1, 1, 1)
	m.Set(2, 2, 1)
	require.True(t, gf2.IsIdentity(m, []int{0, 1, 2}))

	m.Set(0, 1, 1)
	require.False(t, gf2.IsIdentity(m, []int{0, 1, 2}), "expected non-identity after off-diagonal 1")
}

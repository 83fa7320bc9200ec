package gf2_test

import (
	"testing"

	"github.com/katalvlaran/cutrank/gf2"
	"github.com/stretchr/testify/require"
)

func TestNewMatrixZero(t *testing.T) {
	m, err := gf2.NewMatrix(5, 5)
	require.NoError(t, err)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			require.Zerof(t, m.Get(r, c), "fresh matrix has non-zero cell [%d,%d]", r, c)
		}
	}
}

func TestNewMatrixInvalidDimensions(t *testing.T) {
	_, err := gf2.NewMatrix(0, 3)
	require.Error(t, err)
	_, err = gf2.NewMatrix(3, -1)
	require.Error(t, err)
}

func TestSetFlipGet(t *testing.T) {
	m, err := gf2.NewMatrix(3, 130) // spans multiple 64-bit words
	require.NoError(t, err)

	m.Set(1, 64, 1)
	require.EqualValues(t, 1, m.Get(1, 64), "Set(1,64,1) not observed by Get")

	m.Flip(1, 64)
	require.EqualValues(t, 0, m.Get(1, 64), "Flip did not clear the bit")

	m.Flip(2, 129)
	require.EqualValues(t, 1, m.Get(2, 129), "Flip did not set the bit")
}

func TestCloneIsIndependent(t *testing.T) {
	m, err := gf2.NewMatrix(4, 4)
	require.NoError(t, err)
	m.Set(0, 0, 1)

	clone := m.Clone()
	clone.Set(0, 0, 0)
	require.EqualValues(t, 1, m.Get(0, 0), "mutating the clone affected the original")
}

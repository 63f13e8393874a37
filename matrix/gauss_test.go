// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/kirchhoff/matrix"
	"github.com/stretchr/testify/require"
)

// TestRankNeutralElements checks Rank(I_n) = n and Rank(0) = 0.
func TestRankNeutralElements(t *testing.T) {
	for n := 0; n <= 5; n++ {
		I, err := matrix.NewIdentity(n)
		require.NoError(t, err)
		require.Equal(t, n, I.Rank(), "identity %d", n)

		Z, err := matrix.NewZeros(n, n+1)
		require.NoError(t, err)
		require.Equal(t, 0, Z.Rank(), "zeros %d", n)
	}
}

// TestRankDeficient covers dependent rows and a skipped leading column.
func TestRankDeficient(t *testing.T) {
	tests := []struct {
		name string
		m    *matrix.Dense
		want int
	}{
		{"dependent rows", NewFilledDense(t, 3, 3,
			1, 2, 3,
			2, 4, 6,
			1, 1, 1), 2},
		{"zero first column", NewFilledDense(t, 3, 3,
			0, 1, 2,
			0, 2, 4,
			0, 0, 1), 2},
		{"wide", NewFilledDense(t, 2, 4,
			1, 0, 2, 0,
			0, 0, 0, 1), 2},
		{"below epsilon", NewFilledDense(t, 2, 2,
			1, 0,
			0, 1e-4), 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.m.Data()
			require.Equal(t, tc.want, tc.m.Rank())
			require.Equal(t, before, tc.m.Data()) // Rank works on a copy

			n, err := matrix.RankOf(hide{tc.m})
			require.NoError(t, err)
			require.Equal(t, tc.want, n)
		})
	}
}

// TestDirectGaussEchelon checks the zero pattern below pivots.
func TestDirectGaussEchelon(t *testing.T) {
	m := NewFilledDense(t, 3, 3,
		2, 1, -1,
		-3, -1, 2,
		-2, 1, 2)
	m.DirectGauss()

	for i := 1; i < 3; i++ {
		for j := 0; j < i; j++ {
			v, _ := m.At(i, j)
			require.Zero(t, v, "(%d,%d)", i, j)
		}
	}
	require.Len(t, m.Pivots(false), 3)
}

// TestMakeEyeSolvesSystem reduces a classic augmented system to [I|x].
func TestMakeEyeSolvesSystem(t *testing.T) {
	aug := NewFilledDense(t, 3, 4,
		2, 1, -1, 8,
		-3, -1, 2, -11,
		-2, 1, 2, -3)
	aug.MakeEye(true)

	want := NewFilledDense(t, 3, 4,
		1, 0, 0, 2,
		0, 1, 0, 3,
		0, 0, 1, -1)
	require.True(t, AllClose(aug, want, tol), "got\n%v", aug)
}

// TestSkipLastKeepsAugmentedColumn checks that an inconsistent row keeps its
// constant and is not reported as a pivot row.
func TestSkipLastKeepsAugmentedColumn(t *testing.T) {
	aug := NewFilledDense(t, 2, 3,
		1, 1, 2,
		2, 2, 5)
	aug.MakeEye(true)

	require.Len(t, aug.Pivots(true), 1)
	require.Len(t, aug.Pivots(false), 2)
	// Partial pivoting picks row 1 first: [2 2 5] leaves 2 - 5/2 below it.
	v, _ := aug.At(1, 2)
	require.InDelta(t, -0.5, v, tol)
}

// TestDiagonalizeWithoutNormalize keeps pivot magnitudes.
func TestDiagonalizeWithoutNormalize(t *testing.T) {
	m := NewFilledDense(t, 2, 2,
		2, 0,
		0, 4)
	m.Diagonalize(false, false)
	require.Equal(t, []float64{2, 0, 0, 4}, m.Data())

	m.Diagonalize(false, true)
	require.Equal(t, []float64{1, 0, 0, 1}, m.Data())
}

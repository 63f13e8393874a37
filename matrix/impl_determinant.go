// SPDX-License-Identifier: MIT

// Package matrix - determinant kernels.
//
// Two interchangeable algorithms share one contract:
//   - AlgorithmFull: Laplace expansion along the first row (O(n!), recursive).
//   - AlgorithmGauss: triangularize with partial pivoting, multiply the
//     diagonal and compensate for row swaps (O(n^3)).
//
// Both require a square input (ErrNotSquare) and snap |det| < Epsilon to 0.
// AlgorithmError (the zero value) is rejected with ErrInvalidAlgorithm.
//
// Notes:
//   - The cofactor recursion depth equals n; intended for hand-sized matrices.

package matrix

import (
	"fmt"
	"math"
)

const opDeterminant = "Determinant"

// Determinant computes det(m) with the selected algorithm. m is not mutated.
//
// Errors:
//   - ErrInvalidAlgorithm for AlgorithmError or unknown tags.
//   - ErrNotSquare when Rows() != Cols().
func (m *Dense) Determinant(algo Algorithm) (float64, error) {
	return DeterminantOf(m, algo)
}

// DeterminantOf is the interface-level entry point behind (*Dense).Determinant.
// Non-Dense inputs are copied into a Dense first.
func DeterminantOf(m Matrix, algo Algorithm) (float64, error) {
	if algo != AlgorithmFull && algo != AlgorithmGauss {
		return 0, matrixErrorf(opDeterminant, fmt.Errorf("%v: %w", algo, ErrInvalidAlgorithm))
	}
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	var det float64
	switch algo {
	case AlgorithmFull:
		det = detFull(d)
	case AlgorithmGauss:
		det = detGauss(d)
	}

	return snapZero(det), nil
}

// snapZero maps |v| < Epsilon to exactly 0.
func snapZero(v float64) float64 {
	if nearZero(v) {
		return 0
	}

	return v
}

// detFull expands along the first row. An empty matrix has determinant 1.
func detFull(m *Dense) float64 {
	n := m.r
	switch n {
	case 0:
		return 1
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	var det, sgn float64 = 0, 1
	minor := &Dense{r: n - 1, c: n - 1, data: make([]float64, (n-1)*(n-1)), sign: 1}
	for col := 0; col < n; col++ {
		if a := m.data[col]; a != 0 {
			fillMinor(m, minor, col)
			det += sgn * a * detFull(minor)
		}
		sgn = -sgn
	}

	return det
}

// fillMinor writes the minor of m without row 0 and column skip into dst.
func fillMinor(m, dst *Dense, skip int) {
	n := m.r
	k := 0
	for i := 1; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == skip {
				continue
			}
			dst.data[k] = m.data[i*n+j]
			k++
		}
	}
}

// detGauss triangularizes a copy of m with the pivot kept on the diagonal and
// multiplies the diagonal. Unlike DirectGauss, a column whose best candidate
// is below Epsilon is still eliminated: only the final product is snapped.
// An exactly zero column yields 0.
func detGauss(m *Dense) float64 {
	tmp := m.copyDense()
	tmp.ResetSign()
	n := tmp.r
	var best, v, factor float64
	var p, i int
	for col := 0; col < n; col++ {
		p, best = col, math.Abs(tmp.at(col, col))
		for i = col + 1; i < n; i++ {
			if v = math.Abs(tmp.at(i, col)); v > best {
				p, best = i, v
			}
		}
		if best == 0 {
			return 0
		}
		if p != col {
			tmp.swapRows(p, col)
		}
		pivot := tmp.at(col, col)
		for i = col + 1; i < n; i++ {
			factor = -tmp.at(i, col) / pivot
			if factor != 0 {
				tmp.addRows(col, i, factor)
			}
			tmp.set(i, col, 0)
		}
	}
	det := tmp.sign
	for i = 0; i < n; i++ {
		det *= tmp.at(i, i)
	}

	return det
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.set(i, j, v)
		}
	}

	return out, nil
}

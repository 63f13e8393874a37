// SPDX-License-Identifier: MIT

// Package matrix - Gaussian elimination kernels on *Dense.
//
// Purpose:
//   - DirectGauss: forward elimination to row-echelon form with partial pivoting.
//   - ReverseGauss: back-substitution zeroing entries above each pivot.
//   - Diagonalize / MakeEye: the full Gauss–Jordan reduction, optionally
//     normalizing pivots to 1 and optionally excluding the last (augmented) column.
//   - Rank and Pivots: read the echelon structure.
//
// Numeric policy:
//   - |v| < Epsilon is zero. A column whose candidates are all below Epsilon is
//     skipped (rank deficiency); this is a normal branch, not an error.
//   - The pivot row advances only when a pivot is found, so the result is a
//     true row-echelon form even for rank-deficient input.
//
// Complexity:
//   - DirectGauss O(r*c*min(r,c)); ReverseGauss O(r^2*c); Rank O(r*c*min(r,c)).

package matrix

import "math"

// Pivot locates a leading entry of a row-echelon matrix.
type Pivot struct {
	Row int // row holding the pivot
	Col int // column of the pivot
}

// nearZero reports |v| < Epsilon.
func nearZero(v float64) bool { return math.Abs(v) < Epsilon }

// DirectGauss reduces m in place to row-echelon form with partial pivoting.
// MAIN DESCRIPTION:
//   - For each column, pick the row at or below the current pivot row with the
//     largest |value|; swap it up (flipping the parity); eliminate below.
//
// Behavior highlights:
//   - Near-zero columns are skipped without error.
//   - Entries below a pivot are written as exact zeros.
//
// Complexity: O(r*c*min(r,c)).
func (m *Dense) DirectGauss() {
	m.directGauss(m.c)
}

// directGauss eliminates over columns [0, limit) and returns the number of pivots found.
func (m *Dense) directGauss(limit int) int {
	row := 0
	var best, v, factor float64
	var p, i int
	for col := 0; col < limit && row < m.r; col++ {
		// Partial pivoting: largest magnitude at or below the current row.
		p, best = row, math.Abs(m.at(row, col))
		for i = row + 1; i < m.r; i++ {
			if v = math.Abs(m.at(i, col)); v > best {
				p, best = i, v
			}
		}
		if best < Epsilon {
			continue // zero column: rank deficiency, move on
		}
		if p != row {
			m.swapRows(p, row)
		}
		pivot := m.at(row, col)
		for i = row + 1; i < m.r; i++ {
			factor = -m.at(i, col) / pivot
			if factor != 0 {
				m.addRows(row, i, factor)
			}
			m.set(i, col, 0) // exact zero below the pivot
		}
		row++
	}

	return row
}

// Pivots scans an echelon-form m and returns the leading entry of every row.
// With skipLast, a row whose only significant entry is in the last column is
// not a pivot row (the last column is an augmented constant column).
// Complexity: O(r*c).
func (m *Dense) Pivots(skipLast bool) []Pivot {
	limit := m.c
	if skipLast && limit > 0 {
		limit--
	}
	out := make([]Pivot, 0, min(m.r, m.c))
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if nearZero(m.at(i, j)) {
				continue
			}
			if j < limit {
				out = append(out, Pivot{Row: i, Col: j})
			}
			break
		}
	}

	return out
}

// ReverseGauss zeroes the entries above each pivot of an echelon-form m.
// When skipLast is true the last column is never used as a pivot column.
// Call after DirectGauss.
// Complexity: O(r^2*c).
func (m *Dense) ReverseGauss(skipLast bool) {
	piv := m.Pivots(skipLast)
	var factor, pivot float64
	for k := len(piv) - 1; k >= 0; k-- {
		pr, pc := piv[k].Row, piv[k].Col
		pivot = m.at(pr, pc)
		for i := pr - 1; i >= 0; i-- {
			factor = -m.at(i, pc) / pivot
			if factor != 0 {
				m.addRows(pr, i, factor)
			}
			m.set(i, pc, 0) // exact zero above the pivot
		}
	}
}

// normalizePivots divides every pivot row by its pivot value (pivot becomes 1).
// The augmented column (if any) is divided as well.
func (m *Dense) normalizePivots(skipLast bool) {
	for _, p := range m.Pivots(skipLast) {
		d := m.at(p.Row, p.Col)
		for j := p.Col; j < m.c; j++ {
			v := m.at(p.Row, j) / d
			if v == 0 {
				v = 0 // drop the sign of -0 left by a negative pivot
			}
			m.set(p.Row, j, v)
		}
	}
}

// Diagonalize runs DirectGauss then ReverseGauss(skipLast); when normalize
// is true each pivot row is divided by its pivot (reduced row-echelon form).
// The two flags are independent.
func (m *Dense) Diagonalize(skipLast, normalize bool) {
	m.DirectGauss()
	m.ReverseGauss(skipLast)
	if normalize {
		m.normalizePivots(skipLast)
	}
}

// MakeEye is Diagonalize(skipLast, true): the identity-producing reduction.
func (m *Dense) MakeEye(skipLast bool) { m.Diagonalize(skipLast, true) }

// Rank returns the number of pivots of m (entries exceeding Epsilon that lead
// a row after full reduction). m is not mutated.
// Complexity: O(r*c*min(r,c)).
func (m *Dense) Rank() int {
	tmp := m.copyDense()
	tmp.MakeEye(false)

	return len(tmp.Pivots(false))
}

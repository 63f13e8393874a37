// SPDX-License-Identifier: MIT

// Package matrix - structural operations on *Dense.
//
// Purpose:
//   - Elementary row/column operations used by Gaussian elimination
//     (SwapRows, SwapCols, AddRows, AddCols).
//   - Shape-changing operations (Resize, AppendRows, AppendCols) that always
//     produce a new backing buffer and never mutate their argument.
//
// Determinism:
//   - Fixed loop orders; swaps flip the running parity exactly once per call.

package matrix

import "fmt"

const (
	opSwapRows   = "SwapRows"
	opSwapCols   = "SwapCols"
	opAddRows    = "AddRows"
	opAddCols    = "AddCols"
	opAppendRows = "AppendRows"
	opAppendCols = "AppendCols"
	opResize     = "Resize"
)

// SwapRows exchanges rows i and j and flips the running parity.
//
// Errors:
//   - ErrOutOfRange when either index is outside [0, Rows()).
//   - ErrSameIndex when i == j.
//
// Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if err := validateIndexPair(opSwapRows, i, j, m.r); err != nil {
		return err
	}
	m.swapRows(i, j)

	return nil
}

// swapRows is the unchecked kernel behind SwapRows.
func (m *Dense) swapRows(i, j int) {
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
	m.sign = -m.sign
}

// SwapCols exchanges columns i and j and flips the running parity.
//
// Errors:
//   - ErrOutOfRange when either index is outside [0, Cols()).
//   - ErrSameIndex when i == j.
//
// Complexity: O(r).
func (m *Dense) SwapCols(i, j int) error {
	if err := validateIndexPair(opSwapCols, i, j, m.c); err != nil {
		return err
	}
	var base int
	for r := 0; r < m.r; r++ {
		base = r * m.c
		m.data[base+i], m.data[base+j] = m.data[base+j], m.data[base+i]
	}
	m.sign = -m.sign

	return nil
}

// AddRows performs row[dst] += factor * row[src].
//
// Errors:
//   - ErrOutOfRange when either index is outside [0, Rows()).
//   - ErrSameIndex when src == dst.
//
// Complexity: O(c).
func (m *Dense) AddRows(src, dst int, factor float64) error {
	if err := validateIndexPair(opAddRows, src, dst, m.r); err != nil {
		return err
	}
	m.addRows(src, dst, factor)

	return nil
}

// addRows is the unchecked kernel behind AddRows.
func (m *Dense) addRows(src, dst int, factor float64) {
	rs := m.data[src*m.c : (src+1)*m.c]
	rd := m.data[dst*m.c : (dst+1)*m.c]
	for k := range rd {
		rd[k] += rs[k] * factor
	}
}

// AddCols performs col[dst] += factor * col[src].
//
// Errors:
//   - ErrOutOfRange when either index is outside [0, Cols()).
//   - ErrSameIndex when src == dst.
func (m *Dense) AddCols(src, dst int, factor float64) error {
	if err := validateIndexPair(opAddCols, src, dst, m.c); err != nil {
		return err
	}
	var base int
	for r := 0; r < m.r; r++ {
		base = r * m.c
		m.data[base+dst] += m.data[base+src] * factor
	}

	return nil
}

// AppendRows concatenates other below m (or above it when inFront is true).
// MAIN DESCRIPTION:
//   - m becomes (m.Rows()+other.Rows())×Cols() with a new backing buffer.
//   - other is never mutated.
//
// Errors:
//   - ErrNilMatrix when other is nil.
//   - ErrShapeMismatch when the column counts differ.
//
// Complexity: O((r1+r2)*c).
func (m *Dense) AppendRows(other *Dense, inFront bool) error {
	if other == nil {
		return matrixErrorf(opAppendRows, ErrNilMatrix)
	}
	if other.c != m.c {
		return matrixErrorf(opAppendRows, fmt.Errorf("cols %d vs %d: %w", m.c, other.c, ErrShapeMismatch))
	}
	first, second := m.data, other.data
	if inFront {
		first, second = second, first
	}
	// Row-major layout makes vertical concatenation a plain buffer concatenation.
	buf := make([]float64, 0, len(first)+len(second))
	buf = append(buf, first...)
	buf = append(buf, second...)
	m.replace(m.r+other.r, m.c, buf)

	return nil
}

// AppendCols concatenates other to the right of m (or to the left when inFront is true).
// MAIN DESCRIPTION:
//   - m becomes Rows()×(m.Cols()+other.Cols()) with a new backing buffer.
//   - other is never mutated.
//
// Errors:
//   - ErrNilMatrix when other is nil.
//   - ErrShapeMismatch when the row counts differ.
//
// Complexity: O(r*(c1+c2)).
func (m *Dense) AppendCols(other *Dense, inFront bool) error {
	if other == nil {
		return matrixErrorf(opAppendCols, ErrNilMatrix)
	}
	if other.r != m.r {
		return matrixErrorf(opAppendCols, fmt.Errorf("rows %d vs %d: %w", m.r, other.r, ErrShapeMismatch))
	}
	left, right := m, other
	if inFront {
		left, right = other, m
	}
	cols := m.c + other.c
	buf := make([]float64, 0, m.r*cols)
	for i := 0; i < m.r; i++ {
		buf = append(buf, left.data[i*left.c:(i+1)*left.c]...)
		buf = append(buf, right.data[i*right.c:(i+1)*right.c]...)
	}
	m.replace(m.r, cols, buf)

	return nil
}

// Resize reshapes m to rows×cols with a new buffer, copying the overlapping
// top-left block and zero-filling the rest.
//
// Errors:
//   - ErrBadShape on negative dimensions.
func (m *Dense) Resize(rows, cols int) error {
	next, err := NewDense(rows, cols)
	if err != nil {
		return matrixErrorf(opResize, err)
	}
	rr, cc := min(rows, m.r), min(cols, m.c)
	for i := 0; i < rr; i++ {
		copy(next.data[i*cols:i*cols+cc], m.data[i*m.c:i*m.c+cc])
	}
	m.replace(rows, cols, next.data)

	return nil
}

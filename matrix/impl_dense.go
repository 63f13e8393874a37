// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a single contiguous row-major buffer addressed as i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Carry the running swap parity used by determinant-via-elimination.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Move: O(1).

package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"  // method tag used in error wrappers
	ctxSet  = "Set" // method tag used in error wrappers
	ctxFrom = "NewFromSlice"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w so errors.Is keeps working.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - sign is the running parity of row/column swaps (+1 or -1).
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []float64 // contiguous row-major storage (len == r*c)
	sign float64   // flipped by every SwapRows/SwapCols
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate zero-filled buffer; reset swap parity to +1.
//
// Behavior highlights:
//   - Zero-sized shapes (0×k, k×0, 0×0) are legal: an empty fundamental
//     system is n×0 and a moved-from matrix is 0×0.
//
// Errors:
//   - ErrBadShape (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	// make() zero-fills the buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), sign: 1}, nil
}

// NewFilled creates an r×c matrix with every cell set to v.
// Complexity: O(r*c).
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if v != 0 {
		for idx := range m.data {
			m.data[idx] = v
		}
	}

	return m, nil
}

// NewSquare creates an n×n zero matrix.
func NewSquare(n int) (*Dense, error) { return NewDense(n, n) }

// NewFromSlice builds an r×c matrix from a row-major value sequence.
// MAIN DESCRIPTION:
//   - Copies vals into a fresh buffer; vals is never retained.
//
// Errors:
//   - ErrBadShape (negative dimension).
//   - ErrShapeMismatch when len(vals) != rows*cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromSlice(rows, cols int, vals []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(vals) != rows*cols {
		return nil, fmt.Errorf("%s: %d values for %dx%d: %w", ctxFrom, len(vals), rows, cols, ErrShapeMismatch)
	}
	copy(m.data, vals)

	return m, nil
}

// FromValues is the generic twin of NewFromSlice: any integer or float
// sequence is converted element-wise to float64.
//
// AI-Hints: convenient for fixtures such as FromValues(2, 2, []int{1, 2, 3, 4}).
func FromValues[T constraints.Integer | constraints.Float](rows, cols int, vals []T) (*Dense, error) {
	buf := make([]float64, len(vals))
	for i, v := range vals {
		buf[i] = float64(v)
	}

	return NewFromSlice(rows, cols, buf)
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Size returns the number of cells (rows*cols).
func (m *Dense) Size() int { return m.r * m.c }

// Sign returns the running swap parity (+1 or -1) accumulated by
// SwapRows/SwapCols since construction or the last ResetSign.
func (m *Dense) Sign() float64 { return m.sign }

// ResetSign sets the swap parity back to +1.
func (m *Dense) ResetSign() { m.sign = 1 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// at is the unchecked reader used by kernels after shape validation.
func (m *Dense) at(row, col int) float64 { return m.data[row*m.c+col] }

// set is the unchecked writer used by kernels after shape validation.
func (m *Dense) set(row, col int, v float64) { m.data[row*m.c+col] = v }

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same parity).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.copyDense() }

// copyDense is Clone without the interface conversion.
func (m *Dense) copyDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, sign: m.sign}
}

// Move transfers the buffer into a new Dense and leaves m in the empty
// 0×0 state. The returned matrix owns the storage exclusively.
// Complexity: O(1).
func (m *Dense) Move() *Dense {
	out := &Dense{r: m.r, c: m.c, data: m.data, sign: m.sign}
	m.Clear()

	return out
}

// Clear drops the buffer and resets m to the empty 0×0 matrix.
func (m *Dense) Clear() {
	m.r, m.c = 0, 0
	m.data = []float64{}
	m.sign = 1
}

// replace installs a freshly built buffer and shape into m.
// Used by every shape-changing operation so the old buffer is never reused.
func (m *Dense) replace(rows, cols int, data []float64) {
	m.r, m.c, m.data = rows, cols, data
}

// Equal reports exact equality: identical shape and every element equal (no tolerance).
// A nil other is never equal.
func (m *Dense) Equal(other *Dense) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != other.data[idx] {
			return false
		}
	}

	return true
}

// Data returns a row-major copy of the values.
func (m *Dense) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Row returns a copy of row i or ErrOutOfRange.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j or ErrOutOfRange.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.Col(%d): %w", j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Trace returns the sum of the main diagonal (min(r,c) entries).
func (m *Dense) Trace() float64 {
	var sum float64
	for i := 0; i < m.r && i < m.c; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum
}

// String renders rows as lines with comma-separated values.
// Intended for debugging; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, row-major order.
func (m *Dense) Apply(f func(i, j int, v float64) float64) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

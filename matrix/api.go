// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Each facade delegates to the canonical implementation; no logic is duplicated.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is an intention-revealing alias of NewDense.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.set(i, i, 1.0)
	}

	return I, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Rows())
}

// ---------- Arithmetic facades ----------

// Sum is an alias for Add(a, b).
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub(a, b).
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul(a, b).
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is a short alias for Transpose(m).
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// ScaleBy is an alias for Scale(m, alpha).
func ScaleBy(m Matrix, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// MatVecMul is an alias for MatVec(m, x).
func MatVecMul(m Matrix, x []float64) ([]float64, error) { return MatVec(m, x) }

// ---------- Reductions ----------

// RankOf returns the rank of any Matrix. Non-Dense inputs are copied first.
func RankOf(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf("Rank", err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf("Rank", err)
	}

	return d.Rank(), nil
}

// SPDX-License-Identifier: MIT

// Package matrix is a small dense linear-algebra engine for hand-sized
// systems of equations.
//
// The package provides:
//
//   - Dense: a row-major float64 matrix with safe accessors that return
//     ErrOutOfRange instead of panicking, and a running row-swap parity.
//   - Arithmetic (Add, Sub, Mul, Scale, Transpose, MatVec) and their in-place
//     *Dense counterparts.
//   - Elementary row and column operations (SwapRows, AddRows, AppendCols, ...).
//   - Gaussian elimination: DirectGauss, ReverseGauss, Diagonalize, MakeEye,
//     Rank and Pivots.
//   - Determinant by cofactor expansion (AlgorithmFull) or by elimination
//     (AlgorithmGauss).
//   - A whitespace text form (WriteText / ReadText) and a diagnostic Dump.
//
// Numeric policy: a single tolerance, Epsilon, decides what counts as zero.
// Every error returned by the package wraps one of the sentinels in
// errors.go and is matched with errors.Is.
//
// The zero value of Dense is an empty 0×0 matrix; use NewDense and friends
// to obtain a usable one.
package matrix

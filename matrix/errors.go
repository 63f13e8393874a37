// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag via %w) and tests MUST check them via errors.Is.
// No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with matrixErrorf(op, err) or
// denseErrorf(method, row, col, err); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> algorithm selection.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative rows or cols).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) and row/column operations return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSameIndex is returned by SwapRows/SwapCols/AddRows/AddCols when both
	// indices name the same row (or column); such a call is always a caller bug.
	ErrSameIndex = errors.New("matrix: identical source and destination index")

	// ErrShapeMismatch indicates incompatible shapes between operands,
	// e.g. AddInPlace on different shapes, MulInPlace where a.Cols != b.Rows,
	// AppendRows with a different column count, or a flat value slice whose
	// length is not rows*cols.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrInvalidAlgorithm is returned by Determinant when the algorithm tag is
	// AlgorithmError (the zero value) or unknown.
	ErrInvalidAlgorithm = errors.New("matrix: invalid determinant algorithm")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSyntax is returned by ReadText when the text form is malformed.
	ErrSyntax = errors.New("matrix: malformed text form")
)

// ErrDimensionMismatch historically named the same condition as ErrShapeMismatch.
// Keep it as an alias so errors.Is(err, ErrDimensionMismatch) remains true.
var ErrDimensionMismatch = ErrShapeMismatch // Deprecated: use ErrShapeMismatch.

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense engine and its callers.
// This file intentionally contains ONLY domain-facing types (the Matrix
// interface, the determinant algorithm tag) and the numeric policy constant.
// Errors live in errors.go per the package conventions.
package matrix

import "fmt"

// Epsilon is the single numeric tolerance of the package.
// Values with |v| < Epsilon are treated as zero for pivot selection,
// zero-column detection, determinant snapping and rank counting.
// The tolerance is coarse on purpose: inputs are hand-sized circuits.
const Epsilon = 1e-3

// Algorithm selects the determinant kernel used by Determinant.
type Algorithm int

const (
	// AlgorithmError is the zero value and means "unspecified".
	// Determinant rejects it with ErrInvalidAlgorithm.
	AlgorithmError Algorithm = iota

	// AlgorithmFull is recursive Laplace (cofactor) expansion along the first row.
	// Complexity O(n!); reference and testing path only.
	AlgorithmFull

	// AlgorithmGauss triangularizes with partial pivoting and multiplies the diagonal.
	// Complexity O(n^3).
	AlgorithmGauss
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmFull:
		return "full"
	case AlgorithmGauss:
		return "gauss"
	case AlgorithmError:
		return "error"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "full"/"gauss" to the matching tag.
// Any other name yields AlgorithmError together with ErrInvalidAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "full":
		return AlgorithmFull, nil
	case "gauss":
		return AlgorithmGauss, nil
	default:
		return AlgorithmError, fmt.Errorf("ParseAlgorithm(%q): %w", name, ErrInvalidAlgorithm)
	}
}

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernel tests.
//   - Keep all data finite and well-formed.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/kirchhoff/matrix"
)

// tol is the comparison tolerance for values produced by elimination.
const tol = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their interface fallback paths.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense builds an r×c *Dense from a row-major flat slice.
func NewFilledDense(t testing.TB, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromSlice(r, c, vals)
	if err != nil {
		t.Fatalf("NewFromSlice(%d,%d): %v", r, c, err)
	}

	return m
}

// RandomFill fills m with deterministic U(-1,1) values by seed.
func RandomFill(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64()*2 - 1 })
}

// AllClose reports whether a and b have equal shape and every pair of
// elements differs by at most eps.
func AllClose(a, b *matrix.Dense, eps float64) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	ad, bd := a.Data(), b.Data()
	for i := range ad {
		if math.Abs(ad[i]-bd[i]) > eps {
			return false
		}
	}

	return true
}

// knownDet builds an n×n matrix with a known determinant: the product of an
// upper-triangular U (diagonal diag) and a unit lower-triangular L with random
// off-diagonal entries, so det(U*L) = prod(diag).
func knownDet(t testing.TB, diag []float64, seed int64) (*matrix.Dense, float64) {
	t.Helper()
	n := len(diag)
	rng := rand.New(rand.NewSource(seed))
	U := MustDense(t, n, n)
	L := MustDense(t, n, n)
	det := 1.0
	for i := 0; i < n; i++ {
		det *= diag[i]
		_ = U.Set(i, i, diag[i])
		_ = L.Set(i, i, 1)
		for j := i + 1; j < n; j++ {
			_ = U.Set(i, j, float64(rng.Intn(7)-3))
			_ = L.Set(j, i, float64(rng.Intn(7)-3))
		}
	}
	m, err := matrix.Mul(U, L)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}

	return m, det
}

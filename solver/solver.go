// SPDX-License-Identifier: MIT

// Package solver computes the general solution of a linear system A·x = b
// by Gauss-Jordan elimination.
//
// The general solution is x = p + F·t: p is a particular solution (free
// variables set to 0) and the columns of F span the null space of A, one
// column per free variable. A system whose coefficient rank differs from
// the rank of the augmented matrix [A|b] has no solution (ErrInconsistent).
//
// Procedure:
//   - Stage 1: aug = [A|b]; A.MakeEye(false); aug.MakeEye(true).
//   - Stage 2: rank(A) vs rank(aug) → ErrInconsistent on mismatch.
//   - Stage 3: p[pivotCol] = aug[pivotRow][n]; for each free column f,
//     F[f][k] = 1 and F[pivotCol][k] = -aug[pivotRow][f].
//
// Complexity: O(r*n*min(r,n)) for an r×n system.
package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kirchhoff/matrix"
)

// ErrInconsistent is returned when rank(A) != rank([A|b]).
var ErrInconsistent = errors.New("solver: inconsistent system")

const (
	opNew     = "solver.New"
	opExecute = "Solver.Execute"
	opGeneral = "Solution.General"
)

// solverErrorf wraps err with an operation tag, preserving it for errors.Is.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Solver holds one system. It works on private copies; the caller's
// matrices are never mutated.
type Solver struct {
	lhs  *matrix.Dense
	rhs  *matrix.Dense
	rank int
}

// Solution is the general solution x = Particular + Fundamental·t.
//   - Particular is n×1.
//   - Fundamental is n×k with k = n - rank (k may be 0).
type Solution struct {
	Fundamental *matrix.Dense
	Particular  *matrix.Dense
}

// New validates the shapes and copies the system.
//
// Errors:
//   - matrix.ErrNilMatrix when either operand is nil.
//   - matrix.ErrShapeMismatch unless rhs is a lhs.Rows()×1 column.
func New(lhs, rhs *matrix.Dense) (*Solver, error) {
	if lhs == nil || rhs == nil {
		return nil, solverErrorf(opNew, matrix.ErrNilMatrix)
	}
	if rhs.Cols() != 1 || rhs.Rows() != lhs.Rows() {
		return nil, solverErrorf(opNew, fmt.Errorf("lhs %dx%d, rhs %dx%d: %w",
			lhs.Rows(), lhs.Cols(), rhs.Rows(), rhs.Cols(), matrix.ErrShapeMismatch))
	}

	return &Solver{
		lhs:  lhs.Clone().(*matrix.Dense),
		rhs:  rhs.Clone().(*matrix.Dense),
		rank: -1,
	}, nil
}

// Solve is New followed by Execute.
func Solve(lhs, rhs *matrix.Dense) (Solution, error) {
	s, err := New(lhs, rhs)
	if err != nil {
		return Solution{}, err
	}

	return s.Execute()
}

// Rank returns rank(A) after a successful Execute, -1 before.
func (s *Solver) Rank() int { return s.rank }

// Execute reduces the system and extracts the general solution.
// It may be called repeatedly; each call starts from the original system.
//
// Errors:
//   - ErrInconsistent when rank(A) != rank([A|b]).
func (s *Solver) Execute() (Solution, error) {
	n := s.lhs.Cols()

	coef := s.lhs.Clone().(*matrix.Dense)
	aug := s.lhs.Clone().(*matrix.Dense)
	if err := aug.AppendCols(s.rhs, false); err != nil {
		return Solution{}, solverErrorf(opExecute, err)
	}
	coef.MakeEye(false)
	aug.MakeEye(true)

	mainRank, augRank := len(coef.Pivots(false)), len(aug.Pivots(false))
	if mainRank != augRank {
		return Solution{}, solverErrorf(opExecute,
			fmt.Errorf("rank(A) = %d, rank([A|b]) = %d: %w", mainRank, augRank, ErrInconsistent))
	}
	pivots := aug.Pivots(true)

	particular, err := matrix.NewDense(n, 1)
	if err != nil {
		return Solution{}, solverErrorf(opExecute, err)
	}
	isPivot := make([]bool, n)
	var v float64
	for _, p := range pivots {
		isPivot[p.Col] = true
		if v, err = aug.At(p.Row, n); err != nil {
			return Solution{}, solverErrorf(opExecute, err)
		}
		if err = particular.Set(p.Col, 0, v); err != nil {
			return Solution{}, solverErrorf(opExecute, err)
		}
	}

	free := make([]int, 0, n-len(pivots))
	for col := 0; col < n; col++ {
		if !isPivot[col] {
			free = append(free, col)
		}
	}
	fundamental, err := matrix.NewDense(n, len(free))
	if err != nil {
		return Solution{}, solverErrorf(opExecute, err)
	}
	for k, f := range free {
		if err = fundamental.Set(f, k, 1); err != nil {
			return Solution{}, solverErrorf(opExecute, err)
		}
		for _, p := range pivots {
			if v, err = aug.At(p.Row, f); err != nil {
				return Solution{}, solverErrorf(opExecute, err)
			}
			if v == 0 {
				continue
			}
			if err = fundamental.Set(p.Col, k, -v); err != nil {
				return Solution{}, solverErrorf(opExecute, err)
			}
		}
	}

	s.rank = mainRank

	return Solution{Fundamental: fundamental, Particular: particular}, nil
}

// Unique reports whether the system has exactly one solution.
func (sol Solution) Unique() bool { return sol.Fundamental.Cols() == 0 }

// General evaluates Particular + Fundamental·t.
//
// Errors:
//   - matrix.ErrShapeMismatch when len(t) != Fundamental.Cols().
func (sol Solution) General(t []float64) ([]float64, error) {
	x := sol.Particular.Data()
	ft, err := matrix.MatVec(sol.Fundamental, t)
	if err != nil {
		return nil, solverErrorf(opGeneral, err)
	}
	for i := range x {
		x[i] += ft[i]
	}

	return x, nil
}

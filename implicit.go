// Copyright ©2026 The finitedifference Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package finitedifference

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// BackwardEuler advances the solution implicitly, solving at every time
// level the tridiagonal system
//
//	(1+2α) u(i,j+1) - α u(i-1,j+1) - α u(i+1,j+1) = u(i,j)
//
// with the injected LinearSolver. The scheme is unconditionally stable. A
// solver failure aborts the solve and propagates unchanged.
type BackwardEuler struct {
	p      Problem
	solver LinearSolver
}

// NewBackwardEuler returns an implicit first-order solver for p delegating
// its linear systems to solver.
func NewBackwardEuler(p Problem, solver LinearSolver) *BackwardEuler {
	return &BackwardEuler{p: p, solver: solver}
}

// Solve implements the Solver interface.
func (s *BackwardEuler) Solve(n, m int) (*mat.Dense, error) {
	if s.solver == nil {
		panic("finitedifference: nil linear solver")
	}
	var (
		a Tridiagonal
		b []float64
	)
	return solve(s.p, n, m, func(u *mat.Dense, ms mesh, j int) error {
		if ms.n < 2 {
			return nil // no interior nodes
		}
		if b == nil {
			a = constTridiagonal(ms.n-1, -ms.alpha, 1+2*ms.alpha)
			b = make([]float64, ms.n-1)
		}
		for i := 1; i < ms.n; i++ {
			b[i-1] = u.At(j, i)
		}
		// Move the known new-time boundary values to the right-hand side.
		b[0] += ms.alpha * u.At(j+1, 0)
		b[ms.n-2] += ms.alpha * u.At(j+1, ms.n)

		x, err := s.solver.SolveTridiag(a, b)
		if err != nil {
			return fmt.Errorf("finitedifference: time level %d: %w", j+1, err)
		}
		for i := 1; i < ms.n; i++ {
			u.Set(j+1, i, x[i-1])
		}
		return nil
	})
}

// CrankNicolson advances the solution with the trapezoidal average of the
// explicit and implicit stencils, solving at every time level
//
//	(1+α) u(i,j+1) - α/2 u(i-1,j+1) - α/2 u(i+1,j+1) =
//	        α/2 u(i-1,j) + (1-α) u(i,j) + α/2 u(i+1,j)
//
// with the injected LinearSolver. The scheme is unconditionally stable and
// second order in time. A solver failure aborts the solve and propagates
// unchanged.
type CrankNicolson struct {
	p      Problem
	solver LinearSolver
}

// NewCrankNicolson returns a Crank-Nicolson solver for p delegating its
// linear systems to solver.
func NewCrankNicolson(p Problem, solver LinearSolver) *CrankNicolson {
	return &CrankNicolson{p: p, solver: solver}
}

// Solve implements the Solver interface.
func (s *CrankNicolson) Solve(n, m int) (*mat.Dense, error) {
	if s.solver == nil {
		panic("finitedifference: nil linear solver")
	}
	var (
		a Tridiagonal
		b []float64
	)
	return solve(s.p, n, m, func(u *mat.Dense, ms mesh, j int) error {
		if ms.n < 2 {
			return nil // no interior nodes
		}
		if b == nil {
			a = constTridiagonal(ms.n-1, -ms.alpha/2, 1+ms.alpha)
			b = make([]float64, ms.n-1)
		}
		crankNicolsonRHS(b, u, ms, j)

		x, err := s.solver.SolveTridiag(a, b)
		if err != nil {
			return fmt.Errorf("finitedifference: time level %d: %w", j+1, err)
		}
		for i := 1; i < ms.n; i++ {
			u.Set(j+1, i, x[i-1])
		}
		return nil
	})
}

// crankNicolsonRHS fills b with the Crank-Nicolson right-hand side for the
// step from row j to row j+1: the weighted old-row stencil plus the new-time
// boundary corrections. The boundary columns of row j+1 must already be set.
func crankNicolsonRHS(b []float64, u *mat.Dense, ms mesh, j int) {
	a := ms.alpha
	for i := 1; i < ms.n; i++ {
		b[i-1] = a/2*u.At(j, i-1) + (1-a)*u.At(j, i) + a/2*u.At(j, i+1)
	}
	b[0] += a / 2 * u.At(j+1, 0)
	b[ms.n-2] += a / 2 * u.At(j+1, ms.n)
}

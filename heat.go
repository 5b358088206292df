// Copyright ©2026 The finitedifference Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package finitedifference

import "gonum.org/v1/gonum/mat"

// A BoundaryFunc gives the solution value on a space boundary as a function
// of time. It must be pure: deterministic and free of side effects.
type BoundaryFunc func(tau float64) float64

// An InitialFunc gives the solution value at τ = 0 as a function of space.
// It must be pure.
type InitialFunc func(x float64) float64

// An ExerciseFunc gives the early-exercise intrinsic value at a point of the
// space-time domain. The computed solution of an early-exercise scheme never
// falls below it. It must be pure.
type ExerciseFunc func(x, tau float64) float64

// Problem describes the domain of the heat equation together with its
// boundary and initial data. All three functions must be non-nil; Solve
// panics otherwise.
type Problem struct {
	// XLeft and XRight are the space bounds, XLeft < XRight.
	XLeft, XRight float64
	// TauFinal is the time horizon, TauFinal > 0.
	TauFinal float64

	// Left and Right give u(XLeft, τ) and u(XRight, τ).
	Left, Right BoundaryFunc
	// Initial gives u(x, 0).
	Initial InitialFunc
}

func (p Problem) validate() error {
	if p.XLeft >= p.XRight || p.TauFinal <= 0 {
		return ErrInvalidDomain
	}
	return nil
}

// Solver is a finite-difference scheme for the heat equation.
//
// Solve computes u on the grid with n space and m time intervals, that is
// with Δx = (XRight-XLeft)/n and Δτ = TauFinal/m, and returns the full
// (m+1)×(n+1) space-time solution: rows are time levels j ∈ [0,m], columns
// are space levels i ∈ [0,n]. Row 0 is the initial data, columns 0 and n
// are the boundary data.
//
// Solve either succeeds with a complete grid or returns an error; it never
// returns a partially filled grid. Each call allocates its own grid and
// working storage, so a Solver value may be reused across calls.
type Solver interface {
	Solve(n, m int) (*mat.Dense, error)
}

// A stepFunc fills the interior columns 1..n-1 of time level j+1 of u. The
// boundary columns of row j+1 and all of rows 0..j are already set.
type stepFunc func(u *mat.Dense, ms mesh, j int) error

// solve runs the shared row loop: validate, lay down the initial row, then
// advance one time level at a time, setting the boundary columns of each new
// row before handing its interior to step.
func solve(p Problem, n, m int, step stepFunc) (*mat.Dense, error) {
	if p.Left == nil || p.Right == nil || p.Initial == nil {
		panic("finitedifference: nil problem function")
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	ms, err := newMesh(p, n, m)
	if err != nil {
		return nil, err
	}

	u := mat.NewDense(m+1, n+1, nil)
	for i := 0; i <= n; i++ {
		u.Set(0, i, p.Initial(ms.x(i)))
	}
	for j := 0; j < m; j++ {
		tau := ms.tau(j + 1)
		u.Set(j+1, 0, p.Left(tau))
		u.Set(j+1, n, p.Right(tau))
		if err := step(u, ms, j); err != nil {
			return nil, err
		}
	}
	return u, nil
}

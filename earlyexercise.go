// Copyright ©2026 The finitedifference Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package finitedifference

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// EarlyExForwardEuler is ForwardEuler with an early-exercise constraint: the
// unconstrained explicit update of every interior node is clamped to the
// exercise value at the same point,
//
//	u(i,j+1) = max(α u(i-1,j) + (1-2α) u(i,j) + α u(i+1,j), g(x_i, τ_{j+1})).
//
// The per-entry clamp is sufficient here because the explicit update couples
// no unknowns. The α ≤ 1/2 stability precondition of ForwardEuler applies.
type EarlyExForwardEuler struct {
	p        Problem
	exercise ExerciseFunc
}

// NewEarlyExForwardEuler returns an explicit solver for p constrained from
// below by exercise.
func NewEarlyExForwardEuler(p Problem, exercise ExerciseFunc) *EarlyExForwardEuler {
	return &EarlyExForwardEuler{p: p, exercise: exercise}
}

// Solve implements the Solver interface.
func (s *EarlyExForwardEuler) Solve(n, m int) (*mat.Dense, error) {
	if s.exercise == nil {
		panic("finitedifference: nil exercise function")
	}
	return solve(s.p, n, m, func(u *mat.Dense, ms mesh, j int) error {
		a := ms.alpha
		tau := ms.tau(j + 1)
		for i := 1; i < ms.n; i++ {
			v := a*u.At(j, i-1) + (1-2*a)*u.At(j, i) + a*u.At(j, i+1)
			u.Set(j+1, i, math.Max(v, s.exercise(ms.x(i), tau)))
		}
		return nil
	})
}

// EarlyExCrankNicolson is CrankNicolson with an early-exercise constraint.
// The constraint couples with the implicit unknowns, so each time level is a
// linear complementarity problem
//
//	A u ≥ b,  u ≥ g,  (A u - b)·(u - g) = 0,
//
// solved by projected SOR: Gauss-Seidel sweeps in increasing index order
// with over-relaxation, each entry clamped to its exercise value immediately
// after its update. The initial guess of every row is the exercise-value
// vector at that row, not the previous row's solution. Boundary nodes stay
// outside the relaxation and come from the boundary functions.
//
// A sweep loop that does not meet settings.Tolerance within
// settings.MaxIterations reports ErrIterationLimit.
type EarlyExCrankNicolson struct {
	p        Problem
	exercise ExerciseFunc
	settings SORSettings
}

// NewEarlyExCrankNicolson returns a Crank-Nicolson solver for p constrained
// from below by exercise. Zero-valued settings fields mean the defaults of
// SORSettings: ω = 1.2, tolerance 1e-6.
func NewEarlyExCrankNicolson(p Problem, exercise ExerciseFunc, settings SORSettings) *EarlyExCrankNicolson {
	return &EarlyExCrankNicolson{p: p, exercise: exercise, settings: settings}
}

// Solve implements the Solver interface.
func (s *EarlyExCrankNicolson) Solve(n, m int) (*mat.Dense, error) {
	if s.exercise == nil {
		panic("finitedifference: nil exercise function")
	}
	var (
		a  Tridiagonal
		b  []float64
		lb []float64
	)
	return solve(s.p, n, m, func(u *mat.Dense, ms mesh, j int) error {
		if ms.n < 2 {
			return nil // no interior nodes
		}
		if b == nil {
			a = constTridiagonal(ms.n-1, -ms.alpha/2, 1+ms.alpha)
			b = make([]float64, ms.n-1)
			lb = make([]float64, ms.n-1)
		}
		crankNicolsonRHS(b, u, ms, j)
		tau := ms.tau(j + 1)
		for i := 1; i < ms.n; i++ {
			lb[i-1] = s.exercise(ms.x(i), tau)
		}

		x, err := relax(a, b, lb, lb, s.settings)
		if err != nil {
			return fmt.Errorf("finitedifference: time level %d: %w", j+1, err)
		}
		for i := 1; i < ms.n; i++ {
			u.Set(j+1, i, x[i-1])
		}
		return nil
	})
}

// Copyright ©2026 The finitedifference Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package finitedifference

import (
	"gonum.org/v1/gonum/floats"
)

// CG solves symmetric positive definite tridiagonal systems by the conjugate
// gradient method. The matrices assembled by BackwardEuler and CrankNicolson
// are of this kind for every α > 0.
//
// Zero-valued fields mean defaults: Tolerance 1e-10, MaxIterations ten times
// the system dimension. Iterating past MaxIterations without meeting the
// tolerance reports ErrIterationLimit.
type CG struct {
	// Tolerance bounds the relative residual |r_i|/|b| of the accepted
	// solution.
	Tolerance float64
	// MaxIterations is the limit on the number of iterations.
	MaxIterations int
}

// SolveTridiag implements the LinearSolver interface.
func (cg CG) SolveTridiag(a Tridiagonal, b []float64) ([]float64, error) {
	dim := len(a.diag)
	if len(b) != dim {
		panic("dimension mismatch")
	}

	tol := cg.Tolerance
	if tol == 0 {
		tol = 1e-10
	}
	maxIter := cg.MaxIterations
	if maxIter == 0 {
		maxIter = 10 * dim
	}

	x := make([]float64, dim)
	bnorm := floats.Norm(b, 2)
	if bnorm == 0 {
		return x, nil
	}

	r := make([]float64, dim)
	copy(r, b) // r = b - A*0
	p := make([]float64, dim)
	copy(p, r)
	Ap := make([]float64, dim)
	rho := floats.Dot(r, r)

	for iter := 0; iter < maxIter; iter++ {
		a.MulVec(Ap, p)
		alpha := rho / floats.Dot(p, Ap) // α = ρ_i / (p_i · Ap_i)
		floats.AddScaled(x, alpha, p)    // x_i = x_{i-1} + α p_i
		floats.AddScaled(r, -alpha, Ap)  // r_i = r_{i-1} - α Ap_i
		if floats.Norm(r, 2) < tol*bnorm {
			return x, nil
		}
		rhoNext := floats.Dot(r, r)
		beta := rhoNext / rho             // β = ρ_i / ρ_{i-1}
		floats.AddScaledTo(p, r, beta, p) // p_i = r_i + β p_{i-1}
		rho = rhoNext
	}
	return nil, ErrIterationLimit
}

// Copyright ©2026 The finitedifference Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package finitedifference

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SORSettings holds the parameters of a successive over-relaxation sweep.
// Zero values mean defaults.
type SORSettings struct {
	// Omega is the over-relaxation factor. It must lie in (0, 2) for the
	// sweep to converge; values outside are not rejected and show up as a
	// hit of the iteration limit. If it is zero, 1.2 will be used.
	Omega float64

	// Tolerance is the bound on the maximum absolute change of any entry
	// over one full sweep below which the iteration stops. If it is zero,
	// 1e-6 will be used.
	Tolerance float64

	// MaxIterations is the limit on the number of sweeps. If it is zero,
	// it will be set to ten times the dimension of the system.
	MaxIterations int
}

func (s SORSettings) withDefaults(dim int) SORSettings {
	if s.Omega == 0 {
		s.Omega = 1.2
	}
	if s.Tolerance == 0 {
		s.Tolerance = 1e-6
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = 10 * dim
	}
	return s
}

// SOR solves tridiagonal systems by successive over-relaxation with
// Gauss-Seidel sweeps. It converges for the diagonally dominant matrices the
// implicit schemes assemble and reports ErrIterationLimit otherwise.
type SOR struct {
	SORSettings
}

// SolveTridiag implements the LinearSolver interface.
func (s SOR) SolveTridiag(a Tridiagonal, b []float64) ([]float64, error) {
	return relax(a, b, nil, nil, s.SORSettings)
}

// relax runs relaxation sweeps on A x = b starting from x0 (the zero vector
// when nil) until the largest entry change over a sweep drops below the
// tolerance. Entries are visited in increasing index order, each update
// seeing the already-updated lower neighbor.
//
// A non-nil lb makes the sweep projected: every entry is clamped to
// x[i] ≥ lb[i] immediately after its relaxation update, so later entries of
// the same sweep observe already-projected values. This solves the linear
// complementarity problem posed by an early-exercise constraint.
func relax(a Tridiagonal, b, lb, x0 []float64, s SORSettings) ([]float64, error) {
	dim := len(a.diag)
	if len(b) != dim {
		panic("dimension mismatch")
	}
	s = s.withDefaults(dim)

	x := make([]float64, dim)
	if x0 != nil {
		copy(x, x0)
	}
	prev := make([]float64, dim)
	for iter := 0; iter < s.MaxIterations; iter++ {
		copy(prev, x)
		for i := 0; i < dim; i++ {
			gs := b[i]
			if i > 0 {
				gs -= a.sub[i-1] * x[i-1]
			}
			if i < dim-1 {
				gs -= a.super[i] * x[i+1]
			}
			gs /= a.diag[i]
			xi := x[i] + s.Omega*(gs-x[i]) // x_i += ω (x^GS_i - x_i)
			if lb != nil {
				xi = math.Max(xi, lb[i])
			}
			x[i] = xi
		}
		if floats.Distance(x, prev, math.Inf(1)) < s.Tolerance {
			return x, nil
		}
	}
	return nil, ErrIterationLimit
}

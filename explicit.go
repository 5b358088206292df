// Copyright ©2026 The finitedifference Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package finitedifference

import "gonum.org/v1/gonum/mat"

// ForwardEuler advances the solution explicitly,
//
//	u(i,j+1) = α u(i-1,j) + (1-2α) u(i,j) + α u(i+1,j),
//
// with no linear solve. The scheme is numerically stable only for
// α = Δτ/Δx² ≤ 1/2; that is the caller's responsibility and is not checked.
type ForwardEuler struct {
	p Problem
}

// NewForwardEuler returns an explicit solver for p.
func NewForwardEuler(p Problem) *ForwardEuler {
	return &ForwardEuler{p: p}
}

// Solve implements the Solver interface.
func (s *ForwardEuler) Solve(n, m int) (*mat.Dense, error) {
	return solve(s.p, n, m, func(u *mat.Dense, ms mesh, j int) error {
		a := ms.alpha
		for i := 1; i < ms.n; i++ {
			u.Set(j+1, i, a*u.At(j, i-1)+(1-2*a)*u.At(j, i)+a*u.At(j, i+1))
		}
		return nil
	})
}

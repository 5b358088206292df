// Copyright ©2026 The finitedifference Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package finitedifference provides finite-difference solvers for the
// one-dimensional heat equation
//
//	∂u/∂τ = ∂²u/∂x²
//
// on the rectangle [xleft,xright]×[0,taufinal]. This is the diffusion form
// the Black-Scholes equation transforms into, so the package doubles as the
// core of an option-pricing engine: plain schemes correspond to European
// payoffs, the early-exercise variants to American payoffs.
//
// Five schemes are available, all implementing Solver:
//
//	ForwardEuler          explicit, stable only for α = Δτ/Δx² ≤ 1/2
//	BackwardEuler         implicit, unconditionally stable
//	CrankNicolson         implicit, second order in time
//	EarlyExForwardEuler   explicit with a pointwise exercise constraint
//	EarlyExCrankNicolson  implicit with the constraint solved by
//	                      projected SOR at every time level
//
// The implicit schemes assemble a tridiagonal system per time level and
// delegate it to an injected LinearSolver; Thomas, CG and SOR are provided
// and interchangeable.
//
// Solve returns the full space-time grid as a *mat.Dense with rows indexed
// by time level j ∈ [0,m] and columns by space level i ∈ [0,n], so that
// u(x_i, τ_j) is At(j, i).
package finitedifference

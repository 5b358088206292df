// Copyright ©2026 The finitedifference Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package finitedifference

import "math"

// Tridiagonal is a square matrix whose only non-zero entries lie on the main
// diagonal and the two diagonals adjacent to it.
type Tridiagonal struct {
	sub, diag, super []float64
}

// NewTridiagonal builds a dim×dim tridiagonal matrix, dim = len(diag), from
// its three diagonals. sub and super must have length len(diag)-1. The
// slices are retained, not copied.
func NewTridiagonal(sub, diag, super []float64) Tridiagonal {
	if len(diag) == 0 {
		panic("finitedifference: empty diagonal")
	}
	if len(sub) != len(diag)-1 || len(super) != len(diag)-1 {
		panic("finitedifference: off-diagonal length mismatch")
	}
	return Tridiagonal{sub: sub, diag: diag, super: super}
}

// constTridiagonal builds the dim×dim matrix with a constant main diagonal
// and constant off-diagonals, the shape every implicit scheme assembles.
func constTridiagonal(dim int, off, diag float64) Tridiagonal {
	d := make([]float64, dim)
	for i := range d {
		d[i] = diag
	}
	o := make([]float64, dim-1)
	for i := range o {
		o[i] = off
	}
	return Tridiagonal{sub: o, diag: d, super: o}
}

// Dims returns the dimensions of the matrix.
func (t Tridiagonal) Dims() (r, c int) {
	return len(t.diag), len(t.diag)
}

// At returns the element at row i, column j.
func (t Tridiagonal) At(i, j int) float64 {
	n := len(t.diag)
	if i < 0 || n <= i {
		panic("row index out of range")
	}
	if j < 0 || n <= j {
		panic("column index out of range")
	}
	switch j - i {
	case -1:
		return t.sub[j]
	case 0:
		return t.diag[i]
	case 1:
		return t.super[i]
	}
	return 0
}

// MulVec computes A*x and stores the result into dst.
func (t Tridiagonal) MulVec(dst, x []float64) {
	n := len(t.diag)
	if len(x) != n || len(dst) != n {
		panic("dimension mismatch")
	}
	for i := 0; i < n; i++ {
		v := t.diag[i] * x[i]
		if i > 0 {
			v += t.sub[i-1] * x[i-1]
		}
		if i < n-1 {
			v += t.super[i] * x[i+1]
		}
		dst[i] = v
	}
}

// LinearSolver solves tridiagonal linear systems
//
//	A x = b.
//
// Implementations are stateless and interchangeable; implicit schemes take
// one at construction and delegate every time level to it. An implementation
// reports a singular or non-convergent system through its error result and
// must not return a partial solution.
type LinearSolver interface {
	SolveTridiag(a Tridiagonal, b []float64) ([]float64, error)
}

// Thomas is direct tridiagonal elimination. It solves the system in O(dim)
// time and reports ErrSingular when elimination hits a vanishing pivot.
type Thomas struct{}

// SolveTridiag implements the LinearSolver interface.
func (Thomas) SolveTridiag(a Tridiagonal, b []float64) ([]float64, error) {
	dim := len(a.diag)
	if len(b) != dim {
		panic("dimension mismatch")
	}

	c := make([]float64, dim) // modified superdiagonal
	x := make([]float64, dim)

	piv := a.diag[0]
	if math.Abs(piv) <= dlamchE {
		return nil, ErrSingular
	}
	if dim > 1 {
		c[0] = a.super[0] / piv
	}
	x[0] = b[0] / piv
	for i := 1; i < dim; i++ {
		piv = a.diag[i] - a.sub[i-1]*c[i-1]
		if math.Abs(piv) <= dlamchE {
			return nil, ErrSingular
		}
		if i < dim-1 {
			c[i] = a.super[i] / piv
		}
		x[i] = (b[i] - a.sub[i-1]*x[i-1]) / piv
	}
	for i := dim - 2; i >= 0; i-- {
		x[i] -= c[i] * x[i+1]
	}
	return x, nil
}

const dlamchE = 1.0 / (1 << 53)

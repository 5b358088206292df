// Copyright ©2026 The finitedifference Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package finitedifference

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
)

// randomDominant generates a dim×dim diagonally dominant tridiagonal matrix.
func randomDominant(dim int, rnd *rand.Rand) Tridiagonal {
	sub := make([]float64, dim-1)
	super := make([]float64, dim-1)
	diag := make([]float64, dim)
	for i := range sub {
		sub[i] = -rnd.Float64()
		super[i] = -rnd.Float64()
	}
	for i := range diag {
		diag[i] = 2 + rnd.Float64()
	}
	return NewTridiagonal(sub, diag, super)
}

func TestTridiagonalMulVec(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, dim := range []int{1, 2, 3, 5, 10, 50} {
		a := randomDominant(dim, rnd)
		x := make([]float64, dim)
		for i := range x {
			x[i] = rnd.NormFloat64()
		}

		// Dense reference product computed with blas64.
		dense := make([]float64, dim*dim)
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				dense[i*dim+j] = a.At(i, j)
			}
		}
		want := make([]float64, dim)
		bi := blas64.Implementation()
		bi.Dgemv(blas.NoTrans, dim, dim, 1, dense, dim, x, 1, 0, want, 1)

		got := make([]float64, dim)
		a.MulVec(got, x)
		if dist := floats.Distance(got, want, math.Inf(1)); dist > 1e-14 {
			t.Errorf("Case dim=%v: MulVec mismatch, |want-got|=%v", dim, dist)
		}
	}
}

func TestThomas(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, dim := range []int{1, 2, 3, 5, 10, 50, 200} {
		a := randomDominant(dim, rnd)
		want := make([]float64, dim)
		for i := range want {
			want[i] = 1
		}
		b := make([]float64, dim)
		a.MulVec(b, want)

		got, err := Thomas{}.SolveTridiag(a, b)
		if err != nil {
			t.Errorf("Case dim=%v: unexpected error %v", dim, err)
			continue
		}
		if dist := floats.Distance(got, want, math.Inf(1)); dist > 1e-12 {
			t.Errorf("Case dim=%v: unexpected solution, |want-got|=%v", dim, dist)
		}
	}
}

func TestThomasSingular(t *testing.T) {
	// Elimination of the second row produces a zero pivot.
	a := NewTridiagonal([]float64{1}, []float64{1, 1}, []float64{1})
	_, err := Thomas{}.SolveTridiag(a, []float64{1, 1})
	if !errors.Is(err, ErrSingular) {
		t.Errorf("unexpected error %v, want ErrSingular", err)
	}

	a = NewTridiagonal([]float64{0}, []float64{0, 1}, []float64{0})
	_, err = Thomas{}.SolveTridiag(a, []float64{1, 1})
	if !errors.Is(err, ErrSingular) {
		t.Errorf("unexpected error %v, want ErrSingular", err)
	}
}

func TestTridiagonalAt(t *testing.T) {
	a := NewTridiagonal([]float64{4, 5}, []float64{1, 2, 3}, []float64{6, 7})
	want := [][]float64{
		{1, 6, 0},
		{4, 2, 7},
		{0, 5, 3},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if a.At(i, j) != want[i][j] {
				t.Errorf("At(%v,%v) = %v, want %v", i, j, a.At(i, j), want[i][j])
			}
		}
	}
}

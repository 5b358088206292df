// Copyright ©2026 The finitedifference Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package finitedifference

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// randomSPD generates a dim×dim symmetric positive definite tridiagonal
// matrix.
func randomSPD(dim int, rnd *rand.Rand) Tridiagonal {
	off := make([]float64, dim-1)
	for i := range off {
		off[i] = -rnd.Float64()
	}
	diag := make([]float64, dim)
	for i := range diag {
		diag[i] = 2 + rnd.Float64()
	}
	return NewTridiagonal(off, diag, off)
}

func TestCG(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, dim := range []int{1, 2, 3, 4, 5, 10, 20, 50, 100, 200, 500} {
		a := randomSPD(dim, rnd)
		// Compute the right-hand side b so that the vector [1,1,...,1]
		// is the solution.
		want := make([]float64, dim)
		for i := range want {
			want[i] = 1
		}
		b := make([]float64, dim)
		a.MulVec(b, want)

		r, err := CG{Tolerance: 1e-14}.SolveTridiag(a, b)
		if err != nil {
			t.Errorf("Case dim=%v: unexpected error %v", dim, err)
			continue
		}
		if dist := floats.Distance(r, want, math.Inf(1)); dist > 1e-10 {
			t.Errorf("Case dim=%v: unexpected solution, |want-got|=%v", dim, dist)
		}
	}
}

func TestCGZeroRHS(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	a := randomSPD(10, rnd)
	x, err := CG{}.SolveTridiag(a, make([]float64, 10))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	for i, v := range x {
		if v != 0 {
			t.Errorf("x[%v] = %v, want 0", i, v)
		}
	}
}

func TestCGIterationLimit(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	a := randomSPD(100, rnd)
	b := make([]float64, 100)
	for i := range b {
		b[i] = rnd.NormFloat64()
	}
	_, err := CG{Tolerance: 1e-14, MaxIterations: 2}.SolveTridiag(a, b)
	if !errors.Is(err, ErrIterationLimit) {
		t.Errorf("unexpected error %v, want ErrIterationLimit", err)
	}
}

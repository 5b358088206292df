// Copyright ©2026 The finitedifference Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package finitedifference

// mesh holds the step sizes derived from a Problem and a partition of the
// domain into n space and m time intervals.
type mesh struct {
	n, m int

	xleft float64
	dx    float64
	dtau  float64

	// alpha is the Courant ratio Δτ/Δx² that the scheme coefficients
	// depend on.
	alpha float64
}

func newMesh(p Problem, n, m int) (mesh, error) {
	if n < 1 || m < 1 {
		return mesh{}, ErrInvalidGrid
	}
	dx := (p.XRight - p.XLeft) / float64(n)
	dtau := p.TauFinal / float64(m)
	return mesh{
		n:     n,
		m:     m,
		xleft: p.XLeft,
		dx:    dx,
		dtau:  dtau,
		alpha: dtau / (dx * dx),
	}, nil
}

// x returns the space coordinate of column i.
func (ms mesh) x(i int) float64 { return ms.xleft + float64(i)*ms.dx }

// tau returns the time coordinate of row j.
func (ms mesh) tau(j int) float64 { return float64(j) * ms.dtau }

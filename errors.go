// Copyright ©2026 The finitedifference Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package finitedifference

import "errors"

var (
	// ErrInvalidDomain indicates a degenerate space-time domain.
	ErrInvalidDomain = errors.New("finitedifference: invalid domain: need xleft < xright and taufinal > 0")
	// ErrInvalidGrid indicates a non-positive partition count.
	ErrInvalidGrid = errors.New("finitedifference: invalid partition: need n >= 1 and m >= 1")
	// ErrSingular indicates that direct elimination hit a zero pivot.
	ErrSingular = errors.New("finitedifference: singular tridiagonal system")
	// ErrIterationLimit indicates that an iterative solve did not converge
	// within its iteration budget.
	ErrIterationLimit = errors.New("finitedifference: iteration limit reached")
)

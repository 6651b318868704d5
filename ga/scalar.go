// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

import "math/big"

// Scalar is the coefficient type carried by a Blade. The corpus offers no
// third-party arbitrary-precision rational library (see DESIGN.md), so
// Scalar is math/big's Rat: algebraic operations (sign derivation, metric
// weighting, simplification) stay exact, and the numeric routines that
// cannot be exact (Length, Exp, QR, Eigen) convert to float64 at their
// boundary and convert back.
type Scalar = *big.Rat

// ratZero, ratOne and ratMinusOne are shared read-only scalars. Callers
// must never mutate a value returned by these; Scalar arithmetic always
// allocates a fresh *big.Rat for its result.
var (
	ratZero     = big.NewRat(0, 1)
	ratOne      = big.NewRat(1, 1)
	ratMinusOne = big.NewRat(-1, 1)
)

func ratInt(n int64) Scalar { return big.NewRat(n, 1) }

func ratFromFloat(f float64) Scalar {
	r := new(big.Rat)
	r.SetFloat64(f)
	return r
}

func ratAdd(a, b Scalar) Scalar { return new(big.Rat).Add(a, b) }
func ratSub(a, b Scalar) Scalar { return new(big.Rat).Sub(a, b) }
func ratMul(a, b Scalar) Scalar { return new(big.Rat).Mul(a, b) }
func ratNeg(a Scalar) Scalar    { return new(big.Rat).Neg(a) }
func ratInv(a Scalar) Scalar    { return new(big.Rat).Inv(a) }

func ratIsZero(a Scalar) bool { return a.Sign() == 0 }
func ratEqual(a, b Scalar) bool {
	return a.Cmp(b) == 0
}

func ratFloat64(a Scalar) float64 {
	f, _ := a.Float64()
	return f
}

// rsqrt computes an approximation of sqrt(x) for x >= 0 using Newton's
// (Heron's) iteration r = (r + y/r)/2, truncated at n steps; it is not a
// continued-fraction iteration.
// It operates in float64: square roots are one of the two places (with
// Exp) the algebra intentionally drops exactness for numerical
// convenience.
func rsqrt(x float64, n int) float64 {
	if x == 0 {
		return 0
	}
	// Rescale close to 1 for fast convergence, then undo the rescale.
	// rsqrt(x) = rsqrt(x/s^2) * s for any s > 0.
	s := 1.0
	for x/(s*s) > 4 {
		s *= 2
	}
	for x/(s*s) < 0.25 {
		s /= 2
	}
	y := x / (s * s)
	r := 1.0
	for i := 0; i < n; i++ {
		r = 0.5 * (r + y/r)
	}
	return r * s
}

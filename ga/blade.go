// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

import "math/bits"

// Blade is a single basis element of an algebra scaled by a coefficient.
// Bitmap encodes the participating basis vectors: bit i is set iff e_i
// is a factor. The scalar basis has Bitmap == 0.
//
// Grade is always popcount(Bitmap); NewBlade maintains the invariant so
// callers never construct an inconsistent Blade directly.
type Blade struct {
	Bitmap uint64
	Grade  int
	Scale  Scalar
	Basis  string
}

// Kind reports that a Blade is a KindBlade operand for dispatch purposes.
func (Blade) Kind() Kind { return KindBlade }

// NewBlade builds a Blade from a bitmap, scale and display label,
// deriving Grade from the bitmap so the invariant grade==popcount(bitmap)
// can never be violated by a caller.
func NewBlade(bitmap uint64, scale Scalar, basis string) Blade {
	return Blade{
		Bitmap: bitmap,
		Grade:  bits.OnesCount64(bitmap),
		Scale:  scale,
		Basis:  basis,
	}
}

// scalarBlade returns the scalar basis blade 1 with the given scale; it
// never carries a symbolic label beyond the algebra's default.
func scalarBlade(g *Algebra, scale Scalar) Blade {
	return NewBlade(0, scale, g.basisByBitmap[0].Basis)
}

// IsZero reports whether b's coefficient is exactly zero.
func (b Blade) IsZero() bool { return ratIsZero(b.Scale) }

// scaled returns a copy of b with its scale multiplied by s.
func (b Blade) scaled(s Scalar) Blade {
	b.Scale = ratMul(b.Scale, s)
	return b
}

// negated returns a copy of b with its scale negated.
func (b Blade) negated() Blade {
	b.Scale = ratNeg(b.Scale)
	return b
}

// flips counts the bit-swaps needed to move the factors of b past those
// of a into canonical ascending order:
//
//	flips(a,b) = Σ_{s≥1} popcount( (a>>s) & b )
//
// the sum only needs to run while a>>s is still nonzero.
func flips(a, b uint64) int {
	n := 0
	for s := uint(1); a>>s != 0; s++ {
		n += bits.OnesCount64((a >> s) & b)
	}
	return n
}

// canonicalSign returns the geometric-product sign of two basis blades
// before any metric weighting is applied: +1 if flips(a,b) is even, -1
// if odd.
func canonicalSign(a, b uint64) Scalar {
	if flips(a, b)&1 == 0 {
		return ratOne
	}
	return ratMinusOne
}

// sharedMetricFactor multiplies in one metric entry per bit shared
// between a and b, for the dependent blade×blade case where a and b
// share at least one basis vector. It returns ratZero as soon as any
// shared bit has a zero metric entry,
// short-circuiting the rest of the product to the annihilated value.
func sharedMetricFactor(metric []Scalar, a, b uint64) Scalar {
	shared := a & b
	s := ratOne
	for shared != 0 {
		i := bits.TrailingZeros64(shared)
		m := metric[i]
		if ratIsZero(m) {
			return ratZero
		}
		s = ratMul(s, m)
		shared &^= 1 << uint(i)
	}
	return s
}

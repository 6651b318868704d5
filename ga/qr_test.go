// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

import "testing"

// diagonalComponent returns mv's signed component at basis index i, the
// diagonal entry QR Factorize leaves in column i of R.
func diagonalComponent(mv MultiVector, i int) float64 {
	return ratFloat64(componentAt(mv, i))
}

func belowDiagonalIsZero(mv MultiVector, d int) bool {
	for _, b := range mv {
		idx := 0
		for bm := b.Bitmap; bm > 1; bm >>= 1 {
			idx++
		}
		if idx > d && !ratIsZero(b.Scale) {
			return false
		}
	}
	return true
}

// TestHouseholderOrthonormalIdentity checks the invariant for n
// orthonormal vectors in G(n,0,0): Q's columns have unit length
// and R stays triangular with diagonal magnitude equal to the input's
// (Householder's standard sign-of-the-diagonal freedom, documented in
// DESIGN.md, means Q and R need not literally equal the identity and
// the input — only their lengths and triangular shape are invariant).
func TestHouseholderOrthonormalIdentity(t *testing.T) {
	g := euclidean(3)
	vectors := IdentityVectors(g)

	var h Householder
	h.Factorize(g, vectors)

	for i, q := range h.QTo() {
		l := ratFloat64(Length(g, q))
		if !approxEqual(l, 1, 1e-6) {
			t.Errorf("Length(Q[%d]) = %v, want 1", i, l)
		}
	}

	for i, r := range h.RTo() {
		if !belowDiagonalIsZero(r, i) {
			t.Errorf("R[%d] = %s retains a nonzero component below the diagonal", i, Format(r))
		}
		if d := diagonalComponent(r, i); !approxEqual(absFloat(d), 1, 1e-6) {
			t.Errorf("|R[%d][%d]| = %v, want 1", i, i, absFloat(d))
		}
	}
}

func TestHouseholderTriangularizesGenericColumns(t *testing.T) {
	g := euclidean(3)
	e1, _ := g.Blade("e1")
	e2, _ := g.Blade("e2")
	e3, _ := g.Blade("e3")

	v0 := MultiVector{NewBlade(e1.Bitmap, ratInt(3), e1.Basis), NewBlade(e2.Bitmap, ratInt(4), e2.Basis)}
	v1 := MultiVector{NewBlade(e2.Bitmap, ratOne, e2.Basis), NewBlade(e3.Bitmap, ratOne, e3.Basis)}
	v2 := MultiVector{NewBlade(e3.Bitmap, ratOne, e3.Basis)}

	var h Householder
	h.Factorize(g, []MultiVector{v0, v1, v2})

	r := h.RTo()
	if !belowDiagonalIsZero(r[0], 0) {
		t.Errorf("R[0] = %s retains a nonzero component below the diagonal", Format(r[0]))
	}
	if d := diagonalComponent(r[0], 0); !approxEqual(absFloat(d), 5, 1e-6) {
		t.Errorf("|R[0][0]| = %v, want 5 (length of v0)", absFloat(d))
	}
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

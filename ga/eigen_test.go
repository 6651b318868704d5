// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

import "testing"

// TestEigenOrthonormalIdentity checks that orthonormal input yields
// unit-magnitude eigenvalues and unit-length eigenvectors (see the
// Householder sign note in DESIGN.md for why the signs themselves
// aren't asserted).
func TestEigenOrthonormalIdentity(t *testing.T) {
	g := euclidean(3)
	vectors := IdentityVectors(g)

	var e Eigen
	e.Factorize(g, vectors)

	for i, v := range e.Values() {
		if got := absFloat(ratFloat64(v)); !approxEqual(got, 1, 1e-6) {
			t.Errorf("|eigenvalue[%d]| = %v, want 1", i, got)
		}
	}

	for i, vec := range e.Vectors() {
		l := ratFloat64(Length(g, vec))
		if !approxEqual(l, 1, 1e-6) {
			t.Errorf("Length(eigenvector[%d]) = %v, want 1", i, l)
		}
	}
}

func TestEigenDiagonalScaledBasis(t *testing.T) {
	g := euclidean(3)
	e1, _ := g.Blade("e1")
	e2, _ := g.Blade("e2")

	v0 := MultiVector{NewBlade(e1.Bitmap, ratInt(2), e1.Basis)}
	v1 := MultiVector{NewBlade(e2.Bitmap, ratInt(5), e2.Basis)}

	var e Eigen
	e.Factorize(g, []MultiVector{v0, v1})

	values := e.Values()
	if got := absFloat(ratFloat64(values[0])); !approxEqual(got, 2, 1e-6) {
		t.Errorf("|eigenvalue[0]| = %v, want 2", got)
	}
	if got := absFloat(ratFloat64(values[1])); !approxEqual(got, 5, 1e-6) {
		t.Errorf("|eigenvalue[1]| = %v, want 5", got)
	}
}

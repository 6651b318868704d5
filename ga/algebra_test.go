// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

import "testing"

// euclidean builds a G(p,0,0) algebra with base-1 labels (e1, e2, ...).
func euclidean(p int) *Algebra {
	return New(WithSignature(p, 0, 0), WithBase(1))
}

func TestNewEuclideanMetric(t *testing.T) {
	g := euclidean(3)
	if g.Dimension() != 3 {
		t.Fatalf("Dimension() = %d, want 3", g.Dimension())
	}
	for i := 0; i < 3; i++ {
		if !ratEqual(g.MetricAt(i), ratOne) {
			t.Errorf("metric[%d] = %v, want 1", i, g.MetricAt(i))
		}
	}
	if len(g.Blades()) != 8 {
		t.Errorf("len(Blades()) = %d, want 8", len(g.Blades()))
	}
}

func TestNewPQROrder(t *testing.T) {
	g := New(WithSignature(1, 1, 1), WithPQROrder([3]rune{'r', 'q', 'p'}))
	want := []Scalar{ratZero, ratMinusOne, ratOne}
	for i, w := range want {
		if !ratEqual(g.MetricAt(i), w) {
			t.Errorf("metric[%d] = %v, want %v", i, g.MetricAt(i), w)
		}
	}
}

func TestNewExplicitMetricDiagonal(t *testing.T) {
	md := []Scalar{ratInt(2), ratInt(3)}
	g := New(WithMetricDiagonal(md))
	if g.Dimension() != 2 {
		t.Fatalf("Dimension() = %d, want 2", g.Dimension())
	}
	if !ratEqual(g.MetricAt(0), ratInt(2)) || !ratEqual(g.MetricAt(1), ratInt(3)) {
		t.Errorf("metric = [%v %v], want [2 3]", g.MetricAt(0), g.MetricAt(1))
	}
}

func TestDualLawBAndDualEqualsPseudoscalar(t *testing.T) {
	g := euclidean(3)
	for _, b := range g.Blades() {
		dual := Dual(g, MultiVector{b})
		got := Simplify(Wedge(g, MultiVector{b}, dual))
		if len(got) != 1 || got[0].Bitmap != g.Pseudoscalar().Bitmap || !ratEqual(got[0].Scale, ratOne) {
			t.Errorf("blade %s: b ∧ dual(b) = %s, want 1*%s", b.Basis, Format(got), g.Pseudoscalar().Basis)
		}
	}
}

func TestPseudoscalarSquareG300(t *testing.T) {
	g := euclidean(3)
	i := MultiVector{g.Pseudoscalar()}
	got := Simplify(Geometric(g, i, i))
	if len(got) != 1 || got[0].Bitmap != 0 || !ratEqual(got[0].Scale, ratMinusOne) {
		t.Errorf("I*I = %s, want -1", Format(got))
	}
}

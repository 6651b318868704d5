// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

import "testing"

func TestApplyResolvesBinaryOperator(t *testing.T) {
	g := euclidean(3)
	e1 := MultiVector{NewBlade(1, ratOne, "e1")}
	e2 := MultiVector{NewBlade(2, ratOne, "e2")}

	got, err := g.Apply(OpWedge, e1, e2)
	if err != nil {
		t.Fatalf("Apply(OpWedge) error: %v", err)
	}
	mv, ok := got.(MultiVector)
	if !ok {
		t.Fatalf("Apply(OpWedge) returned %T, want MultiVector", got)
	}
	simplified := Simplify(mv)
	if len(simplified) != 1 || simplified[0].Bitmap != 3 || !ratEqual(simplified[0].Scale, ratOne) {
		t.Errorf("e1 ∧ e2 = %s, want 1*e12", Format(simplified))
	}
}

func TestApplyResolvesUnaryOperator(t *testing.T) {
	g := euclidean(3)
	e12 := MultiVector{NewBlade(3, ratOne, "e12")}

	got, err := g.Apply(OpReverse, e12)
	if err != nil {
		t.Fatalf("Apply(OpReverse) error: %v", err)
	}
	mv := got.(MultiVector)
	if !ratEqual(mv[0].Scale, ratMinusOne) {
		t.Errorf("<-e12 = %s, want -1*e12", Format(mv))
	}
}

func TestApplyReducesVariadicLeftToRight(t *testing.T) {
	g := euclidean(3)
	e1 := MultiVector{NewBlade(1, ratOne, "e1")}
	e2 := MultiVector{NewBlade(2, ratOne, "e2")}
	e3 := MultiVector{NewBlade(4, ratOne, "e3")}

	got, err := g.Apply(OpGeometric, e1, e2, e3)
	if err != nil {
		t.Fatalf("Apply(OpGeometric, e1, e2, e3) error: %v", err)
	}
	want := Simplify(Geometric(g, Geometric(g, e1, e2), e3))
	mv := Simplify(got.(MultiVector))
	if len(mv) != len(want) || (len(mv) == 1 && (mv[0].Bitmap != want[0].Bitmap || !ratEqual(mv[0].Scale, want[0].Scale))) {
		t.Errorf("Apply(OpGeometric, e1, e2, e3) = %s, want %s", Format(mv), Format(want))
	}
}

func TestApplyNoOperandsReturnsNoSuchOpError(t *testing.T) {
	g := euclidean(3)

	_, err := g.Apply(OpInverse)
	if err == nil {
		t.Fatal("Apply(OpInverse) with no args succeeded, want NoSuchOpError")
	}
	if _, ok := err.(*NoSuchOpError); !ok {
		t.Errorf("error type = %T, want *NoSuchOpError", err)
	}
}

func TestApplyJoinUsesNaryHandler(t *testing.T) {
	g := euclidean(3)
	e1 := MultiVector{NewBlade(1, ratOne, "e1")}
	e2 := MultiVector{NewBlade(2, ratOne, "e2")}
	e3 := MultiVector{NewBlade(4, ratOne, "e3")}

	got, err := g.Apply(OpJoin, e1, e2, e3)
	if err != nil {
		t.Fatalf("Apply(OpJoin) error: %v", err)
	}
	want := Join(g, e1, e2, e3)
	mv := got.(MultiVector)
	if len(mv) != len(want) {
		t.Errorf("Apply(OpJoin) = %s, want %s", Format(mv), Format(want))
	}
}

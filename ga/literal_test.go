// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

import "testing"

func TestNewMultiVectorResolvesLabelsAndSimplifies(t *testing.T) {
	g := euclidean(3)

	mv, err := NewMultiVector(g,
		Term{Scale: ratInt(2), Label: "e1"},
		Term{Scale: ratInt(3), Label: "e1"},
		Term{Scale: ratInt(1), Label: "e23"},
	)
	if err != nil {
		t.Fatalf("NewMultiVector error: %v", err)
	}

	e1, _ := g.Blade("e1")
	e23, _ := g.Blade("e23")

	if len(mv) != 2 {
		t.Fatalf("len(mv) = %d, want 2", len(mv))
	}
	var e1c, e23c Scalar
	for _, b := range mv {
		switch b.Bitmap {
		case e1.Bitmap:
			e1c = b.Scale
		case e23.Bitmap:
			e23c = b.Scale
		}
	}
	if e1c == nil || !ratEqual(e1c, ratInt(5)) {
		t.Errorf("e1 coefficient = %v, want 5", e1c)
	}
	if e23c == nil || !ratEqual(e23c, ratOne) {
		t.Errorf("e23 coefficient = %v, want 1", e23c)
	}
}

func TestNewMultiVectorUnknownLabelErrors(t *testing.T) {
	g := euclidean(3)
	_, err := NewMultiVector(g, Term{Scale: ratOne, Label: "e9"})
	if err == nil {
		t.Error("NewMultiVector with an unknown label succeeded, want an error")
	}
}

// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

import "fmt"

// Term is one scale/basis-label pair of a multivector literal, e.g. the
// c1, b1 in "multivector(ga, [c1 b1 c2 b2 ...])".
type Term struct {
	Scale Scalar
	Label string
}

// NewMultiVector is the multivector literal builder, one of the entry
// points a surface DSL consumes: it resolves each term's basis label
// against g and returns the canonical (simplified) multivector. It
// errors on an unknown label rather than panicking, since a bad label
// is user input, not a programming bug.
func NewMultiVector(g *Algebra, terms ...Term) (MultiVector, error) {
	out := make(MultiVector, 0, len(terms))
	for _, t := range terms {
		b, ok := g.Blade(t.Label)
		if !ok {
			return nil, fmt.Errorf("ga: unknown basis label %q", t.Label)
		}
		out = append(out, NewBlade(b.Bitmap, t.Scale, b.Basis))
	}
	return Simplify(out), nil
}

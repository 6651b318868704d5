// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

// bladeProduct computes the geometric product of two basis blades.
// Independent operands (disjoint bitmaps) need only the
// canonical-order sign; dependent operands also pick up one metric
// factor per shared bit, and annihilate to zero the moment any shared
// bit has a zero metric entry.
func bladeProduct(g *Algebra, a, b Blade) Blade {
	sign := canonicalSign(a.Bitmap, b.Bitmap)
	s := ratMul(sign, ratMul(a.Scale, b.Scale))

	if dependencyOf(a.Bitmap, b.Bitmap) == DepDependent {
		s = ratMul(s, sharedMetricFactor(g.metric, a.Bitmap, b.Bitmap))
	}

	bitmap := a.Bitmap ^ b.Bitmap
	return NewBlade(bitmap, s, g.basisByBitmap[bitmap].Basis)
}

// productTerm is one (a, b, a·b) triple produced while expanding a
// geometric product over two multivectors, before the result is
// partitioned by grade into the interior/exterior split.
type productTerm struct {
	a, b, ab Blade
}

// expandProduct computes every blade pair's geometric product without
// simplifying, returning the unsimplified triples that grade-selecting
// operators (Wedge, contractions, Interior) then filter.
func expandProduct(g *Algebra, a, b MultiVector) []productTerm {
	terms := make([]productTerm, 0, len(a)*len(b))
	for _, ba := range a {
		for _, bb := range b {
			terms = append(terms, productTerm{a: ba, b: bb, ab: bladeProduct(g, ba, bb)})
		}
	}
	return terms
}

// Geometric computes the geometric product a*b of two multivectors:
// the cartesian product of blade pairs through bladeProduct, simplified.
// The empty multivector is the additive
// identity's multiplicative annihilator: a product involving it is
// empty.
func Geometric(g *Algebra, a, b MultiVector) MultiVector {
	if a.IsEmpty() || b.IsEmpty() {
		return Empty()
	}
	terms := expandProduct(g, a, b)
	out := make(MultiVector, len(terms))
	for i, t := range terms {
		out[i] = t.ab
	}
	return Simplify(out)
}

// filterTerms keeps the ab blade of every term matching keep, and
// simplifies the result.
func filterTerms(terms []productTerm, keep func(t productTerm) bool) MultiVector {
	out := make(MultiVector, 0, len(terms))
	for _, t := range terms {
		if keep(t) {
			out = append(out, t.ab)
		}
	}
	return Simplify(out)
}

// Wedge computes the exterior (outer) product a∧b: the exterior
// partition of the unsimplified geometric product, keeping terms where
// grade(ab) == grade(a) + grade(b). Wedge also realizes Meet: the two
// are the same operation.
func Wedge(g *Algebra, a, b MultiVector) MultiVector {
	terms := expandProduct(g, a, b)
	return filterTerms(terms, func(t productTerm) bool {
		return t.ab.Grade == t.a.Grade+t.b.Grade
	})
}

// Interior computes the (left) interior product a•b: the interior
// partition, keeping terms where grade(ab) == grade(b) - grade(a).
func Interior(g *Algebra, a, b MultiVector) MultiVector {
	terms := expandProduct(g, a, b)
	return filterTerms(terms, func(t productTerm) bool {
		return t.ab.Grade == t.b.Grade-t.a.Grade
	})
}

// LeftContraction computes a⌋b: terms where grade(ab) == grade(b) -
// grade(a). This is the same partition as Interior; both are kept as
// distinct exported operators because the dispatcher registers them
// under distinct operator symbols.
func LeftContraction(g *Algebra, a, b MultiVector) MultiVector {
	return Interior(g, a, b)
}

// RightContraction computes a⌊b: terms where grade(ab) == grade(a) -
// grade(b).
func RightContraction(g *Algebra, a, b MultiVector) MultiVector {
	terms := expandProduct(g, a, b)
	return filterTerms(terms, func(t productTerm) bool {
		return t.ab.Grade == t.a.Grade-t.b.Grade
	})
}

// SymmetricInnerProduct computes a⌋•b: terms where grade(ab) ==
// |grade(b) - grade(a)|, restricted to non-scalar factors.
func SymmetricInnerProduct(g *Algebra, a, b MultiVector) MultiVector {
	terms := expandProduct(g, a, b)
	return filterTerms(terms, func(t productTerm) bool {
		if t.a.Grade == 0 || t.b.Grade == 0 {
			return false
		}
		diff := t.b.Grade - t.a.Grade
		if diff < 0 {
			diff = -diff
		}
		return t.ab.Grade == diff
	})
}

// Meet is an alias for Wedge: the exterior component of the
// interior/exterior split.
func Meet(g *Algebra, a, b MultiVector) MultiVector {
	return Wedge(g, a, b)
}

// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

import "sort"

// MultiVector is an ordered sequence of blades. A MultiVector is in
// canonical form once Simplify has run over it: blades sorted ascending
// by Bitmap, at most one blade per distinct Bitmap, no zero-scale
// blades. Products and other intermediate operators may produce
// non-canonical multivectors; callers that need the canonical form call
// Simplify explicitly.
type MultiVector []Blade

// Kind reports that a MultiVector is a KindMultivector operand for
// dispatch purposes.
func (MultiVector) Kind() Kind { return KindMultivector }

// Empty is the additive identity: the multivector with no blades.
func Empty() MultiVector { return nil }

// IsEmpty reports whether mv carries no blades.
func (mv MultiVector) IsEmpty() bool { return len(mv) == 0 }

// Clone returns a shallow copy of mv's blade slice so callers can't
// observe later mutation of a shared backing array. Blade values
// themselves are immutable once constructed.
func (mv MultiVector) Clone() MultiVector {
	out := make(MultiVector, len(mv))
	copy(out, mv)
	return out
}

// simplify0 is the merge step of simplification: sort by Bitmap, merge
// blades that share a Bitmap by summing their Scale, but keep zero-scale
// results. Within the package, Simplify is its only caller; eigenvalue
// extraction reads components through componentAt, which reports a
// missing blade as zero.
func simplify0(mv MultiVector) MultiVector {
	if len(mv) == 0 {
		return nil
	}
	sorted := mv.Clone()
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Bitmap < sorted[j].Bitmap })

	out := make(MultiVector, 0, len(sorted))
	i := 0
	for i < len(sorted) {
		j := i + 1
		scale := sorted[i].Scale
		for j < len(sorted) && sorted[j].Bitmap == sorted[i].Bitmap {
			scale = ratAdd(scale, sorted[j].Scale)
			j++
		}
		merged := sorted[i]
		merged.Scale = scale
		out = append(out, merged)
		i = j
	}
	return out
}

// Simplify reduces mv to canonical form: simplify0 followed by dropping
// every blade whose scale simplified to exactly zero.
func Simplify(mv MultiVector) MultiVector {
	merged := simplify0(mv)
	out := make(MultiVector, 0, len(merged))
	for _, b := range merged {
		if !b.IsZero() {
			out = append(out, b)
		}
	}
	return out
}

// scalarPart returns the coefficient of mv's scalar (bitmap 0) blade, or
// ratZero if mv has none. Used by Norm, Inverse and Exp, which all pick
// out "the scalar part of a product".
func (mv MultiVector) scalarPart() Scalar {
	for _, b := range mv {
		if b.Bitmap == 0 {
			return b.Scale
		}
	}
	return ratZero
}

// add concatenates two multivectors without simplifying; callers
// simplify the sum themselves when a canonical result is needed.
func add(a, b MultiVector) MultiVector {
	out := make(MultiVector, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// scale multiplies every blade's coefficient by s.
func scale(mv MultiVector, s Scalar) MultiVector {
	out := make(MultiVector, len(mv))
	for i, b := range mv {
		out[i] = b.scaled(s)
	}
	return out
}

// negateAll negates every blade's coefficient.
func negateAll(mv MultiVector) MultiVector {
	out := make(MultiVector, len(mv))
	for i, b := range mv {
		out[i] = b.negated()
	}
	return out
}

// lift promotes a Value to a MultiVector so unary derived operators can
// be implemented once against MultiVector and still honor the
// dispatcher's per-kind unary entries.
func lift(g *Algebra, v Value) MultiVector {
	switch x := v.(type) {
	case Number:
		return MultiVector{scalarBlade(g, x.S)}
	case Blade:
		return MultiVector{x}
	case MultiVector:
		return x
	default:
		return nil
	}
}

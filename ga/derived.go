// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

// expTaylorTerms and rsqrtSteps are the truncation constants: 16 Taylor
// terms for Exp, 16 Newton steps for rsqrt/Length.
const (
	expTaylorTerms = 16
	rsqrtSteps     = 16
)

// Reverse computes <-mv: every blade's wedge order is reversed,
// contributing a sign of (-1)^(k(k-1)/2) for a grade-k blade.
func Reverse(mv MultiVector) MultiVector {
	out := make(MultiVector, len(mv))
	for i, b := range mv {
		out[i] = reverseBlade(b)
	}
	return out
}

// GradeInvolution computes the grade involution: every blade's scale
// multiplied by (-1)^k.
func GradeInvolution(mv MultiVector) MultiVector {
	out := make(MultiVector, len(mv))
	for i, b := range mv {
		if b.Grade%2 != 0 {
			out[i] = b.negated()
		} else {
			out[i] = b
		}
	}
	return out
}

// Negate computes -mv: every blade's scale negated.
func Negate(mv MultiVector) MultiVector {
	return negateAll(mv)
}

// Dual computes ∼mv: each blade maps to its Hodge-complement with the
// sign that makes b ∧ ∼b == I.
func Dual(g *Algebra, mv MultiVector) MultiVector {
	out := make(MultiVector, len(mv))
	for i, b := range mv {
		dual, sign := g.dualOf(b.Bitmap)
		out[i] = NewBlade(dual.Bitmap, ratMul(b.Scale, sign), dual.Basis)
	}
	return out
}

// HodgeDual computes ★mv = <-mv · I.
func HodgeDual(g *Algebra, mv MultiVector) MultiVector {
	i := MultiVector{g.specials.I}
	return Geometric(g, Reverse(mv), i)
}

// Join computes ∨(operands...) via the dual: ∨(a,b) = ∼(∼b ∧ ∼a), with
// the fold's sign inverted when the operand count is even (the
// even/odd convention is an Open Question resolved per DESIGN.md).
func Join(g *Algebra, operands ...MultiVector) MultiVector {
	if len(operands) == 0 {
		return Empty()
	}
	if len(operands) == 1 {
		return operands[0]
	}

	result := Dual(g, operands[len(operands)-1])
	for i := len(operands) - 2; i >= 0; i-- {
		result = Wedge(g, result, Dual(g, operands[i]))
	}
	result = Dual(g, result)

	if len(operands)%2 == 0 {
		result = Negate(result)
	}
	return result
}

// Sandwich computes ⍣(r, x) = <-r · x · r, the canonical form for
// reflections and rotations.
func Sandwich(g *Algebra, r, x MultiVector) MultiVector {
	return Geometric(g, Geometric(g, Reverse(r), x), r)
}

// NormSquared computes (mv · <-mv).scalar: mv against its own reverse,
// which is what makes the inverse/length formulas below self-consistent
// for blades of any grade.
func NormSquared(g *Algebra, mv MultiVector) Scalar {
	return Geometric(g, mv, Reverse(mv)).scalarPart()
}

// Length computes the scalar square root of NormSquared via the
// rsqrt Newton iteration, truncated at 16 steps. An empty
// multivector has length 0.
func Length(g *Algebra, mv MultiVector) Scalar {
	if mv.IsEmpty() {
		return ratZero
	}
	n2 := ratFloat64(NormSquared(g, mv))
	if n2 < 0 {
		n2 = -n2
	}
	return ratFromFloat(rsqrt(n2, rsqrtSteps))
}

// Normalize computes ⧄mv: mv scaled by 1/Length(mv). An empty
// multivector passes through unchanged, as does any null (zero-length)
// multivector — e.g. an ideal element of a degenerate G(p,q,1) algebra —
// since there is no finite scale that would give it unit length.
func Normalize(g *Algebra, mv MultiVector) MultiVector {
	if mv.IsEmpty() {
		return mv
	}
	l := Length(g, mv)
	if ratIsZero(l) {
		return mv
	}
	return scale(mv, ratInv(l))
}

// Inverse computes ⁻mv = <-mv / (mv · <-mv).scalar. It returns
// NonInvertableError if that scalar is zero.
func Inverse(g *Algebra, mv MultiVector) (MultiVector, error) {
	denom := NormSquared(g, mv)
	if ratIsZero(denom) {
		return nil, &NonInvertableError{MultiVector: mv}
	}
	return scale(Reverse(mv), ratInv(denom)), nil
}

// Exp computes 𝑒(mv) via rescale-and-square:
//  1. max = (mv · <-mv).scalar
//  2. pick scale = 2^k with max/scale <= 1; scaled = mv/scale
//  3. sum the first 16 Taylor terms of scaled built by successive
//     multiplication
//  4. square the partial result k times to undo the rescale
func Exp(g *Algebra, mv MultiVector) MultiVector {
	max := ratFloat64(Geometric(g, mv, Reverse(mv)).scalarPart())
	if max < 0 {
		max = -max
	}

	k := 0
	divisor := 1.0
	for max/divisor > 1 {
		divisor *= 2
		k++
	}
	scaled := mv
	if k > 0 {
		scaled = scale(mv, ratInv(ratFromFloat(divisor)))
	}

	sum := MultiVector{scalarBlade(g, ratOne)}
	term := MultiVector{scalarBlade(g, ratOne)}
	fact := ratOne
	for i := 1; i <= expTaylorTerms; i++ {
		term = Geometric(g, term, scaled)
		fact = ratMul(fact, ratInt(int64(i)))
		sum = Simplify(add(sum, scale(term, ratInv(fact))))
	}

	result := sum
	for i := 0; i < k; i++ {
		result = Geometric(g, result, result)
	}
	return result
}

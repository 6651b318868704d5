// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

// Householder is a type for creating and using the QR factorization of
// a set of vectors, grounded on gonum/mat's QR type: Factorize computes
// the decomposition once, and QTo/RTo extract the two factors. Unlike
// gonum's BLAS/LAPACK-backed QR, every reflection here is carried out
// as a sandwich product in the algebra itself rather than dropping down
// to a matrix library.
type Householder struct {
	g *Algebra

	reflections []reflector // at most one per column 0..n-2, in discovery order
	r           []MultiVector
	n           int
}

// reflector is one Householder step: the hyperplane hy used to build
// qd(x) = (-hy)·x·hy⁻¹.
type reflector struct {
	hy    MultiVector
	hyInv MultiVector
}

// IdentityVectors returns g's d standard orthonormal basis vectors as
// grade-1 multivectors, in basis-vector order.
func IdentityVectors(g *Algebra) []MultiVector {
	out := make([]MultiVector, g.dimension)
	for i := 0; i < g.dimension; i++ {
		bitmap := uint64(1) << uint(i)
		out[i] = MultiVector{NewBlade(bitmap, ratOne, vectorLabel(g, i))}
	}
	return out
}

// componentAt returns the coefficient of the grade-1 mv's e_i term, or
// ratZero if mv has none.
func componentAt(mv MultiVector, i int) Scalar {
	bitmap := uint64(1) << uint(i)
	for _, b := range mv {
		if b.Bitmap == bitmap {
			return b.Scale
		}
	}
	return ratZero
}

// trimBelow drops every blade of a grade-1 multivector whose basis
// vector index is less than d, keeping only components at index >= d.
func trimBelow(mv MultiVector, d int) MultiVector {
	out := make(MultiVector, 0, len(mv))
	for _, b := range mv {
		if popcount(b.Bitmap) != 1 {
			continue
		}
		idx := 0
		for bm := b.Bitmap; bm > 1; bm >>= 1 {
			idx++
		}
		if idx >= d {
			out = append(out, b)
		}
	}
	return out
}

// apply runs x through reflector ref: qd(x) = (-hy)·x·hy⁻¹.
func (ref reflector) apply(g *Algebra, x MultiVector) MultiVector {
	return Simplify(Geometric(g, Geometric(g, negateAll(ref.hy), x), ref.hyInv))
}

// Factorize computes the QR factorization of the given vectors: for
// each column d from 0 to n-2, build a bisector from the
// normalized trailing part of column d and the negatively-signed d-th
// basis vector, dualize it into a reflection hyperplane, and sandwich
// every remaining column through it.
func (h *Householder) Factorize(g *Algebra, vectors []MultiVector) {
	n := len(vectors)
	h.g = g
	h.n = n
	h.r = make([]MultiVector, n)
	for i, v := range vectors {
		h.r[i] = v.Clone()
	}
	h.reflections = h.reflections[:0]

	for d := 0; d < n-1; d++ {
		v := trimBelow(h.r[d], d)

		vd := componentAt(v, d)
		sign := ratOne
		if vd.Sign() < 0 {
			sign = ratMinusOne
		}
		e := MultiVector{NewBlade(uint64(1)<<uint(d), ratNeg(sign), vectorLabel(g, d))}

		bi := Simplify(add(Normalize(g, v), e))
		if bi.IsEmpty() {
			bi = e
		}

		hy := Dual(g, bi)
		hyInv, err := Inverse(g, hy)
		if err != nil {
			// A zero-norm hyperplane only arises in a degenerate
			// metric; fall back to the identity reflection (record
			// and apply nothing for this column) so Factorize stays
			// total.
			continue
		}
		ref := reflector{hy: hy, hyInv: hyInv}
		h.reflections = append(h.reflections, ref)

		for j := d; j < n; j++ {
			h.r[j] = ref.apply(g, h.r[j])
		}
	}
}

// QTo returns Q applied to the standard basis, trimmed to grade-1
// components: each identity vector run through every discovered
// reflection in the order they were found.
func (h *Householder) QTo() []MultiVector {
	basis := IdentityVectors(h.g)
	q := make([]MultiVector, len(basis))
	for i, e := range basis {
		x := e
		for _, ref := range h.reflections {
			x = ref.apply(h.g, x)
		}
		q[i] = trimBelow(x, 0)
	}
	return q
}

// RTo returns the transformed input, trimmed to grade-1 components.
func (h *Householder) RTo() []MultiVector {
	out := make([]MultiVector, len(h.r))
	for i, c := range h.r {
		out[i] = trimBelow(c, 0)
	}
	return out
}

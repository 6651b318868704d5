// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

//go:generate stringer -type=Kind,Dependency,GradeClass -output=kind_string.go

// Kind tags an operand's runtime shape for operator dispatch: a bare
// coefficient, a single basis blade, or a full multivector.
type Kind int

const (
	KindNumber Kind = iota
	KindBlade
	KindMultivector
)

// Dependency classifies a pair of blade bitmaps for the primitive
// product: independent operands share no basis vectors, dependent
// operands do and so require metric weighting.
type Dependency int

const (
	DepIndependent Dependency = iota
	DepDependent
)

// dependencyOf classifies two bitmaps by whether they share a basis vector.
func dependencyOf(a, b uint64) Dependency {
	if a&b == 0 {
		return DepIndependent
	}
	return DepDependent
}

// GradeClass classifies an operand by grade shape for dispatch: the
// scalar subspace, everything else that isn't a scalar, or "whole
// multivector" when the dispatch doesn't care about grade at all.
type GradeClass int

const (
	GradeScalar    GradeClass = iota // grade 0
	GradeNonScalar                   // grade >= 1, single blade
	GradeAny                         // whole multivector: no single grade
)

// Value is any operand an operator can be applied to: a Number, a Blade,
// or a MultiVector. It exists so the dispatcher (Algebra.Apply) can be
// written generically over kinds.
type Value interface {
	Kind() Kind
}

// Number is a bare scalar coefficient lifted to a dispatchable Value.
type Number struct {
	S Scalar
}

// Kind reports that a Number is a KindNumber operand for dispatch purposes.
func (Number) Kind() Kind { return KindNumber }

// gradeClassOf reports a Value's GradeClass for dispatch purposes.
func gradeClassOf(v Value) GradeClass {
	switch x := v.(type) {
	case Number:
		return GradeScalar
	case Blade:
		if x.Grade == 0 {
			return GradeScalar
		}
		return GradeNonScalar
	case MultiVector:
		return GradeAny
	default:
		return GradeAny
	}
}

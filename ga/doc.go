// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ga implements a geometric (Clifford) algebra engine: given a
// signature (p, q, r), it builds the graded algebra on 2^(p+q+r) basis
// blades and evaluates products, involutions, duals, norms and
// reflections over multivectors built from those blades.
//
// An Algebra is built once with New and is read-only thereafter; every
// operator returns a fresh value rather than mutating its operands, so
// an *Algebra and the MultiVectors it produces are safe to share across
// goroutines.
//
// Most callers use the typed entry points directly: Geometric, Wedge,
// Reverse, Dual, Sandwich, Exp, Inverse and so on all take and return
// MultiVector. Algebra.Apply exposes the same operators through the
// operator-symbol dispatch table, for consumers (such as an
// algebra-aware expression surface) that resolve
// an operator and its operand kinds at runtime rather than at compile
// time.
package ga

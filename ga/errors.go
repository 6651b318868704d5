// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

import "fmt"

// Package-level panic sentinels for programmer errors: malformed
// algebra construction or out-of-range indices, never data-dependent
// algebraic outcomes. Mirrors gonum/mat's panic(ErrShape)-style
// invariant checks; "error" is reserved for the two data-dependent
// failures below.
const (
	errBadSignature   = "ga: algebra dimensions are inconsistent"
	errBadDimension   = "ga: dimension must be >= 0"
	errBitmapOverflow = "ga: bitmap exceeds algebra dimension"
	errBadPQR         = "ga: pqr must be a permutation of [p q r]"
)

// NonInvertableError reports that Inverse was asked to invert a
// multivector whose product with its own reverse has a zero scalar
// part. It carries the offending multivector so the caller can report
// or inspect it.
type NonInvertableError struct {
	MultiVector MultiVector
}

func (e *NonInvertableError) Error() string {
	return fmt.Sprintf("ga: multivector %s is not invertable", Format(e.MultiVector))
}

// NoSuchOpError reports that the dispatcher has no handler registered
// for the given operator against the given operand shapes. It carries
// the operator and the operands that failed to resolve.
type NoSuchOpError struct {
	Op   Op
	Args []Value
}

func (e *NoSuchOpError) Error() string {
	kinds := make([]Kind, len(e.Args))
	for i, a := range e.Args {
		kinds[i] = a.Kind()
	}
	return fmt.Sprintf("ga: no handler for operator %s with operand kinds %v", e.Op, kinds)
}

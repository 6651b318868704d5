// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

import (
	"fmt"
	"strings"
)

// String renders a blade as "<scale>*<basis>", e.g. "3/2*e12". Display
// only; the Basis label never affects semantics and is never consulted
// by any operator.
func (b Blade) String() string {
	return fmt.Sprintf("%s*%s", b.Scale.RatString(), b.Basis)
}

// String renders a multivector as its blades joined by " + ", or "0"
// when empty.
func (mv MultiVector) String() string {
	return Format(mv)
}

// Format renders a multivector the same way MultiVector.String does; it
// exists as a free function so error types (NonInvertableError) can
// format a multivector without relying on fmt's Stringer dispatch
// rules for a named slice type.
func Format(mv MultiVector) string {
	if mv.IsEmpty() {
		return "0"
	}
	parts := make([]string, len(mv))
	for i, b := range mv {
		parts[i] = b.String()
	}
	return strings.Join(parts, " + ")
}

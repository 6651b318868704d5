// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

// Op names an operator symbol for dispatch purposes. Meet and wedge are
// the same operator (the exterior component of the interior/exterior
// split) and so share OpWedge.
type Op int

const (
	OpGeometric Op = iota
	OpWedge             // ∧ (meet)
	OpInterior          // •
	OpLeftContraction   // ⌋
	OpRightContraction  // ⌊
	OpSymmetricInner    // ⌋•
	OpJoin              // ∨
	OpDual              // ∼
	OpHodgeDual         // ★
	OpSandwich          // ⍣
	OpExp               // 𝑒
	OpInverse           // ⁻
	OpNormalize         // ⧄
	OpReverse           // <-
	OpGradeInvolution   // _
	OpNegate            // -
	OpNormSquared
	OpLength
)

var opSymbols = map[Op]string{
	OpGeometric:        "*",
	OpWedge:             "∧",
	OpInterior:          "•",
	OpLeftContraction:   "⌋",
	OpRightContraction:  "⌊",
	OpSymmetricInner:    "⌋•",
	OpJoin:              "∨",
	OpDual:              "∼",
	OpHodgeDual:         "★",
	OpSandwich:          "⍣",
	OpExp:               "𝑒",
	OpInverse:           "⁻",
	OpNormalize:         "⧄",
	OpReverse:           "<-",
	OpGradeInvolution:   "_",
	OpNegate:            "-",
	OpNormSquared:       "norm2",
	OpLength:            "length",
}

func (op Op) String() string {
	if s, ok := opSymbols[op]; ok {
		return s
	}
	return "Op(?)"
}

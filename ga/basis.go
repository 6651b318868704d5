// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

import (
	"fmt"
	"math/bits"
	"sort"
	"strconv"
)

// generatedBasis is the output of generateBasis: every basis blade of a
// d-dimensional algebra, indexed every way an Algebra needs.
type generatedBasis struct {
	byBitmap []Blade // dense, length 2^d, index == bitmap
	byGrade  []Blade // stable sort by (grade, bitmap)
	byLabel  map[string]Blade
}

// generateBasis enumerates the 2^d basis blades of a dimension-d algebra
// with the given prefix and base: all k-subsets of {0..d-1} for
// k = 0..d, bitmap = Σ 2^i over the subset, label = prefix + ascending
// indices (offset by base), scalar labeled prefix + "_".
func generateBasis(prefix string, base, d int) generatedBasis {
	n := 1 << uint(d)
	byBitmap := make([]Blade, n)
	byLabel := make(map[string]Blade, n)

	for bm := 0; bm < n; bm++ {
		label := basisLabel(prefix, base, uint64(bm))
		b := NewBlade(uint64(bm), ratOne, label)
		byBitmap[bm] = b
		byLabel[label] = b
	}

	byGrade := make([]Blade, n)
	copy(byGrade, byBitmap)
	sort.SliceStable(byGrade, func(i, j int) bool {
		if byGrade[i].Grade != byGrade[j].Grade {
			return byGrade[i].Grade < byGrade[j].Grade
		}
		return byGrade[i].Bitmap < byGrade[j].Bitmap
	})

	return generatedBasis{byBitmap: byBitmap, byGrade: byGrade, byLabel: byLabel}
}

// basisLabel formats a bitmap's label: prefix + "_" for the scalar, else
// prefix followed by the ascending (base-offset) indices set in bitmap,
// e.g. "e12" for bitmap 0b011 with prefix "e" and base 1.
func basisLabel(prefix string, base int, bitmap uint64) string {
	if bitmap == 0 {
		return prefix + "_"
	}
	s := prefix
	for bm := bitmap; bm != 0; {
		i := bits.TrailingZeros64(bm)
		s += strconv.Itoa(i + base)
		bm &^= 1 << uint(i)
	}
	return s
}

// vectorLabel returns the label of the i-th basis vector (grade 1,
// single bit i), used by the eigendecomposition and QR code to name a
// freshly built grade-1 blade.
func vectorLabel(g *Algebra, i int) string {
	return basisLabel(g.prefix, g.base, 1<<uint(i))
}

func requireBitmap(g *Algebra, bitmap uint64) {
	if bitmap >= uint64(len(g.basisByBitmap)) {
		panic(fmt.Sprintf("%s: bitmap %d", errBitmapOverflow, bitmap))
	}
}

// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

import "math/bits"

// ExpandBlade expands a blade bitmap of g into g.mmga's orthonormal
// basis via g's metric multivectors: walking the bitmap LSB-first,
// wedging in the expansion of each participating synthetic basis
// vector. ExpandBlade panics if g was not built with
// WithNonOrthogonalMetric, since there is then no expansion to walk.
func ExpandBlade(g *Algebra, bitmap uint64) MultiVector {
	if g.mmga == nil || g.metricMVs == nil {
		panic("ga: ExpandBlade requires an algebra built with WithNonOrthogonalMetric")
	}
	requireBitmap(g, bitmap)

	if bitmap == 0 {
		return MultiVector{scalarBlade(g.mmga, ratOne)}
	}

	result := MultiVector(nil)
	first := true
	for bm := bitmap; bm != 0; {
		i := bits.TrailingZeros64(bm)
		factor := g.metricMVs[i]
		if first {
			result = factor
			first = false
		} else {
			result = Wedge(g.mmga, result, factor)
		}
		bm &^= 1 << uint(i)
	}
	return result
}

// ExpandMultiVector applies ExpandBlade to every blade of mv and sums
// the results (scaled by each blade's coefficient), giving mv's
// coordinates in g.mmga's orthonormal basis.
func ExpandMultiVector(g *Algebra, mv MultiVector) MultiVector {
	out := MultiVector(nil)
	for _, b := range mv {
		out = add(out, scale(ExpandBlade(g, b.Bitmap), b.Scale))
	}
	return Simplify(out)
}

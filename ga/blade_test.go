// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

import "testing"

func TestNewBladeGradeInvariant(t *testing.T) {
	for _, bm := range []uint64{0, 1, 3, 5, 0b1111, 0b10110} {
		b := NewBlade(bm, ratOne, "x")
		if b.Grade != popcount(bm) {
			t.Errorf("bitmap %b: grade = %d, want popcount = %d", bm, b.Grade, popcount(bm))
		}
	}
}

func TestCanonicalSign(t *testing.T) {
	tests := []struct {
		a, b uint64
		want int
	}{
		{a: 0b01, b: 0b10, want: 1},  // e1*e2 = e12, no swaps
		{a: 0b10, b: 0b01, want: -1}, // e2*e1 = -e12, one swap
		{a: 0, b: 0b11, want: 1},     // scalar factor never flips
	}
	for _, tt := range tests {
		got := canonicalSign(tt.a, tt.b)
		want := ratInt(int64(tt.want))
		if !ratEqual(got, want) {
			t.Errorf("canonicalSign(%b,%b) = %v, want %v", tt.a, tt.b, got, want)
		}
	}
}

func TestSharedMetricFactorAnnihilates(t *testing.T) {
	metric := []Scalar{ratZero, ratOne}
	// bit 0 has a zero metric entry; any product sharing that bit
	// annihilates to zero regardless of the other shared bits.
	got := sharedMetricFactor(metric, 0b11, 0b11)
	if !ratIsZero(got) {
		t.Errorf("sharedMetricFactor with a null axis = %v, want 0", got)
	}
}

func TestSharedMetricFactorMultipliesEntries(t *testing.T) {
	metric := []Scalar{ratInt(2), ratInt(3)}
	got := sharedMetricFactor(metric, 0b11, 0b11)
	want := ratInt(6)
	if !ratEqual(got, want) {
		t.Errorf("sharedMetricFactor = %v, want %v", got, want)
	}
}

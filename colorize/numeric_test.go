// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorize

import (
	"math"
	"reflect"
	"testing"
)

func TestNumericColors(t *testing.T) {
	got, err := NumericColors([]float64{0, 4, 5, 9.9}, Options{Spec: gen, Bins: 2})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"p0", "p0", "p1", "p1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestNumericColorsLimits(t *testing.T) {
	// Fixed limits override the data's own extent; values at or
	// beyond the boundaries clamp into the end bins.
	got, err := NumericColors([]float64{-10, 0, 5, 10, 20}, Options{
		Spec:   gen,
		Bins:   10,
		Limits: &[2]float64{0, 10},
	})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"p0", "p0", "p5", "p9", "p9"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestNumericColorsDegenerate(t *testing.T) {
	// A constant column has no interval to split; everything maps
	// to the middle of the palette.
	got, err := NumericColors([]float64{7, 7, 7}, Options{Spec: gen, Bins: 10})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"p5", "p5", "p5"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestNumericColorsNaN(t *testing.T) {
	got, err := NumericColors([]float64{1, math.NaN(), 2}, Options{Spec: gen, Bins: 2})
	if err != nil {
		t.Fatal(err)
	}
	if got[1] != Absent {
		t.Errorf("NaN mapped to %q; want Absent", got[1])
	}
	if got[0] == Absent || got[2] == Absent {
		t.Errorf("real values masked: %v", got)
	}
}

func TestTopK(t *testing.T) {
	// top=2 on [5 3 9 1 9]: the tied 9s both stay; everything
	// strictly below the 2nd-highest value disappears.
	got, err := NumericColors([]float64{5, 3, 9, 1, 9}, Options{Spec: gen, Bins: 3, Top: 2})
	if err != nil {
		t.Fatal(err)
	}
	visible := 0
	for i, c := range got {
		if c != Absent {
			visible++
			if xs := []float64{5, 3, 9, 1, 9}; xs[i] < 9 {
				t.Errorf("value %g below the cutoff is visible", xs[i])
			}
		}
	}
	if visible < 2 {
		t.Errorf("have %d visible values; want >= 2", visible)
	}
}

func TestTopKNoOp(t *testing.T) {
	xs := []float64{1, 2, 3}
	all, err := NumericColors(xs, Options{Spec: gen, Bins: 3})
	if err != nil {
		t.Fatal(err)
	}
	// top >= len keeps everything.
	got, err := NumericColors(xs, Options{Spec: gen, Bins: 3, Top: 5})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, all) {
		t.Errorf("top >= len changed colors: %v vs %v", got, all)
	}
}

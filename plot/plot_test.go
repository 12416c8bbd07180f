// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"testing"

	"github.com/aclements/go-embedplot/colorize"
)

func TestPoints(t *testing.T) {
	p, err := Points(
		[]float64{0, 1, 2},
		[]float64{2, 1, 0},
		[]string{"red", "#00ff00", "blue"},
		Options{Title: "fit", Subtitle: "3 points"},
	)
	if err != nil {
		t.Fatal(err)
	}
	if p.Title.Text != "fit\n3 points" {
		t.Errorf("title = %q", p.Title.Text)
	}
}

func TestPointsAbsent(t *testing.T) {
	// Absent-colored points are dropped rather than drawn
	// invisibly at the data range edges.
	p, err := Points(
		[]float64{0, 100, 1},
		[]float64{0, 100, 1},
		[]string{"red", colorize.Absent, "blue"},
		Options{},
	)
	if err != nil {
		t.Fatal(err)
	}
	if p.X.Max >= 100 {
		t.Errorf("absent point expanded the range to %g", p.X.Max)
	}
}

func TestPointsErrors(t *testing.T) {
	if _, err := Points([]float64{1}, []float64{1, 2}, nil, Options{}); err == nil {
		t.Error("want error for mismatched coordinates")
	}
	if _, err := Points([]float64{1}, []float64{1}, []string{"a", "b"}, Options{}); err == nil {
		t.Error("want error for mismatched colors")
	}
	if _, err := Points([]float64{1}, []float64{1}, []string{"nope"}, Options{}); err == nil {
		t.Error("want error for unparseable color")
	}
}

func TestText(t *testing.T) {
	p, err := Text(
		[]float64{0, 1},
		[]float64{1, 0},
		[]string{"a", "b"},
		[]string{"red", "blue"},
		Options{},
	)
	if err != nil {
		t.Fatal(err)
	}
	if p == nil {
		t.Fatal("no plot")
	}

	if _, err := Text([]float64{0}, []float64{0}, []string{"a", "b"}, nil, Options{}); err == nil {
		t.Error("want error for mismatched labels")
	}
}

func TestLimits(t *testing.T) {
	p, err := Points(
		[]float64{0, 1},
		[]float64{0, 1},
		nil,
		Options{XLim: &[2]float64{-5, 5}, YLim: &[2]float64{-1, 2}},
	)
	if err != nil {
		t.Fatal(err)
	}
	if p.X.Min != -5 || p.X.Max != 5 || p.Y.Min != -1 || p.Y.Max != 2 {
		t.Errorf("limits not applied: x [%g, %g], y [%g, %g]", p.X.Min, p.X.Max, p.Y.Min, p.Y.Max)
	}
}

func TestEqualAxes(t *testing.T) {
	p, err := Points(
		[]float64{0, 10},
		[]float64{0, 1},
		nil,
		Options{Equal: true},
	)
	if err != nil {
		t.Fatal(err)
	}
	xr := p.X.Max - p.X.Min
	yr := p.Y.Max - p.Y.Min
	if xr != yr {
		t.Errorf("axis ranges differ: %g vs %g", xr, yr)
	}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorize

import (
	"reflect"
	"testing"

	"github.com/aclements/go-gg/table"
)

func TestTableColorPriority(t *testing.T) {
	// A color column beats a categorical column, wherever it is.
	tab := new(table.Builder).
		Add("kind", []Level{"x", "y", "x"}).
		Add("shade", []string{"red", "green", "blue"}).
		Done()
	colors, labels, err := Table(tab, Options{Spec: gen})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"red", "green", "blue"}; !reflect.DeepEqual(colors, want) {
		t.Errorf("colors = %v; want %v", colors, want)
	}
	if labels != nil {
		t.Errorf("explicit colors have no labels; got %v", labels)
	}
}

func TestTableLastWins(t *testing.T) {
	// Two categorical columns: the rightmost one wins, so a
	// caller can append a column to override defaults.
	tab := new(table.Builder).
		Add("first", []Level{"a", "a", "b"}).
		Add("second", []Level{"x", "y", "y"}).
		Done()
	colors, labels, err := Table(tab, Options{Spec: gen})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"p0", "p1", "p1"}; !reflect.DeepEqual(colors, want) {
		t.Errorf("colors = %v; want %v", colors, want)
	}
	if want := []string{"x", "y", "y"}; !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v; want %v", labels, want)
	}
}

func TestTableFactorishText(t *testing.T) {
	tab := new(table.Builder).
		Add("id", []string{"r1", "r2", "r3"}).
		Add("group", []string{"g1", "g1", "g2"}).
		Done()
	colors, labels, err := Table(tab, Options{Spec: gen})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"p0", "p0", "p1"}; !reflect.DeepEqual(colors, want) {
		t.Errorf("colors = %v; want %v", colors, want)
	}
	if want := []string{"g1", "g1", "g2"}; !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v; want %v", labels, want)
	}
}

func TestTableNumericNeverSelected(t *testing.T) {
	// Numeric columns are never auto-selected from a table; with
	// nothing else, every row gets its own color and no labels.
	tab := new(table.Builder).
		Add("a", []float64{1, 2, 3}).
		Add("b", []float64{4, 5, 6}).
		Done()
	colors, labels, err := Table(tab, Options{Spec: gen})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"p0", "p1", "p2"}; !reflect.DeepEqual(colors, want) {
		t.Errorf("colors = %v; want %v", colors, want)
	}
	if labels != nil {
		t.Errorf("fallback has no labels; got %v", labels)
	}
}

func TestTableEndToEnd(t *testing.T) {
	// Numeric columns flank the only factor; the factor is
	// selected, rows sharing a level share a color, and the labels
	// are the factor's values.
	tab := new(table.Builder).
		Add("A", []float64{0.1, 0.2, 0.3}).
		Add("B", []Level{"x", "y", "x"}).
		Add("C", []float64{7, 8, 9}).
		Done()
	colors, labels, err := Table(tab, Options{Spec: gen})
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 3 {
		t.Fatalf("have %d colors; want 3", len(colors))
	}
	if colors[0] != colors[2] || colors[0] == colors[1] {
		t.Errorf("level coloring wrong: %v", colors)
	}
	if want := []string{"x", "y", "x"}; !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v; want %v", labels, want)
	}
}

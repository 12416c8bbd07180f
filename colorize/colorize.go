// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorize maps per-observation data onto display colors.
//
// The input may be a column of explicit colors, a numeric column, a
// categorical column, text that looks categorical, or a whole table
// whose columns are searched in a fixed priority order. The output is
// always one color string per observation, plus the categorical
// labels that produced it when there are any.
package colorize

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-embedplot/palette"
)

// Absent is the sentinel color assigned to observations that should
// not be shown, such as values filtered out by Options.Top. It is
// fully transparent, so renderers draw nothing without special
// casing.
const Absent = "#00000000"

// DefaultBins is the numeric bin count used when Options.Bins is 0.
const DefaultBins = 10

// Options configures color resolution. The zero value uses the
// default palette, DefaultBins numeric bins, the full data range, and
// no top-K filtering.
type Options struct {
	// Spec is the palette specification. Nil means
	// palette.Default.
	Spec palette.Spec

	// Bins is the number of discrete bins for numeric columns.
	Bins int

	// Limits fixes the [low, high] range for numeric columns
	// instead of using the column's own extent.
	Limits *[2]float64

	// Top, if positive, keeps only the Top highest numeric values
	// visible; everything strictly below the Top-th value is
	// mapped to Absent. Ties at the cutoff are retained.
	Top int

	// Resolver resolves palette specs. Nil uses the default
	// catalog library.
	Resolver *palette.Resolver
}

func (o Options) bins() int {
	if o.Bins <= 0 {
		return DefaultBins
	}
	return o.Bins
}

func (o Options) resolve(k int) ([]string, error) {
	return o.Resolver.Resolve(o.Spec, k)
}

var cardinalKind = map[reflect.Kind]bool{
	reflect.Float32: true,
	reflect.Float64: true,
	reflect.Int:     true,
	reflect.Int8:    true,
	reflect.Int16:   true,
	reflect.Int32:   true,
	reflect.Int64:   true,
	reflect.Uint:    true,
	reflect.Uintptr: true,
	reflect.Uint8:   true,
	reflect.Uint16:  true,
	reflect.Uint32:  true,
	reflect.Uint64:  true,
}

// IsColor reports whether v is representable as a color: a string
// that parses as a color name or hex encoding, or any numeric value
// (numbers address entries in a system color table and are always
// valid). Parse failures report false; they are never errors.
func IsColor(v interface{}) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return false
	}
	if cardinalKind[rv.Kind()] {
		return true
	}
	if rv.Kind() == reflect.String {
		_, ok := palette.Parse(rv.String())
		return ok
	}
	return false
}

// IsColorColumn reports whether seq is a column of explicit colors:
// every element passes IsColor and the column is not entirely
// numeric. The numeric exclusion keeps a plain numeric column from
// masquerading as colors just because numbers are valid palette
// indices.
func IsColorColumn(seq interface{}) bool {
	rv := reflect.ValueOf(seq)
	if !rv.IsValid() || rv.Kind() != reflect.Slice || rv.Len() == 0 {
		return false
	}
	allNumeric := true
	for i := 0; i < rv.Len(); i++ {
		v := elem(rv.Index(i))
		if !IsColor(v.Interface()) {
			return false
		}
		if !cardinalKind[v.Kind()] {
			allNumeric = false
		}
	}
	return !allNumeric
}

// IsFactorish reports whether seq is text that should be treated as
// categorical: it has more than one distinct value and fewer distinct
// values than elements. One distinct value carries no information;
// all-distinct values are more plausibly identifiers. Non-text
// sequences are never factorish.
func IsFactorish(seq interface{}) bool {
	rv := reflect.ValueOf(seq)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return false
	}
	if rv.Type().Elem().Kind() != reflect.String {
		return false
	}
	distinct := make(map[string]bool)
	for i := 0; i < rv.Len(); i++ {
		distinct[rv.Index(i).String()] = true
	}
	return 1 < len(distinct) && len(distinct) < rv.Len()
}

// Column resolves one color per element of seq. seq may be a slice
// or a *Factor. Classification tries, in order: explicit colors
// (returned unchanged), numeric (binned via NumericColors),
// natively categorical, categorical-looking text, and finally one
// palette color per element.
func Column(seq interface{}, o Options) ([]string, error) {
	if f, ok := seq.(*Factor); ok {
		return categoryColors(f, o)
	}
	rv := reflect.ValueOf(seq)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("colorize: cannot color %T", seq)
	}
	if rv.Len() == 0 {
		return []string{}, nil
	}

	switch {
	case IsColorColumn(seq):
		return colorStrings(rv), nil

	case isNumeric(rv):
		return NumericColors(toFloats(rv), o)

	default:
		if f, ok := factorOf(seq); ok {
			return categoryColors(f, o)
		}
		if IsFactorish(seq) {
			return categoryColors(NewFactor(toStrings(rv)), o)
		}
		// No structure to exploit; one color per element.
		return o.resolve(rv.Len())
	}
}

// categoryColors maps each value of f through a palette sized to its
// level count, in level order.
func categoryColors(f *Factor, o Options) ([]string, error) {
	pal, err := o.resolve(len(f.levels))
	if err != nil {
		return nil, err
	}
	out := make([]string, len(f.codes))
	for i, c := range f.codes {
		out[i] = pal[c]
	}
	return out, nil
}

// elem unwraps interface-typed slice elements.
func elem(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Interface && !v.IsNil() {
		return v.Elem()
	}
	return v
}

func isNumeric(rv reflect.Value) bool {
	if rv.Len() == 0 {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if !cardinalKind[elem(rv.Index(i)).Kind()] {
			return false
		}
	}
	return true
}

func toFloats(rv reflect.Value) []float64 {
	out := make([]float64, rv.Len())
	f64 := reflect.TypeOf(float64(0))
	for i := range out {
		out[i] = elem(rv.Index(i)).Convert(f64).Float()
	}
	return out
}

func toStrings(rv reflect.Value) []string {
	out := make([]string, rv.Len())
	for i := range out {
		out[i] = elem(rv.Index(i)).String()
	}
	return out
}

// colorStrings returns the column's own values as color strings,
// unchanged except for formatting non-string elements.
func colorStrings(rv reflect.Value) []string {
	out := make([]string, rv.Len())
	for i := range out {
		v := elem(rv.Index(i))
		if v.Kind() == reflect.String {
			out[i] = v.String()
		} else {
			out[i] = fmt.Sprint(v.Interface())
		}
	}
	return out
}

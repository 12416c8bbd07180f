// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorize

import "fmt"

// A Level is a categorical value. A []Level column in a table is
// treated as natively categorical, with levels ordered by first
// appearance.
type Level string

// A Factor is a sequence of categorical values drawn from an ordered
// set of levels. Level order is fixed at construction and drives the
// category-to-color mapping.
type Factor struct {
	levels []string
	codes  []int
}

// NewFactor builds a Factor from values. If levels are given, they
// fix the level order and every value must be one of them; NewFactor
// panics otherwise. If no levels are given, levels are the distinct
// values in order of first appearance.
func NewFactor(values []string, levels ...string) *Factor {
	f := &Factor{codes: make([]int, len(values))}
	index := make(map[string]int)
	if len(levels) > 0 {
		f.levels = append([]string(nil), levels...)
		for i, l := range levels {
			index[l] = i
		}
	}
	for i, v := range values {
		code, ok := index[v]
		if !ok {
			if len(levels) > 0 {
				panic(fmt.Sprintf("colorize: value %q is not a level of %v", v, levels))
			}
			code = len(f.levels)
			index[v] = code
			f.levels = append(f.levels, v)
		}
		f.codes[i] = code
	}
	return f
}

// Len returns the number of values.
func (f *Factor) Len() int {
	return len(f.codes)
}

// Levels returns the ordered level set.
func (f *Factor) Levels() []string {
	return append([]string(nil), f.levels...)
}

// Values returns the level name of each value.
func (f *Factor) Values() []string {
	out := make([]string, len(f.codes))
	for i, c := range f.codes {
		out[i] = f.levels[c]
	}
	return out
}

// factorOf views x as a Factor if it is natively categorical: a
// *Factor or a []Level column.
func factorOf(x interface{}) (*Factor, bool) {
	switch v := x.(type) {
	case *Factor:
		return v, true
	case []Level:
		vals := make([]string, len(v))
		for i, l := range v {
			vals[i] = string(l)
		}
		return NewFactor(vals), true
	}
	return nil, false
}

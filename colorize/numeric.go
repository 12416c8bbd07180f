// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorize

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/scale"
)

// NumericColors maps xs into discrete color bins. The [low, high]
// range is o.Limits if set, otherwise the extent of xs. The range is
// split into o.Bins equal-width intervals, each assigned one color of
// a palette resolved to that size; values at or beyond the boundaries
// clamp into the first or last bin. If low == high every value maps
// to the middle bin. NaN values map to Absent, as do values filtered
// out by o.Top.
func NumericColors(xs []float64, o Options) ([]string, error) {
	k := o.bins()
	pal, err := o.resolve(k)
	if err != nil {
		return nil, err
	}

	var low, high float64
	if o.Limits != nil {
		low, high = o.Limits[0], o.Limits[1]
	} else {
		low, high = extent(xs)
	}

	ls := scale.Linear{Min: low, Max: high}
	out := make([]string, len(xs))
	for i, x := range xs {
		if math.IsNaN(x) {
			out[i] = Absent
			continue
		}
		var bin int
		if low == high {
			// Degenerate range; use the middle of the
			// palette for everything.
			bin = k / 2
		} else {
			bin = int(ls.Map(x) * float64(k))
			if bin < 0 {
				bin = 0
			} else if bin >= k {
				bin = k - 1
			}
		}
		out[i] = pal[bin]
	}

	if o.Top > 0 {
		mask(xs, out, o.Top)
	}
	return out, nil
}

// mask hides every value strictly below the top-th highest value.
// Ties at the cutoff stay visible, so more than top values may
// remain.
func mask(xs []float64, colors []string, top int) {
	ranked := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			ranked = append(ranked, x)
		}
	}
	if top >= len(ranked) {
		return
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(ranked)))
	cut := ranked[top-1]
	for i, x := range xs {
		if x < cut {
			colors[i] = Absent
		}
	}
}

func extent(xs []float64) (low, high float64) {
	low, high = math.NaN(), math.NaN()
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		if x < low || math.IsNaN(low) {
			low = x
		}
		if x > high || math.IsNaN(high) {
			high = x
		}
	}
	if math.IsNaN(low) {
		low, high = 0, 0
	}
	return
}

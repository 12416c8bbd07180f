// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"image/color"
	"testing"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"red", color.RGBA{255, 0, 0, 255}, true},
		{"Steelblue", color.RGBA{70, 130, 180, 255}, true},
		{" white ", color.RGBA{255, 255, 255, 255}, true},
		{"#fff", color.RGBA{255, 255, 255, 255}, true},
		{"#f00f", color.RGBA{255, 0, 0, 255}, true},
		{"#102030", color.RGBA{16, 32, 48, 255}, true},
		{"#10203040", color.RGBA{16, 32, 48, 64}, true},
		{"#00000000", color.RGBA{0, 0, 0, 0}, true},

		{"", color.RGBA{}, false},
		{"notacolor", color.RGBA{}, false},
		{"#12345", color.RGBA{}, false},
		{"#gggggg", color.RGBA{}, false},
		{"102030", color.RGBA{}, false},
	} {
		got, ok := Parse(test.in)
		if ok != test.ok || got != test.want {
			t.Errorf("Parse(%q) = %v, %v; want %v, %v", test.in, got, ok, test.want, test.ok)
		}
	}
}

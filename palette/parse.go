// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Parse parses a color string: an SVG 1.1 color name ("red",
// "steelblue") or a hex encoding with optional alpha ("#abc",
// "#abcd", "#aabbcc", "#aabbccdd"). It reports false for anything
// else rather than failing.
func Parse(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, true
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, false
	}
	h := s[1:]
	var r, g, b, a uint8
	a = 0xff
	switch len(h) {
	case 4:
		x, ok := nibble(h[3])
		if !ok {
			return color.RGBA{}, false
		}
		a = x * 0x11
		fallthrough
	case 3:
		rx, ok1 := nibble(h[0])
		gx, ok2 := nibble(h[1])
		bx, ok3 := nibble(h[2])
		if !ok1 || !ok2 || !ok3 {
			return color.RGBA{}, false
		}
		r, g, b = rx*0x11, gx*0x11, bx*0x11
	case 8:
		x, ok := byteAt(h, 6)
		if !ok {
			return color.RGBA{}, false
		}
		a = x
		fallthrough
	case 6:
		rx, ok1 := byteAt(h, 0)
		gx, ok2 := byteAt(h, 2)
		bx, ok3 := byteAt(h, 4)
		if !ok1 || !ok2 || !ok3 {
			return color.RGBA{}, false
		}
		r, g, b = rx, gx, bx
	default:
		return color.RGBA{}, false
	}
	return color.RGBA{R: r, G: g, B: b, A: a}, true
}

func nibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func byteAt(s string, i int) (uint8, bool) {
	hi, ok1 := nibble(s[i])
	lo, ok2 := nibble(s[i+1])
	return hi<<4 | lo, ok1 && ok2
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"fmt"
	"image/color"

	ggpalette "github.com/aclements/go-gg/palette"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Default is the built-in library. It is constructed once at package
// load and treated as read-only afterward; concurrent lookups need no
// locking.
var Default = buildDefault()

func buildDefault() *Library {
	l := NewLibrary()

	for name, colors := range brewer {
		l.Register("brewer", name, discrete(colors))
	}
	for name, anchors := range perceptual {
		l.Register("viridis", name, continuous(anchors))
	}
	l.Register("hue", "default", Entry{Kind: Dynamic, Query: hueWheel})

	return l
}

// discrete wraps a designed color list as a Discrete entry whose
// query returns the first k colors.
func discrete(colors []string) Entry {
	return Entry{
		Kind:      Discrete,
		MaxNative: len(colors),
		Query: func(k int) []string {
			return colors[:k]
		},
	}
}

// continuous wraps gradient anchors as a Continuous entry sampled by
// even spacing on [0, 1]. A single color is sampled from the middle
// of the gradient.
func continuous(anchors []color.RGBA) Entry {
	grad := ggpalette.RGBGradient{Colors: anchors}
	return Entry{
		Kind: Continuous,
		Query: func(k int) []string {
			out := make([]string, k)
			for i := range out {
				t := 0.5
				if k > 1 {
					t = float64(i) / float64(k-1)
				}
				out[i] = hex(grad.Map(t))
			}
			return out
		},
	}
}

// hueWheel returns k evenly spaced hues at fixed chroma and
// lightness, the usual qualitative default when no designed palette
// is large enough.
func hueWheel(k int) []string {
	out := make([]string, k)
	for i := range out {
		h := float64(i)*360/float64(k) + 15
		out[i] = colorful.Hcl(h, 0.5, 0.7).Clamped().Hex()
	}
	return out
}

func hex(c color.Color) string {
	r := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", r.R, r.G, r.B)
}

// brewer holds ColorBrewer designs at their maximum native size.
// Colors by Cynthia Brewer (http://colorbrewer.org/); see the license
// at http://colorbrewer.org/export/LICENSE.txt.
var brewer = map[string][]string{
	"set1": {
		"#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00",
		"#ffff33", "#a65628", "#f781bf", "#999999",
	},
	"set2": {
		"#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3", "#a6d854",
		"#ffd92f", "#e5c494", "#b3b3b3",
	},
	"set3": {
		"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3",
		"#fdb462", "#b3de69", "#fccde5", "#d9d9d9", "#bc80bd",
		"#ccebc5", "#ffed6f",
	},
	"dark2": {
		"#1b9e77", "#d95f02", "#7570b3", "#e7298a", "#66a61e",
		"#e6ab02", "#a6761d", "#666666",
	},
	"paired": {
		"#a6cee3", "#1f78b4", "#b2df8a", "#33a02c", "#fb9a99",
		"#e31a1c", "#fdbf6f", "#ff7f00", "#cab2d6", "#6a3d9a",
		"#ffff99", "#b15928",
	},
	"accent": {
		"#7fc97f", "#beaed4", "#fdc086", "#ffff99", "#386cb0",
		"#f0027f", "#bf5b17", "#666666",
	},
	"pastel1": {
		"#fbb4ae", "#b3cde3", "#ccebc5", "#decbe4", "#fed9a6",
		"#ffffcc", "#e5d8bd", "#fddaec", "#f2f2f2",
	},
	"pastel2": {
		"#b3e2cd", "#fdcdac", "#cbd5e8", "#f4cae4", "#e6f5c9",
		"#fff2ae", "#f1e2cc", "#cccccc",
	},
	"blues": {
		"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6",
		"#4292c6", "#2171b5", "#08519c", "#08306b",
	},
	"ylorrd": {
		"#ffffcc", "#ffeda0", "#fed976", "#feb24c", "#fd8d3c",
		"#fc4e2a", "#e31a1c", "#bd0026", "#800026",
	},
	"rdbu": {
		"#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7",
		"#f7f7f7", "#d1e5f0", "#92c5de", "#4393c3", "#2166ac",
		"#053061",
	},
	"spectral": {
		"#9e0142", "#d53e4f", "#f46d43", "#fdae61", "#fee08b",
		"#ffffbf", "#e6f598", "#abdda4", "#66c2a5", "#3288bd",
		"#5e4fa2",
	},
}

// perceptual holds gradient anchors for the matplotlib perceptually
// uniform colormaps.
var perceptual = map[string][]color.RGBA{
	"viridis": {
		{68, 1, 84, 255}, {72, 35, 116, 255}, {64, 67, 135, 255},
		{52, 94, 141, 255}, {41, 120, 142, 255}, {32, 144, 140, 255},
		{34, 167, 132, 255}, {68, 190, 112, 255}, {121, 209, 81, 255},
		{189, 222, 38, 255}, {253, 231, 37, 255},
	},
	"plasma": {
		{13, 8, 135, 255}, {75, 3, 161, 255}, {125, 3, 168, 255},
		{168, 34, 150, 255}, {203, 70, 121, 255}, {229, 107, 93, 255},
		{248, 148, 65, 255}, {253, 195, 40, 255}, {240, 249, 33, 255},
	},
	"inferno": {
		{0, 0, 4, 255}, {40, 11, 84, 255}, {101, 21, 110, 255},
		{159, 42, 99, 255}, {212, 72, 66, 255}, {245, 125, 21, 255},
		{250, 193, 39, 255}, {252, 255, 164, 255},
	},
	"magma": {
		{0, 0, 4, 255}, {28, 16, 68, 255}, {79, 18, 123, 255},
		{129, 37, 129, 255}, {181, 54, 122, 255}, {229, 80, 100, 255},
		{251, 135, 97, 255}, {254, 194, 135, 255}, {252, 253, 191, 255},
	},
}

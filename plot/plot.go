// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot renders colored 2D scatter and text plots via
// gonum/plot.
package plot

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-embedplot/palette"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Options configures a rendered plot.
type Options struct {
	Title    string
	Subtitle string

	// XLim and YLim override the axis limits computed from the
	// data.
	XLim, YLim *[2]float64

	// PointRadius is the glyph radius for Points. Zero means 2.5
	// points.
	PointRadius vg.Length

	// Equal expands the shorter axis so both axes span the same
	// range, preserving the embedding's aspect ratio.
	Equal bool
}

func (o Options) radius() vg.Length {
	if o.PointRadius == 0 {
		return vg.Points(2.5)
	}
	return o.PointRadius
}

// Points renders a scatter plot with one color per point. Points
// whose color is absent (fully transparent) are dropped.
func Points(x, y []float64, colors []string, o Options) (*gplot.Plot, error) {
	xys, cs, _, err := visible(x, y, colors, nil)
	if err != nil {
		return nil, err
	}
	p := newPlot(o)

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{Color: cs[i], Radius: o.radius(), Shape: draw.CircleGlyph{}}
	}
	p.Add(s)

	setLimits(p, o)
	return p, nil
}

// Text renders each observation as its label text instead of a
// point. colors may be nil for the default text color.
func Text(x, y []float64, labels, colors []string, o Options) (*gplot.Plot, error) {
	if len(labels) != len(x) {
		return nil, fmt.Errorf("plot: have %d labels for %d points", len(labels), len(x))
	}
	xys, cs, keep, err := visible(x, y, colors, labels)
	if err != nil {
		return nil, err
	}
	p := newPlot(o)

	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: keep})
	if err != nil {
		return nil, err
	}
	if colors != nil {
		for i := range l.TextStyle {
			l.TextStyle[i].Color = cs[i]
		}
	}
	p.Add(l)

	setLimits(p, o)
	return p, nil
}

func newPlot(o Options) *gplot.Plot {
	p := gplot.New()
	title := o.Title
	if o.Subtitle != "" {
		title += "\n" + o.Subtitle
	}
	p.Title.Text = title
	grid := plotter.NewGrid()
	grid.Horizontal.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	grid.Vertical.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(grid)
	return p
}

// visible drops observations with an absent color and parses the
// remaining colors.
func visible(x, y []float64, colors, labels []string) (plotter.XYs, []color.Color, []string, error) {
	if len(x) != len(y) {
		return nil, nil, nil, fmt.Errorf("plot: coordinate lengths differ: %d vs %d", len(x), len(y))
	}
	if colors != nil && len(colors) != len(x) {
		return nil, nil, nil, fmt.Errorf("plot: have %d colors for %d points", len(colors), len(x))
	}
	var (
		xys  plotter.XYs
		cs   []color.Color
		keep []string
	)
	for i := range x {
		c := color.RGBA{A: 255}
		if colors != nil {
			rgba, ok := palette.Parse(colors[i])
			if !ok {
				return nil, nil, nil, fmt.Errorf("plot: cannot parse color %q", colors[i])
			}
			if rgba.A == 0 {
				continue
			}
			c = rgba
		}
		xys = append(xys, plotter.XY{X: x[i], Y: y[i]})
		cs = append(cs, c)
		if labels != nil {
			keep = append(keep, labels[i])
		}
	}
	return xys, cs, keep, nil
}

func setLimits(p *gplot.Plot, o Options) {
	if o.XLim != nil {
		p.X.Min, p.X.Max = o.XLim[0], o.XLim[1]
	}
	if o.YLim != nil {
		p.Y.Min, p.Y.Max = o.YLim[0], o.YLim[1]
	}
	if o.Equal {
		xr := p.X.Max - p.X.Min
		yr := p.Y.Max - p.Y.Min
		if xr > yr {
			mid := (p.Y.Max + p.Y.Min) / 2
			p.Y.Min, p.Y.Max = mid-xr/2, mid+xr/2
		} else if yr > xr {
			mid := (p.X.Max + p.X.Min) / 2
			p.X.Min, p.X.Max = mid-yr/2, mid+yr/2
		}
	}
}

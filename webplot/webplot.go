// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package webplot emits interactive scatter plots as self-contained
// HTML documents driven by ECharts.
package webplot

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/aclements/go-embedplot/palette"
)

// Margin is the factor applied to both axis ranges to keep points
// off the plot edges.
const Margin = 1.15

// Options configures an interactive plot.
type Options struct {
	Title string

	// Legend shows a legend of category labels. It is ignored,
	// and the legend suppressed, when there are no labels.
	Legend bool

	// Width and Height are the chart size in pixels. Zero means
	// 900×600.
	Width, Height int
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w == 0 {
		w = 900
	}
	if h == 0 {
		h = 600
	}
	return w, h
}

// Option builds the ECharts option document for the plot. labels may
// be nil, in which case all points form one anonymous series and no
// legend is configured. Each point's tooltip text is its 1-based
// index, then its label if it has one. Points with an absent (fully
// transparent) color are dropped.
func Option(x, y []float64, colors, labels []string, o Options) (map[string]interface{}, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("webplot: coordinate lengths differ: %d vs %d", len(x), len(y))
	}
	if colors != nil && len(colors) != len(x) {
		return nil, fmt.Errorf("webplot: have %d colors for %d points", len(colors), len(x))
	}
	if labels != nil && len(labels) != len(x) {
		return nil, fmt.Errorf("webplot: have %d labels for %d points", len(labels), len(x))
	}

	// One series per category, in first-appearance order, so the
	// legend groups points by label.
	seriesOf := map[string]int{}
	var series []map[string]interface{}
	addSeries := func(name string) int {
		i, ok := seriesOf[name]
		if !ok {
			i = len(series)
			seriesOf[name] = i
			series = append(series, map[string]interface{}{
				"name": name,
				"type": "scatter",
				"data": []interface{}{},
			})
		}
		return i
	}

	for i := range x {
		name := ""
		tip := fmt.Sprintf("%d", i+1)
		if labels != nil {
			name = labels[i]
			tip = fmt.Sprintf("%d: %s", i+1, labels[i])
		}
		datum := map[string]interface{}{
			"value": []float64{x[i], y[i]},
			"name":  tip,
		}
		if colors != nil {
			c, ok := palette.Parse(colors[i])
			if !ok {
				return nil, fmt.Errorf("webplot: cannot parse color %q", colors[i])
			}
			if c.A == 0 {
				continue
			}
			datum["itemStyle"] = map[string]interface{}{
				"color": fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
			}
		}
		si := addSeries(name)
		series[si]["data"] = append(series[si]["data"].([]interface{}), datum)
	}

	xlo, xhi := pad(x)
	ylo, yhi := pad(y)
	opt := map[string]interface{}{
		"title": map[string]interface{}{"text": o.Title},
		"tooltip": map[string]interface{}{
			"formatter": "{b}",
		},
		"xAxis": map[string]interface{}{"min": xlo, "max": xhi},
		"yAxis": map[string]interface{}{"min": ylo, "max": yhi},
		"series": series,
	}
	if o.Legend && labels != nil {
		names := make([]string, len(series))
		for name, i := range seriesOf {
			names[i] = name
		}
		opt["legend"] = map[string]interface{}{"data": names}
	}
	return opt, nil
}

// pad widens the data range by Margin around its midpoint.
func pad(xs []float64) (lo, hi float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	lo, hi = xs[0], xs[0]
	for _, x := range xs {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	mid := (lo + hi) / 2
	half := (hi - lo) / 2 * Margin
	return mid - half, mid + half
}

var page = template.Must(template.New("webplot").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.jsdelivr.net/npm/echarts@5/dist/echarts.min.js"></script>
</head>
<body>
<div id="plot" style="width:{{.Width}}px;height:{{.Height}}px;"></div>
<script>
echarts.init(document.getElementById("plot")).setOption({{.Option}});
</script>
</body>
</html>
`))

// HTML writes a standalone interactive plot document to w.
func HTML(w io.Writer, x, y []float64, colors, labels []string, o Options) error {
	opt, err := Option(x, y, colors, labels, o)
	if err != nil {
		return err
	}
	js, err := json.Marshal(opt)
	if err != nil {
		return err
	}
	width, height := o.size()
	return page.Execute(w, struct {
		Title         string
		Width, Height int
		Option        template.JS
	}{o.Title, width, height, template.JS(js)})
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command embedplot plots a 2D embedding from a CSV file, coloring
// points by whatever the data offers.
//
// embedplot reads a CSV with one row per observation. Two numeric
// columns supply the coordinates (the first two by default, or -x and
// -y). The remaining columns are searched for color information: an
// explicit color column, a categorical column, or categorical-looking
// text; -color restricts the search to one column, which may also be
// numeric. Output is a raster plot (-o, PNG or SVG by extension), an
// interactive HTML plot (-html), or both.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/aclements/go-embedplot/colorize"
	"github.com/aclements/go-embedplot/internal/diag"
	"github.com/aclements/go-embedplot/palette"
	"github.com/aclements/go-embedplot/pca"
	"github.com/aclements/go-embedplot/plot"
	"github.com/aclements/go-embedplot/webplot"
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

func main() {
	log.SetPrefix("embedplot: ")
	log.SetFlags(0)

	var (
		flagOut      = flag.String("o", "", "write raster plot to `file` (.png or .svg)")
		flagHTML     = flag.String("html", "", "write interactive plot to `file`")
		flagX        = flag.String("x", "", "x coordinate `column` (default: first numeric column)")
		flagY        = flag.String("y", "", "y coordinate `column` (default: second numeric column)")
		flagColor    = flag.String("color", "", "color by `column` only, instead of searching all columns")
		flagPalette  = flag.String("palette", "", "`palette`: \"catalog::name\" or comma-separated colors")
		flagBins     = flag.Int("bins", colorize.DefaultBins, "number of `bins` for numeric columns")
		flagTop      = flag.Int("top", 0, "show only the top `k` values of a numeric column")
		flagLimits   = flag.String("limits", "", "fixed numeric range `lo,hi`")
		flagPCA      = flag.Bool("pca", false, "rotate coordinates onto their principal axes")
		flagText     = flag.String("text", "", "draw each point as the text of `column`")
		flagTitle    = flag.String("title", "", "plot `title`")
		flagSubtitle = flag.String("subtitle", "", "plot `subtitle`")
		flagLegend   = flag.Bool("legend", true, "show category legend in the interactive plot")
		flagVerbose  = flag.Bool("v", false, "emit classification and palette notices")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [input.csv]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *flagOut == "" && *flagHTML == "" {
		log.Fatal("nothing to do: give -o and/or -html")
	}
	diag.SetVerbose(*flagVerbose)

	tab := readCSV(flag.Arg(0))

	xcol, ycol := *flagX, *flagY
	if xcol == "" || ycol == "" {
		xcol, ycol = coordColumns(tab, xcol, ycol)
	}
	var xs, ys []float64
	slice.Convert(&xs, tab.MustColumn(xcol))
	slice.Convert(&ys, tab.MustColumn(ycol))
	if *flagPCA {
		xs, ys = pca.Rotate(xs, ys)
	}

	// Everything except the coordinates is color material.
	var x interface{}
	if *flagColor != "" {
		x = tab.MustColumn(*flagColor)
	} else if rest := dropColumns(tab, xcol, ycol); len(rest.Columns()) > 0 {
		x = rest
	}

	opts := colorize.Options{
		Spec: parsePalette(*flagPalette),
		Bins: *flagBins,
		Top:  *flagTop,
	}
	if *flagLimits != "" {
		var lo, hi float64
		if _, err := fmt.Sscanf(*flagLimits, "%g,%g", &lo, &hi); err != nil {
			log.Fatalf("bad -limits %q: %v", *flagLimits, err)
		}
		opts.Limits = &[2]float64{lo, hi}
	}

	colors, labels, err := colorize.Colors(len(xs), x, nil, opts)
	if err != nil {
		log.Fatal(err)
	}

	if *flagOut != "" {
		po := plot.Options{Title: *flagTitle, Subtitle: *flagSubtitle}
		var p *gplot.Plot
		if *flagText != "" {
			p, err = plot.Text(xs, ys, stringColumn(tab.MustColumn(*flagText)), colors, po)
		} else {
			p, err = plot.Points(xs, ys, colors, po)
		}
		if err != nil {
			log.Fatal(err)
		}
		if err := p.Save(7*vg.Inch, 5*vg.Inch, *flagOut); err != nil {
			log.Fatal(err)
		}
	}

	if *flagHTML != "" {
		f, err := os.Create(*flagHTML)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		wo := webplot.Options{Title: *flagTitle, Legend: *flagLegend}
		if err := webplot.HTML(f, xs, ys, colors, labels, wo); err != nil {
			log.Fatal(err)
		}
	}
}

func readCSV(path string) *table.Table {
	f := os.Stdin
	if path != "" && path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		log.Fatal(err)
	}
	if len(rows) < 2 {
		log.Fatal("need a header row and at least one data row")
	}
	return table.TableFromStrings(rows[0], rows[1:], true)
}

// coordColumns fills in unspecified coordinate columns with the
// first two numeric columns of the table.
func coordColumns(t *table.Table, xcol, ycol string) (string, string) {
	for _, name := range t.Columns() {
		if name == xcol || name == ycol || !isNumeric(t.Column(name)) {
			continue
		}
		if xcol == "" {
			xcol = name
		} else if ycol == "" {
			ycol = name
		}
	}
	if xcol == "" || ycol == "" {
		log.Fatal("cannot find two numeric coordinate columns; give -x and -y")
	}
	return xcol, ycol
}

func isNumeric(col table.Slice) bool {
	switch reflect.TypeOf(col).Elem().Kind() {
	case reflect.Float64, reflect.Float32, reflect.Int, reflect.Uint:
		return true
	}
	return false
}

func dropColumns(t *table.Table, names ...string) *table.Table {
	b := new(table.Builder)
	for _, name := range t.Columns() {
		drop := false
		for _, skip := range names {
			drop = drop || name == skip
		}
		if !drop {
			b.Add(name, t.Column(name))
		}
	}
	return b.Done()
}

func stringColumn(col table.Slice) []string {
	if s, ok := col.([]string); ok {
		return s
	}
	rv := reflect.ValueOf(col)
	out := make([]string, rv.Len())
	for i := range out {
		out[i] = fmt.Sprint(rv.Index(i).Interface())
	}
	return out
}

func parsePalette(s string) palette.Spec {
	switch {
	case s == "":
		return nil
	case strings.Contains(s, ","):
		return palette.List(strings.Split(s, ","))
	default:
		// "catalog::palette"; Resolve reports malformed names.
		return palette.Name(s)
	}
}

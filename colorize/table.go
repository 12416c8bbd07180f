// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorize

import (
	"reflect"

	"github.com/aclements/go-embedplot/internal/diag"
	"github.com/aclements/go-gg/table"
)

// Table searches the columns of t for the best coloring source and
// returns one color per row, plus the categorical labels behind the
// colors when there are any.
//
// The search tries, in order: a column of explicit colors, a natively
// categorical column, and a text column that looks categorical
// (IsFactorish). Within each tier the last-declared matching column
// wins, so callers can append a column to override earlier ones.
// Numeric columns are never auto-selected from a table — a table may
// have many numeric columns and picking one would be arbitrary — so
// if nothing matches, every row gets its own palette color and no
// labels are returned.
func Table(t *table.Table, o Options) (colors, labels []string, err error) {
	var colorCol, catCol, textCol string
	for _, name := range t.Columns() {
		col := t.Column(name)
		switch {
		case IsColorColumn(col):
			colorCol = name
		case isCategorical(col):
			catCol = name
		case IsFactorish(col):
			textCol = name
		}
	}

	switch {
	case colorCol != "":
		diag.Notice("colorize", "using column %q as colors", colorCol)
		colors, err = Column(t.Column(colorCol), o)
		return colors, nil, err

	case catCol != "":
		diag.Notice("colorize", "coloring by factor column %q", catCol)
		f, _ := factorOf(t.Column(catCol))
		colors, err = categoryColors(f, o)
		if err != nil {
			return nil, nil, err
		}
		return colors, f.Values(), nil

	case textCol != "":
		diag.Notice("colorize", "coloring by text column %q", textCol)
		vals := toStrings(reflect.ValueOf(t.Column(textCol)))
		colors, err = categoryColors(NewFactor(vals), o)
		if err != nil {
			return nil, nil, err
		}
		return colors, vals, nil
	}

	// Nothing usable; one color per row.
	colors, err = o.resolve(t.Len())
	return colors, nil, err
}

func isCategorical(col interface{}) bool {
	_, ok := col.([]Level)
	return ok
}

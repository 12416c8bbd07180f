// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorize

import (
	"fmt"

	"github.com/aclements/go-gg/table"
)

// Colors is the top-level entry point for resolving display colors
// for n observations.
//
// If explicit is non-nil it is returned unchanged and nothing is
// classified. Otherwise, if x is a *table.Table its columns are
// searched (see Table); if x is a column it is classified directly
// (see Column), returning labels only when x is natively categorical.
// If x is nil every observation gets its own palette color and there
// are no labels, so callers should suppress any legend.
func Colors(n int, x interface{}, explicit []string, o Options) (colors, labels []string, err error) {
	if explicit != nil {
		return explicit, nil, nil
	}

	switch v := x.(type) {
	case nil:
		colors, err = o.resolve(n)
		return colors, nil, err

	case *table.Table:
		if v.Len() != n {
			return nil, nil, fmt.Errorf("colorize: table has %d rows for %d observations", v.Len(), n)
		}
		return Table(v, o)

	default:
		colors, err = Column(v, o)
		if err != nil {
			return nil, nil, err
		}
		if f, ok := factorOf(x); ok {
			labels = f.Values()
		}
		return colors, labels, nil
	}
}

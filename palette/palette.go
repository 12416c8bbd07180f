// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette resolves color specifications into color lists.
//
// A Spec describes where colors come from: a Generator function, an
// explicit List of colors, or a qualified Name referencing a palette
// in a catalog.Library. Resolve produces exactly the requested number
// of colors from any Spec, interpolating through the source palette
// when it has fewer native colors than requested.
package palette

import (
	"fmt"
	"strings"

	"github.com/aclements/go-embedplot/catalog"
	"github.com/aclements/go-embedplot/internal/diag"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// A Spec specifies a palette. It is one of Generator, List, or Name.
type Spec interface {
	paletteSpec()
}

// A Generator produces n colors on demand. Its output length is
// trusted.
type Generator func(n int) []string

// A List is an explicit palette of at least two colors. Any request
// is satisfied by interpolating through the list.
type List []string

// A Name references a catalog palette as "catalog::palette".
type Name string

func (Generator) paletteSpec() {}
func (List) paletteSpec()      {}
func (Name) paletteSpec()      {}

// Default is the palette used when a caller supplies no Spec.
var Default Spec = Name("brewer::set1")

// A MalformedSpecError reports a qualified palette name that does not
// split into exactly two "catalog::palette" segments.
type MalformedSpecError struct {
	Spec string
}

func (e *MalformedSpecError) Error() string {
	return fmt.Sprintf("malformed palette name %q: want \"catalog::palette\"", e.Spec)
}

// An InvalidSizeError reports an explicit palette with too few colors
// to interpolate through.
type InvalidSizeError struct {
	Len int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("explicit palette must have at least 2 colors; have %d", e.Len)
}

// A Resolver resolves Specs against a catalog library. The zero
// value uses catalog.Default.
type Resolver struct {
	// Library supplies qualified Name lookups. If nil,
	// catalog.Default is used.
	Library *catalog.Library
}

func (r *Resolver) library() *catalog.Library {
	if r == nil || r.Library == nil {
		return catalog.Default
	}
	return r.Library
}

// Resolve returns exactly k colors for spec. A nil spec resolves
// Default. Resolution is a pure function of (spec, k) and the library
// contents: resolving the same spec twice yields identical output.
func (r *Resolver) Resolve(spec Spec, k int) ([]string, error) {
	if k < 1 {
		return nil, fmt.Errorf("palette: requested %d colors", k)
	}
	if spec == nil {
		spec = Default
	}
	switch s := spec.(type) {
	case Generator:
		return s(k), nil
	case List:
		return resolveList(s, k)
	case Name:
		return r.resolveName(s, k)
	}
	return nil, fmt.Errorf("palette: unknown spec type %T", spec)
}

// Resolve is shorthand for resolving against catalog.Default.
func Resolve(spec Spec, k int) ([]string, error) {
	return (*Resolver)(nil).Resolve(spec, k)
}

func resolveList(list List, k int) ([]string, error) {
	if len(list) < 2 {
		return nil, &InvalidSizeError{Len: len(list)}
	}
	anchors := make([]colorful.Color, len(list))
	for i, s := range list {
		c, ok := Parse(s)
		if !ok {
			return nil, fmt.Errorf("palette: cannot parse color %q", s)
		}
		anchors[i] = colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	}
	if k > len(list) {
		diag.Notice("palette", "interpolating %d colors up to %d", len(list), k)
	}
	return ramp(anchors, k), nil
}

func (r *Resolver) resolveName(name Name, k int) ([]string, error) {
	parts := strings.Split(string(name), "::")
	if len(parts) != 2 {
		return nil, &MalformedSpecError{Spec: string(name)}
	}
	e, err := r.library().Lookup(parts[0], parts[1])
	if err != nil {
		return nil, err
	}

	switch e.Kind {
	case catalog.Continuous, catalog.Dynamic:
		// Unbounded; query directly.
		return e.Query(k), nil
	}
	if k <= e.MaxNative {
		return e.Query(k), nil
	}
	base := e.Query(e.MaxNative)
	diag.Notice("palette", "%s has %d native colors; interpolating up to %d", name, e.MaxNative, k)
	anchors := make([]colorful.Color, len(base))
	for i, s := range base {
		c, ok := Parse(s)
		if !ok {
			return nil, fmt.Errorf("palette: catalog %s returned unparseable color %q", name, s)
		}
		anchors[i] = colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	}
	return ramp(anchors, k), nil
}

// ramp samples k colors by blending continuously through anchors.
func ramp(anchors []colorful.Color, k int) []string {
	out := make([]string, k)
	if len(anchors) == 1 {
		for i := range out {
			out[i] = anchors[0].Hex()
		}
		return out
	}
	for i := range out {
		t := 0.0
		if k > 1 {
			t = float64(i) / float64(k-1)
		}
		x := t * float64(len(anchors)-1)
		lo := int(x)
		if lo >= len(anchors)-1 {
			out[i] = anchors[len(anchors)-1].Hex()
			continue
		}
		out[i] = anchors[lo].BlendRgb(anchors[lo+1], x-float64(lo)).Hex()
	}
	return out
}

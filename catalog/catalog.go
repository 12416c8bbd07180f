// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog provides named color palette catalogs.
//
// A Library maps a qualified "catalog" and "palette" name pair to an
// Entry that can produce colors. The built-in Default library carries
// a ColorBrewer-derived catalog ("brewer"), the matplotlib perceptual
// colormaps ("viridis"), and a procedural hue wheel ("hue"). A Library
// is immutable once handed to readers; Default is constructed at
// package load and must not be modified afterward.
package catalog

import (
	"fmt"
	"strings"
)

// Kind describes how a palette produces colors.
type Kind int

const (
	// Discrete palettes have a fixed list of designed colors and a
	// native maximum size.
	Discrete Kind = iota

	// Continuous palettes are defined on [0, 1] and can be sampled
	// at any number of points.
	Continuous

	// Dynamic palettes generate any requested number of colors
	// procedurally.
	Dynamic
)

func (k Kind) String() string {
	switch k {
	case Discrete:
		return "discrete"
	case Continuous:
		return "continuous"
	case Dynamic:
		return "dynamic"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// An Entry is one palette in a catalog.
type Entry struct {
	// Kind tags the query behavior of this palette.
	Kind Kind

	// MaxNative is the largest count Query supports natively.
	// It is 0 for Continuous and Dynamic palettes, which are
	// unbounded.
	MaxNative int

	// Query returns k colors as hex strings. For Discrete entries
	// k must be between 1 and MaxNative; resolution above
	// MaxNative is the caller's job (by interpolation).
	Query func(k int) []string
}

// An UnknownCatalogError reports a lookup against a catalog name that
// does not exist in the library.
type UnknownCatalogError struct {
	Catalog string
}

func (e *UnknownCatalogError) Error() string {
	return fmt.Sprintf("unknown palette catalog %q", e.Catalog)
}

// An UnknownPaletteError reports a palette name that does not exist
// within a known catalog.
type UnknownPaletteError struct {
	Catalog, Palette string
}

func (e *UnknownPaletteError) Error() string {
	return fmt.Sprintf("unknown palette %q in catalog %q", e.Palette, e.Catalog)
}

// A Library is a read-only set of named catalogs. The zero value is
// an empty library.
type Library struct {
	catalogs map[string]map[string]Entry
}

// NewLibrary returns an empty Library.
func NewLibrary() *Library {
	return &Library{catalogs: make(map[string]map[string]Entry)}
}

// Register adds palette to catalog, creating the catalog if
// necessary. Names are case-insensitive. Register must not be called
// once the library is visible to concurrent readers.
func (l *Library) Register(catalog, palette string, e Entry) {
	if l.catalogs == nil {
		l.catalogs = make(map[string]map[string]Entry)
	}
	c, ok := l.catalogs[strings.ToLower(catalog)]
	if !ok {
		c = make(map[string]Entry)
		l.catalogs[strings.ToLower(catalog)] = c
	}
	c[strings.ToLower(palette)] = e
}

// Lookup finds a palette by catalog and palette name. It returns an
// *UnknownCatalogError if the catalog does not exist and an
// *UnknownPaletteError if the catalog exists but the palette does
// not.
func (l *Library) Lookup(catalog, palette string) (Entry, error) {
	c, ok := l.catalogs[strings.ToLower(catalog)]
	if !ok {
		return Entry{}, &UnknownCatalogError{Catalog: catalog}
	}
	e, ok := c[strings.ToLower(palette)]
	if !ok {
		return Entry{}, &UnknownPaletteError{Catalog: catalog, Palette: palette}
	}
	return e, nil
}

// Catalogs returns the catalog names in the library, in no particular
// order.
func (l *Library) Catalogs() []string {
	names := make([]string, 0, len(l.catalogs))
	for name := range l.catalogs {
		names = append(names, name)
	}
	return names
}

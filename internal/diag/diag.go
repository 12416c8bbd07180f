// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diag routes informational diagnostics from the color
// resolution code. Diagnostics never affect returned values; they
// exist so a caller can see which column was selected or when a
// palette had to be interpolated.
package diag

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var verbose bool

func init() {
	// zerolog defaults
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	if os.Getenv("EMBEDPLOT_VERBOSE") != "" {
		verbose = true
	}
}

// SetVerbose turns notice emission on or off. It overrides the
// EMBEDPLOT_VERBOSE environment variable.
func SetVerbose(v bool) {
	verbose = v
}

// Verbose reports whether notices are emitted.
func Verbose() bool {
	return verbose
}

// SetOutput redirects notices to w. Tests use this to capture them.
func SetOutput(w io.Writer) {
	log.Logger = zerolog.New(w)
}

// Notice emits an informational notice for the given component if
// verbose mode is on.
func Notice(component, format string, args ...interface{}) {
	if !verbose {
		return
	}
	log.Info().Str("component", component).Msgf(format, args...)
}

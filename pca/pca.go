// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pca rotates 2D coordinates onto their principal axes.
package pca

import "gonum.org/v1/gonum/mat"

// Rotate centers the (x, y) coordinates and projects them onto their
// first two principal directions, scaled by the corresponding
// singular values. The result has the same length as the input, with
// most of the variance on the first axis. Rotate panics if x and y
// have different lengths. Fewer than two points have no principal
// directions and are returned centered.
func Rotate(x, y []float64) (rx, ry []float64) {
	if len(x) != len(y) {
		panic("pca: coordinate lengths differ")
	}
	n := len(x)
	rx, ry = make([]float64, n), make([]float64, n)
	if n == 0 {
		return
	}

	var mx, my float64
	for i := range x {
		mx += x[i]
		my += y[i]
	}
	mx /= float64(n)
	my /= float64(n)
	if n < 2 {
		return
	}

	data := make([]float64, 2*n)
	for i := range x {
		data[2*i] = x[i] - mx
		data[2*i+1] = y[i] - my
	}

	var svd mat.SVD
	if !svd.Factorize(mat.NewDense(n, 2, data), mat.SVDThin) {
		panic("pca: SVD failed to converge")
	}
	var u mat.Dense
	svd.UTo(&u)
	s := svd.Values(nil)
	for i := 0; i < n; i++ {
		rx[i] = u.At(i, 0) * s[0]
		ry[i] = u.At(i, 1) * s[1]
	}
	return
}

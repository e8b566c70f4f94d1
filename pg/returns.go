// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pg

import "github.com/goki/mat32"

// StdMin is the standard deviation below which NormReturns only
// subtracts the mean.
const StdMin = 1.0e-8

// DiscountedReturns returns G[t] = rews[t] + gamma * G[t+1], computed
// backward from the end of the episode.
func DiscountedReturns(rews []float32, gamma float32) []float32 {
	gs := make([]float32, len(rews))
	g := float32(0)
	for t := len(rews) - 1; t >= 0; t-- {
		g = rews[t] + gamma*g
		gs[t] = g
	}
	return gs
}

// NormReturns returns the returns standardized to zero mean and unit
// (population) standard deviation.  If the standard deviation is below
// StdMin the returns are only centered.  A single return is passed
// through unchanged, and an empty input gives an empty result.
func NormReturns(gs []float32) []float32 {
	n := len(gs)
	ns := make([]float32, n)
	copy(ns, gs)
	if n < 2 {
		return ns
	}
	mean := float32(0)
	for _, g := range gs {
		mean += g
	}
	mean /= float32(n)
	vr := float32(0)
	for _, g := range gs {
		d := g - mean
		vr += d * d
	}
	std := mat32.Sqrt(vr / float32(n))
	for i := range ns {
		ns[i] -= mean
		if std > StdMin {
			ns[i] /= std
		}
	}
	return ns
}

// Surrogate is the rectangular surrogate derivative of the spike
// threshold: 1/width when u is within width/2 of thr, else 0.
func Surrogate(u, thr, width float32) float32 {
	if mat32.Abs(u-thr) < width/2 {
		return 1 / width
	}
	return 0
}

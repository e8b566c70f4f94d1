// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flif

// GLCoeffs returns the n Grünwald–Letnikov convolution coefficients for
// fractional order alpha, applied newest-first to the Vm history:
// k[0] = -alpha, k[j] = (1 - (alpha+1)/(j+1)) * k[j-1].
// Returns an empty slice for n <= 0.
func GLCoeffs(alpha float32, n int) []float32 {
	if n <= 0 {
		return []float32{}
	}
	k := make([]float32, n)
	k[0] = -alpha
	for j := 1; j < n; j++ {
		k[j] = (1 - (alpha+1)/float32(j+1)) * k[j-1]
	}
	return k
}

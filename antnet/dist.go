// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package antnet

import "github.com/chewxy/math32"

// ActionDist returns the probability of each action as the softmax of
// the leaf spike counts divided by temp.  The max count is subtracted
// before dividing by temp, so large counts and small temperatures are
// safe.  If all counts are zero the result is exactly uniform.
func ActionDist(counts [ActionsN]int, temp float32) [ActionsN]float32 {
	var ps [ActionsN]float32
	zero := true
	mx := counts[0]
	for _, c := range counts {
		if c != 0 {
			zero = false
		}
		if c > mx {
			mx = c
		}
	}
	if zero {
		for ai := range ps {
			ps[ai] = 1.0 / float32(ActionsN)
		}
		return ps
	}
	sum := float32(0)
	for ai, c := range counts {
		ps[ai] = math32.Exp(float32(c-mx) / temp)
		sum += ps[ai]
	}
	for ai := range ps {
		ps[ai] /= sum
	}
	return ps
}

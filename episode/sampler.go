// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package episode

import "github.com/emer/emergent/erand"

// Sampler chooses an action index given action probabilities
type Sampler interface {
	// Sample returns an index into ps, which sums to 1
	Sample(ps []float32) int
}

// PChoose samples from the categorical distribution given by the
// probabilities, using the global math/rand source.
type PChoose struct{}

func (pc PChoose) Sample(ps []float32) int {
	return erand.PChoose32(ps, -1)
}

// SeqSampler ignores the probabilities and returns the values in Seq in
// order, wrapping around at the end.  An empty Seq always returns 0.
type SeqSampler struct {
	Seq []int
	Idx int
}

func (ss *SeqSampler) Sample(ps []float32) int {
	if len(ss.Seq) == 0 {
		return 0
	}
	a := ss.Seq[ss.Idx%len(ss.Seq)]
	ss.Idx++
	return a
}

// SamplerFunc adapts a function to the Sampler interface
type SamplerFunc func(ps []float32) int

func (sf SamplerFunc) Sample(ps []float32) int { return sf(ps) }

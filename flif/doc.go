// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package flif provides the fractional-order leaky integrate-and-fire (FLIF)
spiking neuron, using the Grünwald–Letnikov (GL) discretization of the
fractional membrane derivative, along with a standard exponential-leak LIF
neuron that satisfies the same Unit contract.

The GL derivative is a weighted sum over the history of past membrane
potentials.  Here the history is bounded to the last MemLen values, held in a
fixed-size ring (History) that is convolved with a kernel of GL coefficients
(GLCoeffs) generated once per neuron.  Each Update is thus O(MemLen) for the
convolution and O(1) for the history push.

The membrane update is:

	drive = -Vm / TauM + Bias + input
	Vm    = drive * dt^Alpha - sum_k kernel[k] * hist[k]

with spike-and-reset when Vm >= Thr.
*/
package flif

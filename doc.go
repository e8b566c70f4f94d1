// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package flif is the overall repository for the fractional-order leaky
integrate-and-fire (FLIF) spiking decision network, trained with
surrogate-gradient policy gradient learning to follow an ant trail.

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* flif: the neurons: FLIF with its Grünwald–Letnikov memory kernel and bounded
history of past potentials, and the standard integer-order LIF for comparison.

* antnet: the decision network of context neurons (food ahead or not), each
driving its own group of action leaf neurons through learned weights, and the
softmax action distribution over leaf spike counts.

* trail: the ant trail grid-world environment, following the emergent env.Env
conventions.

* episode: runs one episode of the network acting in the environment, recording
the trajectory of spikes, potentials, actions and rewards.

* pg: the policy gradient learning rule: discounted, normalized returns, a
rectangular surrogate gradient on the leaf potentials, and clipped updates.

* examples: these compile into runnable programs: examples/anttrail trains the
network, optionally across MPI processes, and examples/bench times the FLIF
update as a function of memory length.
*/
package flif

// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package pg implements episodic policy-gradient (REINFORCE) learning for
the antnet decision network.

At the end of an episode, discounted returns are computed backward over
the trajectory and standardized.  For each decision, the derivative of
each active leaf's spike count with respect to its weight is approximated
by the sum over micro-steps of the context spike times the surrogate
gradient of the leaf potential: 1/SGWidth inside a rectangular window
of width SGWidth around the leaf threshold, 0 outside.  This is combined
with the softmax log-likelihood gradient

	(1[k == action] - p_k) / temp

and the normalized return, accumulated per context, clipped, and added to
the weights.
*/
package pg

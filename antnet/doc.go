// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package antnet is the context-gated spiking decision network for the
trail-following agent.  Each of the ContextsN context neurons drives its
own group of ActionsN leaf neurons through a weight vector.  Leaf spike
counts over a decision window are turned into action probabilities by
ActionDist.
*/
package antnet

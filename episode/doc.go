// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package episode runs the decision network in the trail environment for
// one episode, recording the Trajectory that learning is computed from.
package episode

// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flif

import "errors"

var (
	// ErrConfig is wrapped by all parameter validation errors.
	ErrConfig = errors.New("invalid configuration")

	// ErrUnstable is returned when a neuron produces a non-finite membrane
	// potential, typically from an ill-chosen Alpha, TauM or dt.
	ErrUnstable = errors.New("unstable simulation: non-finite membrane potential")
)

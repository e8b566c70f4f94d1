// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flif

import (
	"github.com/goki/ki/bitflag"
	"github.com/goki/ki/kit"
)

// NeurFlags are bit-flags encoding binary state for neurons.
// Use HasFlag / SetFlag / ClearFlag on the neuron to access.
type NeurFlags int32

//go:generate stringer -type=NeurFlags

var KiT_NeurFlags = kit.Enums.AddEnum(NeurFlagsN, kit.BitFlag, nil)

// The neuron flags
const (
	// NeurUnstable means the last update produced a non-finite membrane
	// potential -- the neuron state is no longer meaningful until Reset.
	NeurUnstable NeurFlags = iota

	// NeurRefrac means the neuron is in its refractory period after a spike.
	NeurRefrac

	NeurFlagsN
)

// flagBits is embedded in neuron state to provide the flag accessors
type flagBits struct {
	Flags int32 `desc:"bit flags for binary state variables -- see NeurFlags"`
}

// HasFlag returns true if given flag is set
func (fb *flagBits) HasFlag(flag NeurFlags) bool {
	return bitflag.Has32(fb.Flags, int(flag))
}

// SetFlag sets given flag(s)
func (fb *flagBits) SetFlag(flag ...NeurFlags) {
	for _, f := range flag {
		bitflag.Set32(&fb.Flags, int(f))
	}
}

// ClearFlag clears given flag(s)
func (fb *flagBits) ClearFlag(flag ...NeurFlags) {
	for _, f := range flag {
		bitflag.Clear32(&fb.Flags, int(f))
	}
}

// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package antnet

import "github.com/goki/ki/kit"

// Contexts are the sensory contexts, each gating its own group of leaf neurons
type Contexts int32

//go:generate stringer -type=Contexts

var KiT_Contexts = kit.Enums.AddEnum(ContextsN, kit.NotBitFlag, nil)

func (ev Contexts) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Contexts) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The contexts
const (
	// FoodAhead is active when the cell in front of the agent holds food
	FoodAhead Contexts = iota

	// NoFood is active otherwise, including when facing the grid edge
	NoFood

	ContextsN
)

// ContextFor returns the context for given food-ahead observation
func ContextFor(foodAhead bool) Contexts {
	if foodAhead {
		return FoodAhead
	}
	return NoFood
}

// Actions are the possible actions, one leaf neuron per action in each context group
type Actions int32

//go:generate stringer -type=Actions

var KiT_Actions = kit.Enums.AddEnum(ActionsN, kit.NotBitFlag, nil)

func (ev Actions) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Actions) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The actions
const (
	// TurnLeft rotates the heading 90 degrees counter-clockwise
	TurnLeft Actions = iota

	// TurnRight rotates the heading 90 degrees clockwise
	TurnRight

	// MoveForward advances one cell along the heading
	MoveForward

	ActionsN
)

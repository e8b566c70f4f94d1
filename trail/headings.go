// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trail

import (
	"image"

	"github.com/goki/ki/kit"
)

// Headings are the directions the agent can face, in clockwise order
type Headings int32

//go:generate stringer -type=Headings

var KiT_Headings = kit.Enums.AddEnum(HeadingsN, kit.NotBitFlag, nil)

func (ev Headings) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Headings) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The headings -- Y increases downward, as row index
const (
	East Headings = iota
	South
	West
	North
	HeadingsN
)

var headDeltas = [HeadingsN]image.Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Delta returns the X,Y offset of one step along the heading
func (hd Headings) Delta() image.Point {
	return headDeltas[hd]
}

// Left returns the heading after a 90 degree counter-clockwise turn
func (hd Headings) Left() Headings {
	return (hd + HeadingsN - 1) % HeadingsN
}

// Right returns the heading after a 90 degree clockwise turn
func (hd Headings) Right() Headings {
	return (hd + 1) % HeadingsN
}

// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pg

import (
	"fmt"

	"github.com/emer/etable/minmax"
	"github.com/emer/flif/flif"
)

// LearnParams are the policy-gradient learning parameters
type LearnParams struct {
	Lrate   float32 `def:"0.0001" desc:"learning rate applied to the clipped weight changes"`
	Gamma   float32 `def:"0.99" min:"0" max:"1" desc:"discount factor for returns"`
	SGWidth float32 `def:"0.5" min:"0" desc:"width of the rectangular surrogate gradient window, centered on SGThr -- the surrogate is 1/SGWidth inside the window, 0 outside"`
	SGThr   float32 `def:"0" desc:"membrane potential at the center of the surrogate window -- 0 = the threshold of the leaf neurons, as recorded on the trajectory"`
	MaxGrad float32 `def:"50" min:"0" desc:"weight changes for each context are clipped to +/- this value before applying the learning rate"`

	GradRange minmax.F32 `view:"-" desc:"clipping range -- computed from MaxGrad"`
}

func (lp *LearnParams) Defaults() {
	lp.Lrate = 0.0001
	lp.Gamma = 0.99
	lp.SGWidth = 0.5
	lp.SGThr = 0
	lp.MaxGrad = 50
	lp.Update()
}

// Update must be called after any changes to parameters
func (lp *LearnParams) Update() {
	lp.GradRange.Set(-lp.MaxGrad, lp.MaxGrad)
}

// Validate returns an error wrapping flif.ErrConfig for any invalid setting.
func (lp *LearnParams) Validate() error {
	switch {
	case !(lp.Gamma >= 0 && lp.Gamma <= 1):
		return fmt.Errorf("%w: LearnParams.Gamma = %g, must be in [0,1]", flif.ErrConfig, lp.Gamma)
	case !(lp.SGWidth > 0):
		return fmt.Errorf("%w: LearnParams.SGWidth = %g, must be > 0", flif.ErrConfig, lp.SGWidth)
	case !(lp.MaxGrad > 0):
		return fmt.Errorf("%w: LearnParams.MaxGrad = %g, must be > 0", flif.ErrConfig, lp.MaxGrad)
	}
	return nil
}

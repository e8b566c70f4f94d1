// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package episode

import (
	"fmt"

	"github.com/emer/flif/flif"
	"github.com/goki/ki/ints"
)

// RunParams are the timing parameters for running an episode
type RunParams struct {
	DT         float32 `def:"0.1" min:"0" desc:"neuron integration time step"`
	Window     float32 `def:"5" min:"0" desc:"duration of one decision window, over which leaf spikes are counted -- determines MicroSteps if that is 0"`
	MicroSteps int     `def:"0" min:"0" desc:"number of neuron updates per decision -- 0 = Window / DT"`
	MaxSteps   int     `def:"250" min:"1" desc:"maximum number of decisions (actions) per episode"`
	Temp       float32 `def:"1" min:"0" desc:"softmax temperature for action probabilities from leaf spike counts -- higher = more exploration"`
}

func (rp *RunParams) Defaults() {
	rp.DT = 0.1
	rp.Window = 5
	rp.MicroSteps = 0
	rp.MaxSteps = 250
	rp.Temp = 1
	rp.Update()
}

// Update must be called after any changes to parameters
func (rp *RunParams) Update() {
	if rp.MicroSteps == 0 && rp.DT > 0 {
		rp.MicroSteps = ints.MaxInt(int(rp.Window/rp.DT+0.5), 1)
	}
}

// Validate returns an error wrapping flif.ErrConfig for any invalid setting.
func (rp *RunParams) Validate() error {
	switch {
	case rp.DT <= 0:
		return fmt.Errorf("%w: RunParams.DT = %g, must be > 0", flif.ErrConfig, rp.DT)
	case rp.MicroSteps < 1:
		return fmt.Errorf("%w: RunParams.MicroSteps = %d, must be >= 1", flif.ErrConfig, rp.MicroSteps)
	case rp.MaxSteps < 1:
		return fmt.Errorf("%w: RunParams.MaxSteps = %d, must be >= 1", flif.ErrConfig, rp.MaxSteps)
	case !(rp.Temp > 0):
		return fmt.Errorf("%w: RunParams.Temp = %g, must be > 0", flif.ErrConfig, rp.Temp)
	}
	return nil
}

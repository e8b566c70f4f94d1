// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flif

import "fmt"

///////////////////////////////////////////////////////////////////////
//  params.go contains the neuron parameters for FLIF and standard LIF

// FracParams are the fractional-order LIF neuron parameters.
// The kernel of GL coefficients is a function of Alpha and MemLen only,
// and is generated once when the neuron is built.
type FracParams struct {
	Alpha       float32 `def:"0.75" min:"0" max:"1" desc:"fractional order of the membrane derivative, strictly between 0 and 1 -- lower values give longer, power-law memory of past potentials"`
	TauM        float32 `def:"20" min:"0" desc:"membrane time constant, in msec"`
	Thr         float32 `def:"0.3" desc:"spiking threshold on Vm (normalized units)"`
	Reset       float32 `def:"0" desc:"Vm after a spike, and initial Vm and history value"`
	Bias        float32 `def:"0.05" desc:"constant bias current added on every update"`
	MemLen      int     `def:"12500" min:"0" desc:"number of past Vm values convolved with the GL kernel -- cost of each update is linear in this -- 0 disables the fractional memory term"`
	RefracSteps int     `def:"0" min:"0" desc:"number of updates after a spike during which Vm is held at Reset and no spike can occur -- 0 = no refractory period"`
}

func (fp *FracParams) Defaults() {
	fp.Alpha = 0.75
	fp.TauM = 20
	fp.Thr = 0.3
	fp.Reset = 0
	fp.Bias = 0.05
	fp.MemLen = 12500
	fp.RefracSteps = 0
	fp.Update()
}

// Update must be called after any changes to parameters
func (fp *FracParams) Update() {
}

// Validate returns an error wrapping ErrConfig for any invalid setting.
func (fp *FracParams) Validate() error {
	switch {
	case !(fp.Alpha > 0 && fp.Alpha < 1):
		return fmt.Errorf("%w: FracParams.Alpha = %g, must be in (0,1)", ErrConfig, fp.Alpha)
	case fp.TauM <= 0:
		return fmt.Errorf("%w: FracParams.TauM = %g, must be > 0", ErrConfig, fp.TauM)
	case fp.Thr <= fp.Reset:
		return fmt.Errorf("%w: FracParams.Thr = %g must be above Reset = %g", ErrConfig, fp.Thr, fp.Reset)
	case fp.MemLen < 0:
		return fmt.Errorf("%w: FracParams.MemLen = %d, must be >= 0", ErrConfig, fp.MemLen)
	case fp.RefracSteps < 0:
		return fmt.Errorf("%w: FracParams.RefracSteps = %d, must be >= 0", ErrConfig, fp.RefracSteps)
	}
	return nil
}

// StdParams are the standard (integer-order) LIF neuron parameters.
type StdParams struct {
	TauM  float32 `def:"20" min:"0" desc:"membrane time constant, in msec"`
	Thr   float32 `def:"0.75" desc:"spiking threshold on Vm"`
	Reset float32 `def:"0" desc:"Vm after a spike, and initial Vm"`
	Bias  float32 `def:"0.05" desc:"constant bias current added on every update"`
}

func (sp *StdParams) Defaults() {
	sp.TauM = 20
	sp.Thr = 0.75
	sp.Reset = 0
	sp.Bias = 0.05
}

func (sp *StdParams) Update() {
}

// Validate returns an error wrapping ErrConfig for any invalid setting.
func (sp *StdParams) Validate() error {
	if sp.TauM <= 0 {
		return fmt.Errorf("%w: StdParams.TauM = %g, must be > 0", ErrConfig, sp.TauM)
	}
	if sp.Thr <= sp.Reset {
		return fmt.Errorf("%w: StdParams.Thr = %g must be above Reset = %g", ErrConfig, sp.Thr, sp.Reset)
	}
	return nil
}

// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flif

import (
	"github.com/chewxy/math32"
)

// Unit is the contract shared by the fractional and standard neurons,
// so that either can be placed anywhere in a network.
type Unit interface {
	// Name returns the name of the neuron, e.g., its role in the network
	Name() string

	// Reset returns the neuron to its initial state: Vm = Reset, cleared
	// spike and flags, and (for FLIF) history filled with Reset.
	Reset()

	// Update integrates one time step of size dt with given input current,
	// returning true if the neuron spiked on this step.
	Update(inp, dt float32) bool

	// Voltage returns the current membrane potential (post-reset after a spike)
	Voltage() float32

	// Unstable returns true if an update produced a non-finite potential
	// since the last Reset.
	Unstable() bool
}

// Thresholder is a Unit with a fixed spiking threshold on Vm
type Thresholder interface {
	Threshold() float32
}

// Neuron is a fractional-order (Grünwald–Letnikov) leaky integrate-and-fire
// neuron with a bounded history of MemLen past potentials.
// All state is owned by the neuron and only changed by Update and Reset.
type Neuron struct {
	flagBits
	Nm     string     `desc:"name of the neuron"`
	Params FracParams `view:"inline" desc:"neuron parameters -- fixed after construction"`
	Vm     float32    `desc:"membrane potential"`
	Spike  float32    `desc:"1 if the neuron spiked on the last Update, else 0"`
	Refrac int        `desc:"remaining refractory updates"`
	Hist   History    `view:"-" desc:"ring of past post-update potentials, newest-first"`

	kern []float32
	dtA  float32 // cached dt^Alpha
	dt   float32 // dt that dtA was computed for
}

// NewNeuron returns a new FLIF neuron with given name and params,
// after validating the params.  The GL kernel is built here, once.
func NewNeuron(name string, pars *FracParams) (*Neuron, error) {
	if err := pars.Validate(); err != nil {
		return nil, err
	}
	nrn := &Neuron{Nm: name, Params: *pars}
	nrn.kern = GLCoeffs(pars.Alpha, pars.MemLen)
	nrn.Hist.Init(pars.MemLen, pars.Reset)
	nrn.Reset()
	return nrn, nil
}

func (nrn *Neuron) Name() string       { return nrn.Nm }
func (nrn *Neuron) Voltage() float32   { return nrn.Vm }
func (nrn *Neuron) Spiked() bool       { return nrn.Spike > 0 }
func (nrn *Neuron) Unstable() bool     { return nrn.HasFlag(NeurUnstable) }
func (nrn *Neuron) Threshold() float32 { return nrn.Params.Thr }

// Kernel returns the GL coefficients used by this neuron.
// The returned slice must not be modified.
func (nrn *Neuron) Kernel() []float32 { return nrn.kern }

// Reset returns the neuron to its initial state
func (nrn *Neuron) Reset() {
	nrn.Vm = nrn.Params.Reset
	nrn.Spike = 0
	nrn.Refrac = 0
	nrn.Flags = 0
	nrn.Hist.Fill(nrn.Params.Reset)
}

// dtAlpha returns dt^Alpha, recomputing only when dt changes.
func (nrn *Neuron) dtAlpha(dt float32) float32 {
	if dt != nrn.dt || nrn.dtA == 0 {
		nrn.dt = dt
		nrn.dtA = math32.Pow(dt, nrn.Params.Alpha)
	}
	return nrn.dtA
}

// Update integrates one time step: the fractional memory term is the
// GL kernel convolved with the Vm history, which is subtracted from the
// scaled drive.  Returns true if the neuron spiked.
func (nrn *Neuron) Update(inp, dt float32) bool {
	fp := &nrn.Params
	nrn.Spike = 0
	if nrn.Refrac > 0 {
		nrn.Refrac--
		if nrn.Refrac == 0 {
			nrn.ClearFlag(NeurRefrac)
		}
		nrn.Vm = fp.Reset
		nrn.Hist.Push(nrn.Vm)
		return false
	}
	hist := nrn.Hist.Dot(nrn.kern)
	drive := -nrn.Vm/fp.TauM + fp.Bias + inp
	vm := drive*nrn.dtAlpha(dt) - hist
	if math32.IsNaN(vm) || math32.IsInf(vm, 0) {
		nrn.SetFlag(NeurUnstable)
	}
	if vm >= fp.Thr {
		nrn.Spike = 1
		vm = fp.Reset
		if fp.RefracSteps > 0 {
			nrn.Refrac = fp.RefracSteps
			nrn.SetFlag(NeurRefrac)
		}
	}
	nrn.Vm = vm
	nrn.Hist.Push(vm)
	return nrn.Spike > 0
}

// Compile-time check that implements Unit interface
var _ Unit = (*Neuron)(nil)

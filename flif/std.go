// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flif

import "github.com/chewxy/math32"

// StdNeuron is a standard exponential-leak integrate-and-fire neuron,
// used as a baseline against the fractional Neuron.
type StdNeuron struct {
	flagBits
	Nm     string    `desc:"name of the neuron"`
	Params StdParams `view:"inline" desc:"neuron parameters"`
	Vm     float32   `desc:"membrane potential"`
	Spike  float32   `desc:"1 if the neuron spiked on the last Update, else 0"`
}

// NewStdNeuron returns a new standard LIF neuron, validating params.
func NewStdNeuron(name string, pars *StdParams) (*StdNeuron, error) {
	if err := pars.Validate(); err != nil {
		return nil, err
	}
	nrn := &StdNeuron{Nm: name, Params: *pars}
	nrn.Reset()
	return nrn, nil
}

func (nrn *StdNeuron) Name() string       { return nrn.Nm }
func (nrn *StdNeuron) Voltage() float32   { return nrn.Vm }
func (nrn *StdNeuron) Spiked() bool       { return nrn.Spike > 0 }
func (nrn *StdNeuron) Unstable() bool     { return nrn.HasFlag(NeurUnstable) }
func (nrn *StdNeuron) Threshold() float32 { return nrn.Params.Thr }

func (nrn *StdNeuron) Reset() {
	nrn.Vm = nrn.Params.Reset
	nrn.Spike = 0
	nrn.Flags = 0
}

// Update does forward-Euler integration of the leaky membrane.
func (nrn *StdNeuron) Update(inp, dt float32) bool {
	sp := &nrn.Params
	nrn.Spike = 0
	nrn.Vm += dt * (-nrn.Vm/sp.TauM + sp.Bias + inp)
	if math32.IsNaN(nrn.Vm) || math32.IsInf(nrn.Vm, 0) {
		nrn.SetFlag(NeurUnstable)
	}
	if nrn.Vm >= sp.Thr {
		nrn.Spike = 1
		nrn.Vm = sp.Reset
	}
	return nrn.Spike > 0
}

var _ Unit = (*StdNeuron)(nil)

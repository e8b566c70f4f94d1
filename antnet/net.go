// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package antnet

import (
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/emer/etable/minmax"
	"github.com/emer/flif/flif"
)

// Params are the network-level parameters
type Params struct {
	ActiveInput float32    `def:"1.5" desc:"input current into the active context neuron on every micro-step -- the inactive context neuron gets 0"`
	WtInit      minmax.F32 `desc:"range of uniform random initial weights from context to leaf neurons"`
}

func (np *Params) Defaults() {
	np.ActiveInput = 1.5
	np.WtInit.Set(0.1, 0.2)
}

func (np *Params) Update() {
}

// Validate returns an error wrapping flif.ErrConfig for any invalid setting.
func (np *Params) Validate() error {
	if math32.IsNaN(np.ActiveInput) || math32.IsInf(np.ActiveInput, 0) {
		return fmt.Errorf("%w: antnet.Params.ActiveInput = %g is not finite", flif.ErrConfig, np.ActiveInput)
	}
	if np.WtInit.Min > np.WtInit.Max {
		return fmt.Errorf("%w: antnet.Params.WtInit.Min = %g > Max = %g", flif.ErrConfig, np.WtInit.Min, np.WtInit.Max)
	}
	return nil
}

// Net is the context-gated decision network: one context neuron per
// context, each projecting to its own group of ActionsN leaf neurons.
// The leaf that spikes the most over a decision window is the most
// likely action.  Wts are only changed between episodes, via SetWts or
// a learning rule operating directly on them.  Code that only reports
// on the weights should read them with WtsSnapshot or WtsFlat, which
// return copies.
type Net struct {
	Params Params                         `view:"inline" desc:"network parameters"`
	Ctx    [ContextsN]flif.Unit           `desc:"context neurons"`
	Leaves [ContextsN][ActionsN]flif.Unit `desc:"leaf neurons, one group per context, one neuron per action"`
	Wts    [ContextsN][ActionsN]float32   `desc:"context to leaf weights -- the synaptic current into leaf k is the context spike times Wts[ctx][k]"`
	Active Contexts                       `inactive:"+" desc:"currently active context, as set by Observe"`
}

// MicroState is the result of one micro-step of the active group
type MicroState struct {
	CtxSpike   float32           `desc:"1 if the active context neuron spiked"`
	LeafSpikes [ActionsN]float32 `desc:"1 for each leaf of the active group that spiked"`
	LeafVm     [ActionsN]float32 `desc:"post-update membrane potentials of the active leaves"`
}

// NewNet returns a network built of fractional neurons: ctxPars for the
// context neurons and leafPars for all the leaf neurons.  Weights are
// initialized with InitWts.
func NewNet(pars *Params, ctxPars, leafPars *flif.FracParams) (*Net, error) {
	ctx := make([]flif.Unit, ContextsN)
	leaves := make([][]flif.Unit, ContextsN)
	for ci := Contexts(0); ci < ContextsN; ci++ {
		nrn, err := flif.NewNeuron("Ctx_"+ci.String(), ctxPars)
		if err != nil {
			return nil, err
		}
		ctx[ci] = nrn
		leaves[ci] = make([]flif.Unit, ActionsN)
		for ai := Actions(0); ai < ActionsN; ai++ {
			lnr, err := flif.NewNeuron(ci.String()+"_"+ai.String(), leafPars)
			if err != nil {
				return nil, err
			}
			leaves[ci][ai] = lnr
		}
	}
	return NewNetFromUnits(pars, ctx, leaves)
}

// NewNetFromUnits returns a network using the given units, which can be
// any mix of flif.Unit types (e.g., flif.StdNeuron baselines).
// ctx must have ContextsN units, and leaves ContextsN groups of ActionsN.
func NewNetFromUnits(pars *Params, ctx []flif.Unit, leaves [][]flif.Unit) (*Net, error) {
	if err := pars.Validate(); err != nil {
		return nil, err
	}
	if len(ctx) != int(ContextsN) {
		return nil, fmt.Errorf("%w: antnet: %d context units, need %d", flif.ErrConfig, len(ctx), ContextsN)
	}
	if len(leaves) != int(ContextsN) {
		return nil, fmt.Errorf("%w: antnet: %d leaf groups, need %d", flif.ErrConfig, len(leaves), ContextsN)
	}
	nt := &Net{Params: *pars}
	for ci := range ctx {
		if ctx[ci] == nil {
			return nil, fmt.Errorf("%w: antnet: nil context unit %d", flif.ErrConfig, ci)
		}
		nt.Ctx[ci] = ctx[ci]
		if len(leaves[ci]) != int(ActionsN) {
			return nil, fmt.Errorf("%w: antnet: leaf group %v has %d units, need %d", flif.ErrConfig, Contexts(ci), len(leaves[ci]), ActionsN)
		}
		for ai, u := range leaves[ci] {
			if u == nil {
				return nil, fmt.Errorf("%w: antnet: nil leaf unit %v_%v", flif.ErrConfig, Contexts(ci), Actions(ai))
			}
			nt.Leaves[ci][ai] = u
		}
	}
	nt.InitWts()
	nt.Reset()
	return nt, nil
}

// InitWts sets all weights to uniform random values in Params.WtInit
func (nt *Net) InitWts() {
	for ci := range nt.Wts {
		for ai := range nt.Wts[ci] {
			nt.Wts[ci][ai] = nt.Params.WtInit.ProjVal(rand.Float32())
		}
	}
}

// SetWts sets the weights for given context
func (nt *Net) SetWts(ctx Contexts, wts [ActionsN]float32) {
	nt.Wts[ctx] = wts
}

// WtsSnapshot returns a copy of the current weights, for logging and
// reporting.  Changing the copy has no effect on the network.
func (nt *Net) WtsSnapshot() [ContextsN][ActionsN]float32 {
	return nt.Wts
}

// WtsFlat returns a copy of the weights as a flat slice, context-major
func (nt *Net) WtsFlat() []float32 {
	wf := make([]float32, 0, int(ContextsN)*int(ActionsN))
	for ci := range nt.Wts {
		wf = append(wf, nt.Wts[ci][:]...)
	}
	return wf
}

// LeafThr returns the spiking threshold of the leaf neurons, taken from
// the first leaf that has one (flif.Thresholder), or 0 if none do.
func (nt *Net) LeafThr() float32 {
	for ci := range nt.Leaves {
		for _, u := range nt.Leaves[ci] {
			if th, ok := u.(flif.Thresholder); ok {
				return th.Threshold()
			}
		}
	}
	return 0
}

// Reset resets the state of all neurons in the network
func (nt *Net) Reset() {
	for ci := range nt.Ctx {
		nt.Ctx[ci].Reset()
		for _, u := range nt.Leaves[ci] {
			u.Reset()
		}
	}
}

// Observe sets and returns the active context for given observation
func (nt *Net) Observe(foodAhead bool) Contexts {
	nt.Active = ContextFor(foodAhead)
	return nt.Active
}

// MicroStep updates both context neurons, the active one with
// Params.ActiveInput and the other with 0, and then the leaf group of the
// active context with the context spike times the weights.
// The leaves of the inactive context are not updated.
// Returns flif.ErrUnstable if any updated neuron has a non-finite potential.
func (nt *Net) MicroStep(ctx Contexts, dt float32) (MicroState, error) {
	var ms MicroState
	for ci, cu := range nt.Ctx {
		inp := float32(0)
		if Contexts(ci) == ctx {
			inp = nt.Params.ActiveInput
		}
		spk := cu.Update(inp, dt)
		if Contexts(ci) == ctx && spk {
			ms.CtxSpike = 1
		}
		if cu.Unstable() {
			return ms, fmt.Errorf("%w: neuron %s", flif.ErrUnstable, cu.Name())
		}
	}
	for ai, lu := range nt.Leaves[ctx] {
		if lu.Update(ms.CtxSpike*nt.Wts[ctx][ai], dt) {
			ms.LeafSpikes[ai] = 1
		}
		ms.LeafVm[ai] = lu.Voltage()
		if lu.Unstable() {
			return ms, fmt.Errorf("%w: neuron %s", flif.ErrUnstable, lu.Name())
		}
	}
	return ms, nil
}

// HistBytes returns the total memory used by the fractional neuron
// histories in the network.
func (nt *Net) HistBytes() uint64 {
	var nb uint64
	add := func(u flif.Unit) {
		if nrn, ok := u.(*flif.Neuron); ok {
			nb += nrn.Hist.Bytes()
		}
	}
	for ci := range nt.Ctx {
		add(nt.Ctx[ci])
		for _, u := range nt.Leaves[ci] {
			add(u)
		}
	}
	return nb
}

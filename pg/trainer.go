// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pg

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/emer/flif/antnet"
	"github.com/emer/flif/episode"
	"github.com/emer/flif/flif"
)

// Trainer accumulates weight changes from trajectories and applies them
// to the network weights.
type Trainer struct {
	Params LearnParams                                `view:"inline" desc:"learning parameters"`
	DWts   [antnet.ContextsN][antnet.ActionsN]float32 `desc:"clipped weight changes from the last DWt, before the learning rate"`
	Norm   []float32                                  `view:"-" desc:"normalized returns from the last DWt"`
}

// NewTrainer returns a new Trainer with the given params
func NewTrainer(pars *LearnParams) (*Trainer, error) {
	lp := *pars
	lp.Update()
	if err := lp.Validate(); err != nil {
		return nil, err
	}
	return &Trainer{Params: lp}, nil
}

// ZeroDWts sets all weight changes to 0
func (tr *Trainer) ZeroDWts() {
	tr.DWts = [antnet.ContextsN][antnet.ActionsN]float32{}
}

// DWt computes the weight changes for the trajectory into DWts,
// clipped to +/- MaxGrad.  Returns false with no error if the trajectory
// is empty, in which case there is nothing to learn.
// A non-finite potential or reward in the trajectory is an error wrapping
// flif.ErrUnstable.
func (tr *Trainer) DWt(traj *episode.Trajectory) (bool, error) {
	lp := &tr.Params
	tr.ZeroDWts()
	n := traj.Len()
	if n == 0 {
		tr.Norm = tr.Norm[:0]
		return false, nil
	}
	if !(traj.Temp > 0) {
		return false, fmt.Errorf("%w: pg.DWt: trajectory Temp = %g, must be > 0", flif.ErrConfig, traj.Temp)
	}
	if err := checkTraj(traj); err != nil {
		return false, err
	}
	tr.Norm = NormReturns(DiscountedReturns(traj.Rewards(), lp.Gamma))
	itemp := 1 / traj.Temp
	thr := tr.SGThr(traj)
	for t := range traj.Steps {
		stp := &traj.Steps[t]
		g := tr.Norm[t]
		dw := &tr.DWts[stp.Ctx]
		for ai := range stp.LeafVm {
			dn := float32(0)
			for i, vm := range stp.LeafVm[ai] {
				dn += stp.CtxSpikes[i] * Surrogate(vm, thr, lp.SGWidth)
			}
			ind := float32(0)
			if antnet.Actions(ai) == stp.Action {
				ind = 1
			}
			dw[ai] += g * (ind - stp.Probs[ai]) * itemp * dn
		}
	}
	for ci := range tr.DWts {
		for ai := range tr.DWts[ci] {
			tr.DWts[ci][ai] = lp.GradRange.ClipVal(tr.DWts[ci][ai])
		}
	}
	return true, nil
}

// SGThr returns the center of the surrogate window for the trajectory:
// Params.SGThr if set, else the leaf threshold recorded on the trajectory.
func (tr *Trainer) SGThr(traj *episode.Trajectory) float32 {
	if tr.Params.SGThr != 0 {
		return tr.Params.SGThr
	}
	return traj.LeafThr
}

// checkTraj returns an error if the trajectory has inconsistent trace
// lengths or non-finite values.
func checkTraj(traj *episode.Trajectory) error {
	for t := range traj.Steps {
		stp := &traj.Steps[t]
		if stp.Ctx < 0 || stp.Ctx >= antnet.ContextsN {
			return fmt.Errorf("%w: pg: step %d has invalid context %d", flif.ErrConfig, t, stp.Ctx)
		}
		if math32.IsNaN(stp.Reward) || math32.IsInf(stp.Reward, 0) {
			return fmt.Errorf("%w: pg: step %d reward = %g", flif.ErrUnstable, t, stp.Reward)
		}
		for ai, p := range stp.Probs {
			if math32.IsNaN(p) || math32.IsInf(p, 0) {
				return fmt.Errorf("%w: pg: step %d %v probability = %g", flif.ErrUnstable, t, antnet.Actions(ai), p)
			}
		}
		for ai := range stp.LeafVm {
			if len(stp.LeafVm[ai]) != len(stp.CtxSpikes) {
				return fmt.Errorf("%w: pg: step %d leaf %d has %d potentials for %d context spikes", flif.ErrConfig, t, ai, len(stp.LeafVm[ai]), len(stp.CtxSpikes))
			}
			for _, vm := range stp.LeafVm[ai] {
				if math32.IsNaN(vm) || math32.IsInf(vm, 0) {
					return fmt.Errorf("%w: pg: step %d leaf %v potential = %g", flif.ErrUnstable, t, antnet.Actions(ai), vm)
				}
			}
		}
	}
	return nil
}

// WtFmDWt adds Lrate * DWts to the network weights, and zeroes DWts.
func (tr *Trainer) WtFmDWt(net *antnet.Net) {
	for ci := range tr.DWts {
		for ai, dw := range tr.DWts[ci] {
			net.Wts[ci][ai] += tr.Params.Lrate * dw
		}
	}
	tr.ZeroDWts()
}

// Learn computes the weight changes for the trajectory and applies them.
// Returns false if the trajectory was empty and nothing was learned.
func (tr *Trainer) Learn(net *antnet.Net, traj *episode.Trajectory) (bool, error) {
	ok, err := tr.DWt(traj)
	if !ok || err != nil {
		return false, err
	}
	tr.WtFmDWt(net)
	return true, nil
}

// DWtsFlat returns the weight changes as a flat slice, context-major,
// e.g., for summing across MPI processes.
func (tr *Trainer) DWtsFlat() []float32 {
	df := make([]float32, 0, int(antnet.ContextsN)*int(antnet.ActionsN))
	for ci := range tr.DWts {
		df = append(df, tr.DWts[ci][:]...)
	}
	return df
}

// SetDWtsFlat sets the weight changes from a flat slice, as returned by
// DWtsFlat, summed over n contributors, so that DWts is the average.
func (tr *Trainer) SetDWtsFlat(df []float32, n int) {
	if n < 1 {
		n = 1
	}
	nf := float32(n)
	i := 0
	for ci := range tr.DWts {
		for ai := range tr.DWts[ci] {
			if i < len(df) {
				tr.DWts[ci][ai] = df[i] / nf
			}
			i++
		}
	}
}

// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package episode

import (
	"fmt"

	"github.com/emer/flif/antnet"
	"github.com/emer/flif/flif"
	"github.com/emer/flif/trail"
)

// Runner runs episodes of the network acting in the trail environment.
// The network weights are only read during Run.
type Runner struct {
	Params  RunParams   `view:"inline" desc:"run parameters"`
	Net     *antnet.Net `desc:"the decision network"`
	Env     *trail.Env  `desc:"the trail environment"`
	Sampler Sampler     `desc:"chooses the action from the action probabilities"`
}

// NewRunner returns a new Runner.  If smp is nil, PChoose is used.
func NewRunner(pars *RunParams, net *antnet.Net, ev *trail.Env, smp Sampler) (*Runner, error) {
	rp := *pars
	rp.Update()
	if err := rp.Validate(); err != nil {
		return nil, err
	}
	if net == nil || ev == nil {
		return nil, fmt.Errorf("%w: episode.NewRunner: nil network or environment", flif.ErrConfig)
	}
	if smp == nil {
		smp = PChoose{}
	}
	return &Runner{Params: rp, Net: net, Env: ev, Sampler: smp}, nil
}

// Run resets the environment and network and runs one episode, until the
// food is all eaten or MaxSteps decisions have been made.
// Each decision runs MicroSteps network updates in the current context,
// counts the leaf spikes, and samples an action from ActionDist.
// If a neuron goes unstable, the episode stops and the partial trajectory
// is returned with an error wrapping flif.ErrUnstable.
func (rn *Runner) Run() (*Trajectory, *Stats, error) {
	rp := &rn.Params
	rn.Env.Reset()
	rn.Net.Reset()
	traj := &Trajectory{Temp: rp.Temp, LeafThr: rn.Net.LeafThr()}
	st := &Stats{}
	var nspk [antnet.ContextsN][antnet.ActionsN]int
	defer rn.spikeRates(st, &nspk)

	for t := 0; t < rp.MaxSteps; t++ {
		ctx := rn.Net.Observe(rn.Env.FoodAhead())
		stp := Step{Ctx: ctx, CtxSpikes: make([]float32, rp.MicroSteps)}
		for ai := range stp.LeafVm {
			stp.LeafVm[ai] = make([]float32, rp.MicroSteps)
		}
		for i := 0; i < rp.MicroSteps; i++ {
			ms, err := rn.Net.MicroStep(ctx, rp.DT)
			if err != nil {
				return traj, st, fmt.Errorf("episode step %d, micro-step %d: %w", t, i, err)
			}
			stp.CtxSpikes[i] = ms.CtxSpike
			for ai := range ms.LeafVm {
				stp.LeafVm[ai][i] = ms.LeafVm[ai]
				if ms.LeafSpikes[ai] > 0 {
					stp.Counts[ai]++
				}
			}
		}
		stp.Probs = antnet.ActionDist(stp.Counts, rp.Temp)
		stp.Action = antnet.Actions(rn.Sampler.Sample(stp.Probs[:]))
		oc := rn.Env.Act(stp.Action)
		stp.Reward = oc.Reward
		stp.Ate = oc.Ate
		traj.Steps = append(traj.Steps, stp)

		st.Steps++
		st.Reward += oc.Reward
		st.CtxSteps[ctx]++
		for ai, c := range stp.Counts {
			nspk[ctx][ai] += c
		}
		if oc.Ate {
			st.Food++
		}
		if oc.Done || rn.Env.Remaining() == 0 {
			st.Done = true
			break
		}
	}
	return traj, st, nil
}

// spikeRates computes the per-context leaf spike rates from counts
func (rn *Runner) spikeRates(st *Stats, nspk *[antnet.ContextsN][antnet.ActionsN]int) {
	for ci := range nspk {
		nmic := float32(st.CtxSteps[ci] * rn.Params.MicroSteps)
		if nmic == 0 {
			continue
		}
		for ai, n := range nspk[ci] {
			st.SpikeRates[ci][ai] = float32(n) / nmic
		}
	}
}

// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package episode

import (
	"github.com/emer/flif/antnet"
)

// Step is the record of one decision within an episode
type Step struct {
	Ctx       antnet.Contexts            `desc:"active context for this decision"`
	CtxSpikes []float32                  `desc:"spike (1) or not (0) of the active context neuron on each micro-step"`
	LeafVm    [antnet.ActionsN][]float32 `desc:"membrane potential of each active leaf neuron on each micro-step"`
	Counts    [antnet.ActionsN]int       `desc:"number of spikes of each active leaf neuron over the decision window"`
	Probs     [antnet.ActionsN]float32   `desc:"action probabilities computed from Counts"`
	Action    antnet.Actions             `desc:"sampled action"`
	Reward    float32                    `desc:"reward received for the action"`
	Ate       bool                       `desc:"true if the action ate food"`
}

// Trajectory is the sequence of decisions in one episode
type Trajectory struct {
	Temp    float32 `desc:"softmax temperature that Probs were computed with"`
	LeafThr float32 `desc:"spiking threshold of the leaf neurons that produced LeafVm"`
	Steps   []Step  `desc:"one record per decision"`
}

// Len returns the number of steps
func (tr *Trajectory) Len() int {
	return len(tr.Steps)
}

// Rewards returns the reward of each step
func (tr *Trajectory) Rewards() []float32 {
	rews := make([]float32, len(tr.Steps))
	for i := range tr.Steps {
		rews[i] = tr.Steps[i].Reward
	}
	return rews
}

// TotalReward returns the sum of rewards over the episode
func (tr *Trajectory) TotalReward() float32 {
	sum := float32(0)
	for i := range tr.Steps {
		sum += tr.Steps[i].Reward
	}
	return sum
}

// Stats are summary statistics for one episode
type Stats struct {
	Steps      int                                        `desc:"number of decisions made"`
	Reward     float32                                    `desc:"total reward"`
	Food       int                                        `desc:"food eaten"`
	Done       bool                                       `desc:"true if all the food was eaten before MaxSteps"`
	CtxSteps   [antnet.ContextsN]int                      `desc:"number of decisions made in each context"`
	SpikeRates [antnet.ContextsN][antnet.ActionsN]float32 `desc:"leaf spikes per micro-step in each context, over all the micro-steps spent in that context"`
}
